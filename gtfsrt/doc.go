// Package gtfsrt turns a GTFS-Realtime TripUpdates feed into departures.
//
// Each trip update with at least one timed stop becomes one route: the
// destination is the trip's last stop, the number is the route id when it is
// numeric, and the time is the first stop's departure as wall-clock HH:MM.
package gtfsrt
