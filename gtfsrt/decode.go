package gtfsrt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/routes/route"
)

// Decode parses a TripUpdates FeedMessage and returns one route per usable
// trip update, in feed order. Epoch times are converted to wall-clock time
// in loc.
func Decode(b []byte, loc *time.Location) ([]route.Route, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	if loc == nil {
		loc = time.Local
	}

	var out []route.Route
	for _, e := range fm.Entity {
		if e.GetIsDeleted() || e.TripUpdate == nil {
			continue
		}
		r, ok := fromTripUpdate(e.TripUpdate, loc)
		if !ok {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func fromTripUpdate(tu *gtfsrtpb.TripUpdate, loc *time.Location) (route.Route, bool) {
	var (
		departure int64
		lastStop  string
	)
	for _, stu := range tu.StopTimeUpdate {
		if stu.GetScheduleRelationship() == gtfsrtpb.TripUpdate_StopTimeUpdate_SKIPPED {
			continue
		}
		if departure == 0 {
			departure = eventTime(stu)
		}
		if sid := stu.GetStopId(); sid != "" {
			lastStop = sid
		}
	}
	if departure == 0 {
		return route.Route{}, false
	}

	trip := tu.GetTrip()
	destination := lastStop
	if destination == "" {
		destination = trip.GetTripId()
	}
	if strings.TrimSpace(destination) == "" {
		return route.Route{}, false
	}

	number := route.NoNumber
	if n, err := strconv.Atoi(trip.GetRouteId()); err == nil {
		number = route.NumberOf(n)
	}

	wall := time.Unix(departure, 0).In(loc)
	c, err := route.ClockOf(wall.Hour(), wall.Minute())
	if err != nil {
		return route.Route{}, false
	}
	return route.Route{Destination: destination, Number: number, Time: c}, true
}

// eventTime prefers the departure time and falls back to the arrival time.
func eventTime(stu *gtfsrtpb.TripUpdate_StopTimeUpdate) int64 {
	if t := stu.GetDeparture().GetTime(); t != 0 {
		return t
	}
	return stu.GetArrival().GetTime()
}
