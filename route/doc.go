// Package route defines the departure record kept in a routes data file.
//
// A Route pairs a destination with an optional line number and a wall-clock
// departure time. Times are strict "HH:MM" values with no date component and
// compare as minutes since midnight.
//
// The package also carries the error taxonomy shared by the store, the query
// functions and the command line:
//   - ValidationError: malformed user input (bad time, blank destination)
//   - StorageError: a data file that cannot be read, written or decoded
//   - ConfigurationError: no data file could be resolved
package route
