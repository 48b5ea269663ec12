// Package routes records and queries scheduled transit departures.
//
// A Collection is the ordered, append-only list of routes held in one data
// file. Append and Import grow it; Select filters it by departure time. None
// of them modify their input: a mutation returns a new Collection together
// with a flag telling the caller whether the data file must be rewritten.
package routes

import (
	"fmt"

	"github.com/theoremus-urban-solutions/routes/route"
)

// Collection is an ordered list of routes. Insertion order is significant.
type Collection []route.Route

// Append validates the given fields and adds one route to the end of c.
// On a validation error c is returned unchanged and dirty is false.
func Append(c Collection, destination string, number route.Number, t string) (Collection, bool, error) {
	r, err := route.New(destination, number, t)
	if err != nil {
		return c, false, err
	}
	out := make(Collection, len(c), len(c)+1)
	copy(out, c)
	return append(out, r), true, nil
}

// Select returns the routes departing strictly after reference, in their
// original order. The result is never nil.
func Select(c Collection, reference string) (Collection, error) {
	ref, err := route.ParseClock(reference)
	if err != nil {
		return nil, err
	}
	out := Collection{}
	for _, r := range c {
		if r.Time.After(ref) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Import appends candidates in order. It is all or nothing: the first
// invalid candidate aborts the import and c is returned unchanged.
func Import(c Collection, candidates []route.Route) (Collection, int, error) {
	out := make(Collection, len(c), len(c)+len(candidates))
	copy(out, c)
	for i, r := range candidates {
		if err := r.Validate(); err != nil {
			return c, 0, fmt.Errorf("route %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, len(candidates), nil
}

// Last returns the latest departure in c, if any.
func (c Collection) Last() (route.Clock, bool) {
	if len(c) == 0 {
		return 0, false
	}
	latest := c[0].Time
	for _, r := range c[1:] {
		if r.Time.After(latest) {
			latest = r.Time
		}
	}
	return latest, true
}
