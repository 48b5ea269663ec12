// Package config resolves where the routes data file lives and how results
// are displayed.
//
// Settings come from an optional routes.yml (or the file named by
// ROUTES_CONFIG), validated using struct tags. The data file path may be
// overridden by the ROUTES_DATA environment variable and by the -D flag.
package config
