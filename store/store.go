package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/theoremus-urban-solutions/routes/route"
)

const indent = "    "

// record is the on-disk shape of a route. Pointers distinguish a missing
// key from an empty value.
type record struct {
	Destination *string      `json:"destination"`
	Number      route.Number `json:"number"`
	Time        *string      `json:"time"`
}

// Decode reads a JSON array of routes.
func Decode(r io.Reader) ([]route.Route, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &route.StorageError{Op: "read", Err: err}
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &route.StorageError{Op: "decode", Err: errors.New("expected a JSON array of routes")}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, &route.StorageError{Op: "decode", Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &route.StorageError{Op: "decode", Err: errors.New("unexpected data after routes array")}
	}

	routes := make([]route.Route, 0, len(records))
	for i, rec := range records {
		if rec.Destination == nil || rec.Time == nil {
			return nil, &route.StorageError{Op: "decode", Err: fmt.Errorf("route %d: missing destination or time", i)}
		}
		rt, err := route.New(*rec.Destination, rec.Number, *rec.Time)
		if err != nil {
			return nil, &route.StorageError{Op: "decode", Err: fmt.Errorf("route %d: %w", i, err)}
		}
		routes = append(routes, rt)
	}
	return routes, nil
}

// Encode writes routes as an indented JSON array followed by a newline.
func Encode(w io.Writer, routes []route.Route) error {
	if routes == nil {
		routes = []route.Route{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(routes); err != nil {
		return &route.StorageError{Op: "encode", Err: err}
	}
	return nil
}

// Load reads the routes stored at path. The file must exist; callers treat
// a missing file as an empty collection (see Exists).
func Load(path string) ([]route.Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &route.StorageError{Path: path, Op: "open", Err: err}
	}
	defer func() { _ = f.Close() }()

	routes, err := Decode(f)
	if err != nil {
		var serr *route.StorageError
		if errors.As(err, &serr) {
			serr.Path = path
		}
		return nil, err
	}
	return routes, nil
}

// Save overwrites path with the given routes.
func Save(path string, routes []route.Route) error {
	var buf bytes.Buffer
	if err := Encode(&buf, routes); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &route.StorageError{Path: path, Op: "write", Err: err}
	}
	return nil
}

// Exists reports whether a data file is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &route.StorageError{Path: path, Op: "stat", Err: err}
	}
}

// LoadOrEmpty loads path, returning an empty collection when the file does
// not exist yet.
func LoadOrEmpty(path string) ([]route.Route, error) {
	ok, err := Exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []route.Route{}, nil
	}
	return Load(path)
}
