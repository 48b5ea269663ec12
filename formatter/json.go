package formatter

import (
	"io"

	"github.com/theoremus-urban-solutions/routes/route"
	"github.com/theoremus-urban-solutions/routes/store"
)

// RenderJSON writes routes in the data file's JSON form.
func RenderJSON(w io.Writer, routes []route.Route) error {
	return store.Encode(w, routes)
}
