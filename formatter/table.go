package formatter

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/theoremus-urban-solutions/routes/route"
)

// Column widths of the route table, in characters.
const (
	DestinationWidth = 30
	NumberWidth      = 4
	TimeWidth        = 20
)

// NoRoutesMessage is printed instead of a table when there is nothing to show.
const NoRoutesMessage = "No routes found"

var headers = [3]string{"Destination", "Number", "Time"}

// RenderTable writes routes as a bordered three-column table, or
// NoRoutesMessage when routes is empty.
func RenderTable(w io.Writer, routes []route.Route) error {
	_, err := io.WriteString(w, Table(routes))
	return err
}

// Table returns the text RenderTable writes.
func Table(routes []route.Route) string {
	var b strings.Builder
	if len(routes) == 0 {
		b.WriteString(NoRoutesMessage)
		b.WriteByte('\n')
		return b.String()
	}

	line := border()
	b.WriteString(line)
	writeRow(&b,
		center(headers[0], DestinationWidth),
		center(headers[1], NumberWidth),
		center(headers[2], TimeWidth),
	)
	b.WriteString(line)
	for _, r := range routes {
		writeRow(&b,
			padRight(r.Destination, DestinationWidth),
			padLeft(r.Number.String(), NumberWidth),
			padRight(r.Time.String(), TimeWidth),
		)
	}
	b.WriteString(line)
	return b.String()
}

func border() string {
	return "+-" + strings.Repeat("-", DestinationWidth) +
		"-+-" + strings.Repeat("-", NumberWidth) +
		"-+-" + strings.Repeat("-", TimeWidth) + "-+\n"
}

func writeRow(b *strings.Builder, cells ...string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

// clip cuts s to at most width runes.
func clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}

func padRight(s string, width int) string {
	s = clip(s, width)
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}

func padLeft(s string, width int) string {
	s = clip(s, width)
	return strings.Repeat(" ", width-utf8.RuneCountInString(s)) + s
}

// center puts the odd space on the right.
func center(s string, width int) string {
	s = clip(s, width)
	gap := width - utf8.RuneCountInString(s)
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
