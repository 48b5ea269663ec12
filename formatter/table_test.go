package formatter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/routes/route"
)

func TestTable_Empty(t *testing.T) {
	assert.Equal(t, "No routes found\n", Table(nil))
	assert.Equal(t, "No routes found\n", Table([]route.Route{}))
}

func TestTable_Layout(t *testing.T) {
	routes := []route.Route{
		{Destination: "Central Station", Number: route.NumberOf(12), Time: route.MustParseClock("08:15")},
		{Destination: "Airport", Time: route.MustParseClock("23:40")},
	}

	want := strings.Join([]string{
		"+--------------------------------+------+----------------------+",
		"|          Destination           | Numb |         Time         |",
		"+--------------------------------+------+----------------------+",
		"| Central Station                |   12 | 08:15                |",
		"| Airport                        |      | 23:40                |",
		"+--------------------------------+------+----------------------+",
		"",
	}, "\n")
	assert.Equal(t, want, Table(routes))
}

func TestTable_ClipsAndCountsRunes(t *testing.T) {
	long := strings.Repeat("Ж", 40)
	routes := []route.Route{
		{Destination: long, Number: route.NumberOf(123456), Time: route.MustParseClock("07:00")},
		{Destination: "Вокзал", Number: route.NumberOf(3), Time: route.MustParseClock("07:05")},
	}

	lines := strings.Split(strings.TrimSuffix(Table(routes), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, 64, len([]rune(l)), l)
	}
	assert.Equal(t, "| "+strings.Repeat("Ж", 30)+" | 1234 | 07:00                |", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "| Вокзал                         |    3 |"))
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, []route.Route{
		{Destination: "Гавань", Number: route.NumberOf(2), Time: route.MustParseClock("17:30")},
	}))
	assert.JSONEq(t, `[{"destination": "Гавань", "number": 2, "time": "17:30"}]`, buf.String())
	assert.Contains(t, buf.String(), "Гавань")
}

func TestRenderPDF(t *testing.T) {
	tests := []struct {
		name   string
		routes []route.Route
	}{
		{"empty", nil},
		{"with routes", []route.Route{
			{Destination: "Café Square", Number: route.NumberOf(4), Time: route.MustParseClock("10:10")},
			{Destination: "Depot", Time: route.MustParseClock("11:45")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderPDF(&buf, Title("routes.json"), tt.routes, PDFOptions{}))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}

func TestRenderPDF_CyrillicNeedsFont(t *testing.T) {
	routes := []route.Route{
		{Destination: "Вокзал Café", Number: route.NumberOf(3), Time: route.MustParseClock("07:05")},
	}

	var buf bytes.Buffer
	err := RenderPDF(&buf, Title("routes.json"), routes, PDFOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Вокзал Café")
	assert.Zero(t, buf.Len())

	err = RenderPDF(&buf, Title("маршруты.json"), nil, PDFOptions{})
	assert.Error(t, err)
}

func TestRenderPDF_UnicodeFont(t *testing.T) {
	routes := []route.Route{
		{Destination: "Вокзал", Number: route.NumberOf(3), Time: route.MustParseClock("07:05")},
	}

	t.Run("missing font file", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderPDF(&buf, Title("routes.json"), routes, PDFOptions{FontFile: filepath.Join(t.TempDir(), "none.ttf")})
		assert.Error(t, err)
	})

	t.Run("embedded font", func(t *testing.T) {
		font := "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
		if _, err := os.Stat(font); err != nil {
			t.Skip("DejaVuSans.ttf not installed")
		}
		var buf bytes.Buffer
		require.NoError(t, RenderPDF(&buf, Title("маршруты.json"), routes, PDFOptions{FontFile: font}))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	})
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Departures", Title(" "))
	assert.Equal(t, "Departures: routes.json", Title("routes.json"))
}
