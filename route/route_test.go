package route

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_RoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			c, err := ClockOf(h, m)
			require.NoError(t, err)
			s := c.String()
			parsed, err := ParseClock(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, parsed.String())
			assert.Equal(t, c, parsed)
		}
	}
}

func TestParseClock_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"hour out of range", "24:00"},
		{"minute out of range", "12:60"},
		{"both out of range", "25:99"},
		{"single digit hour", "9:00"},
		{"with seconds", "09:00:00"},
		{"dot separator", "09.00"},
		{"leading space", " 09:00"},
		{"trailing space", "09:00 "},
		{"letters", "ab:cd"},
		{"signed", "+9:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClock(tt.input)
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "time", verr.Field)
			assert.Equal(t, "invalid time format", verr.Msg)
		})
	}
}

func TestClock_After(t *testing.T) {
	assert.True(t, MustParseClock("17:30").After(MustParseClock("10:00")))
	assert.False(t, MustParseClock("10:00").After(MustParseClock("10:00")))
	// no wraparound past midnight
	assert.False(t, MustParseClock("00:30").After(MustParseClock("23:00")))
}

func TestNew(t *testing.T) {
	r, err := New("Depot", NumberOf(5), "09:00")
	require.NoError(t, err)
	assert.Equal(t, "Depot", r.Destination)
	assert.Equal(t, NumberOf(5), r.Number)
	assert.Equal(t, "09:00", r.Time.String())

	_, err = New("Depot", NoNumber, "25:99")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "time", verr.Field)

	_, err = New("   ", NoNumber, "09:00")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "destination", verr.Field)
}

func TestRoute_JSON(t *testing.T) {
	b, err := json.Marshal([]Route{
		{Destination: "Airport", Number: NumberOf(7), Time: MustParseClock("23:40")},
		{Destination: "Depot", Time: MustParseClock("06:05")},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"destination": "Airport", "number": 7, "time": "23:40"},
		{"destination": "Depot", "number": null, "time": "06:05"}
	]`, string(b))
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var n Number
	require.NoError(t, json.Unmarshal([]byte("12"), &n))
	assert.Equal(t, NumberOf(12), n)

	require.NoError(t, json.Unmarshal([]byte("null"), &n))
	assert.False(t, n.Valid)
	assert.Equal(t, "", n.String())

	assert.Error(t, json.Unmarshal([]byte(`"12"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &n))
}
