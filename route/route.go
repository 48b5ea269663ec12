package route

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Route is a scheduled departure.
type Route struct {
	Destination string `json:"destination"`
	Number      Number `json:"number"`
	Time        Clock  `json:"time"`
}

// input mirrors the raw fields of a route before the time is parsed.
type input struct {
	Destination string `validate:"required,notblank"`
	Time        string `validate:"required,hhmm"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := ParseClock(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// New validates the raw fields and builds a Route.
// A malformed time or blank destination yields a *ValidationError.
func New(destination string, number Number, t string) (Route, error) {
	if err := validate.Struct(input{Destination: destination, Time: t}); err != nil {
		return Route{}, toValidationError(err, destination, t)
	}
	c, err := ParseClock(t)
	if err != nil {
		return Route{}, err
	}
	return Route{Destination: destination, Number: number, Time: c}, nil
}

// Validate checks an already built Route, e.g. one produced by a feed import.
func (r Route) Validate() error {
	if r.Time < 0 || r.Time >= minutesPerDay {
		return &ValidationError{Field: "time", Value: r.Time.String(), Msg: "invalid time format"}
	}
	_, err := New(r.Destination, r.Number, r.Time.String())
	return err
}

func toValidationError(err error, destination, t string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Msg: err.Error()}
	}
	// report the first failing field; Destination is declared first
	switch verrs[0].Field() {
	case "Destination":
		return &ValidationError{Field: "destination", Value: destination, Msg: "destination is required"}
	default:
		return &ValidationError{Field: "time", Value: t, Msg: "invalid time format"}
	}
}
