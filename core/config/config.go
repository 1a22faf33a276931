package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Configuration holds the runtime settings shared by every program.
type Configuration struct {
	// Color controls whether ls output is colorized (always|auto|never).
	Color string `json:"color" validate:"required,oneof=always auto never"`
	// Verbose enables writing session events to the application log.
	Verbose bool `json:"verbose"`
}

// Default returns the configuration used when no flags are given.
func Default() *Configuration {
	return &Configuration{
		Color: ColorAuto,
	}
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// ShouldColor reports whether output should be colored given whether the
// output is attached to a terminal.
func (c *Configuration) ShouldColor(isPTY bool) bool {
	switch c.Color {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isPTY
	}
}
