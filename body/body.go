// Package body holds the static table of celestial bodies drawn by the orrery.
//
// A table is built once at startup, validated, and never mutated afterwards.
// Each body's name doubles as the stable identifier of its drawable handle.
package body

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var (
	ErrInvalidBody   = errors.New("invalid body")
	ErrDuplicateName = errors.New("duplicate body name")
	ErrEmptyTable    = errors.New("empty body table")
)

// Body is a celestial body on a fixed circular orbit around the center
type Body struct {
	Name        string  `toml:"name"`
	RadiusAU    float64 `toml:"radius_au"`
	PeriodYears float64 `toml:"period_years"`
	Color       string  `toml:"color"`
}

// Validate checks the orbital invariants: positive radius and period, a name, a known color
func (b Body) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.Wrap(ErrInvalidBody, "name is empty")
	}
	if !(b.RadiusAU > 0) {
		return errors.Wrapf(ErrInvalidBody, "%s: orbital radius must be positive, got %v", b.Name, b.RadiusAU)
	}
	if !(b.PeriodYears > 0) {
		return errors.Wrapf(ErrInvalidBody, "%s: orbital period must be positive, got %v", b.Name, b.PeriodYears)
	}
	if !ColorKnown(b.Color) {
		return errors.Wrapf(ErrInvalidBody, "%s: unknown color %q", b.Name, b.Color)
	}
	return nil
}

// ColorKnown reports whether name resolves through tcell's color table (names or #rrggbb)
func ColorKnown(name string) bool {
	return tcell.GetColor(strings.ToLower(strings.TrimSpace(name))).Valid()
}

// Table is an ordered set of bodies, innermost first by convention
type Table []Body

// Validate checks every body and name uniqueness
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	seen := make(map[string]struct{}, len(t))
	for i, b := range t {
		if err := b.Validate(); err != nil {
			return errors.Wrapf(err, "body %d", i)
		}
		if _, dup := seen[b.Name]; dup {
			return errors.Wrapf(ErrDuplicateName, "%q", b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}

// Lookup returns the body with the given name
func (t Table) Lookup(name string) (Body, bool) {
	for _, b := range t {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}

// MaxRadius returns the outermost orbital radius, 0 for an empty table
func (t Table) MaxRadius() float64 {
	var r float64
	for _, b := range t {
		if b.RadiusAU > r {
			r = b.RadiusAU
		}
	}
	return r
}

// SolarSystem returns the eight planets with circular-orbit approximations.
// Data: orbital radius (AU), orbital period (Earth years), display color.
func SolarSystem() Table {
	return Table{
		{Name: "Mercury", RadiusAU: 0.387, PeriodYears: 0.24, Color: "gray"},
		{Name: "Venus", RadiusAU: 0.723, PeriodYears: 0.62, Color: "orange"},
		{Name: "Earth", RadiusAU: 1.0, PeriodYears: 1.0, Color: "blue"},
		{Name: "Mars", RadiusAU: 1.524, PeriodYears: 1.88, Color: "red"},
		{Name: "Jupiter", RadiusAU: 5.203, PeriodYears: 11.86, Color: "brown"},
		{Name: "Saturn", RadiusAU: 9.537, PeriodYears: 29.46, Color: "gold"},
		{Name: "Uranus", RadiusAU: 19.191, PeriodYears: 84.01, Color: "lightblue"},
		{Name: "Neptune", RadiusAU: 30.069, PeriodYears: 164.79, Color: "blue"},
	}
}
