// Package elements implements the symbol library of the floor plan renderer.
//
// Every element is a plain struct whose exported fields mirror the keys
// accepted in configuration files. An element is used in two steps: Validate
// fills omitted fields with defaults and rejects parameters that cannot
// produce a drawable symbol, then Draw paints the symbol onto a
// drawing.Surface. Draw never fails; anything that could go wrong is caught
// during validation.
//
// Coordinates and sizes are in meters unless a field says otherwise. Line
// widths and font sizes are paper space quantities in typographic points, so
// symbols keep the same stroke weight at any plan scale. Orientation angles
// are degrees counterclockwise from the positive X axis, and rotation is
// always about the element's anchor point.
package elements

import (
	"github.com/Nikolay-Lysenko/renovation/pkg/drawing"
	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
)

// Defaults shared by elements that do not insist on their own values.
const (
	DefaultColor     = "black"
	DefaultLineWidth = 0.5
)

// Element is a drawable floor plan symbol.
type Element interface {
	// Validate fills omitted optional fields with defaults and reports
	// parameters that cannot produce a drawable symbol.
	Validate() error

	// Draw paints the symbol. Callers must validate the element first.
	Draw(s drawing.Surface)
}

// checkColor rejects color tokens the drawing backend cannot resolve.
func checkColor(token string) error {
	_, err := drawing.LookupColor(token)
	return err
}

// requirePositive reports a validation error unless v > 0.
func requirePositive(v float64, what string) error {
	if v <= 0 {
		return errors.New(errors.ErrCodeInvalidElement, "%s must be positive", what)
	}
	return nil
}
