// Package unitclass: sentinel errors.
package unitclass

import "errors"

// Sentinel errors for unit and class-number computation.
var (
	// ErrImaginaryRing indicates FundamentalUnit on an imaginary ring.
	ErrImaginaryRing = errors.New("unitclass: imaginary rings have no fundamental unit")
	// ErrUnitRange indicates the fundamental unit left the representable
	// range, so the class number cannot be derived from the narrow one.
	ErrUnitRange = errors.New("unitclass: fundamental unit exceeds the representable range")
)
