// Package interval implements the partial-value time interval: a named
// span with start, end, and duration fields that may each be known or
// unknown, and that auto-completes the third value whenever any two of
// the three are present.
package interval

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance used throughout this module for comparing
// floating point time values. Two values within Epsilon of each other
// are considered equal.
const Epsilon = 1e-6

// ErrIllFormed is returned when a start, end, and duration are all
// supplied but are mutually inconsistent (end - start != duration,
// outside Epsilon).
var ErrIllFormed = errors.New("interval: start, end, and duration are inconsistent")

// Interval is a time interval expressed in a caller-chosen real-valued
// unit (seconds, hours, whatever the caller's extractor produces). Any
// of Start, End, or Duration may be unknown (nil); a known pair implies
// the third.
type Interval struct {
	Name     string
	Start    *float64
	End      *float64
	Duration *float64
}

// New constructs an Interval from whichever of start, end, and duration
// the caller knows, deriving the remaining value and validating
// consistency. Passing all three nil is valid: the interval starts out
// fully unknown and may be completed later via Fill.
func New(name string, start, end, duration *float64) (Interval, error) {
	iv := Interval{Name: name, Start: start, End: end, Duration: duration}
	if err := iv.normalize(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// normalize derives the third value from any two known values and
// checks consistency when all three are present.
func (iv *Interval) normalize() error {
	switch {
	case iv.Start != nil && iv.End != nil:
		d := *iv.End - *iv.Start
		if iv.Duration != nil && math.Abs(*iv.Duration-d) > Epsilon {
			return fmt.Errorf("%w: %s has start=%.6f end=%.6f duration=%.6f (expected %.6f)",
				ErrIllFormed, iv.Name, *iv.Start, *iv.End, *iv.Duration, d)
		}
		iv.Duration = &d
	case iv.Start != nil && iv.Duration != nil:
		e := *iv.Start + *iv.Duration
		iv.End = &e
	case iv.End != nil && iv.Duration != nil:
		s := *iv.End - *iv.Duration
		iv.Start = &s
	}
	return nil
}

// Fill sets any of start, end, or duration that are currently unknown,
// leaving already-known fields untouched (values are monotonic: once
// known, never overwritten), then re-derives and validates the third
// value. It reports whether anything changed.
func (iv *Interval) Fill(start, end, duration *float64) (bool, error) {
	changed := false
	if iv.Start == nil && start != nil {
		iv.Start = start
		changed = true
	}
	if iv.End == nil && end != nil {
		iv.End = end
		changed = true
	}
	if iv.Duration == nil && duration != nil {
		iv.Duration = duration
		changed = true
	}
	if changed {
		if err := iv.normalize(); err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// IsComplete reports whether both Start and End are known. Allen
// relation determination requires this.
func (iv Interval) IsComplete() bool {
	return iv.Start != nil && iv.End != nil
}

func fmtPtr(v *float64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%.2f", *v)
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s[start=%s, end=%s, duration=%s]",
		iv.Name, fmtPtr(iv.Start), fmtPtr(iv.End), fmtPtr(iv.Duration))
}

// Ptr is a small convenience for building *float64 literals in callers
// and tests.
func Ptr(v float64) *float64 {
	return &v
}
