package allen

import (
	"fmt"
	"math"

	"github.com/dcrowell-labs/chronoverify/interval"
)

// Determine returns the single exact Allen relation that holds between
// two fully-known intervals, checked in the fixed order: equals, before,
// after, meets, met-by, overlaps, overlapped-by, during, contains,
// starts, started-by, finishes, finished-by. The order matters only at
// the boundary cases epsilon is meant to absorb (e.g. an interval that
// both "meets" and, within tolerance, "equals" another resolves to
// equals first).
func Determine(x, y interval.Interval) (Relation, error) {
	if !x.IsComplete() || !y.IsComplete() {
		return 0, fmt.Errorf("%w: %s or %s is not complete", interval.ErrIllFormed, x.Name, y.Name)
	}
	xs, xe := *x.Start, *x.End
	ys, ye := *y.Start, *y.End
	const eps = interval.Epsilon

	near := func(a, b float64) bool { return math.Abs(a-b) < eps }

	switch {
	case near(xs, ys) && near(xe, ye):
		return Equals, nil
	case xe < ys-eps:
		return Before, nil
	case xs > ye+eps:
		return After, nil
	case near(xe, ys):
		return Meets, nil
	case near(xs, ye):
		return MetBy, nil
	case xs < ys-eps && ys < xe-eps && xe < ye-eps:
		return Overlaps, nil
	case ys < xs-eps && xs < ye-eps && ye < xe-eps:
		return OverlappedBy, nil
	case ys < xs-eps && xe < ye-eps:
		return During, nil
	case xs < ys-eps && ye < xe-eps:
		return Contains, nil
	case near(xs, ys) && xe < ye-eps:
		return Starts, nil
	case near(xs, ys) && ye < xe-eps:
		return StartedBy, nil
	case xs > ys+eps && near(xe, ye):
		return Finishes, nil
	case xs < ys-eps && near(xe, ye):
		return FinishedBy, nil
	default:
		return 0, fmt.Errorf("%w: no relation determined between %s and %s", interval.ErrIllFormed, x.Name, y.Name)
	}
}
