package constraint

import "errors"

// ErrUnknownInterval is returned when a constraint or query names an
// interval that was never registered with the solver.
var ErrUnknownInterval = errors.New("constraint: unknown interval")

// ErrIllFormedInterval is returned when an interval's start, end, and
// duration are mutually inconsistent. Errors returned with it from
// ComputeBounds also wrap the underlying interval.ErrIllFormed, so
// callers can errors.Is against either sentinel.
var ErrIllFormedInterval = errors.New("constraint: ill-formed interval")

// ErrInconsistent is returned by Propagate when path-consistency
// discovers a constraint with no remaining possible relations: the
// problem as stated has no solution.
var ErrInconsistent = errors.New("constraint: temporal constraints are inconsistent")

// ErrIterationCapExceeded is returned when propagation or bound
// inference fails to reach a fixed point within its iteration cap. The
// partial result computed so far is still returned; this error only
// signals that it may not be complete. Path-consistency is necessary but
// not sufficient for full consistency over the Allen algebra in general,
// so a cap is an accepted, documented approximation rather than a bug.
var ErrIterationCapExceeded = errors.New("constraint: iteration cap exceeded before reaching a fixed point")
