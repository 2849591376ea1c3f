package allen

// sign is the qualitative relation between two real-valued points on the
// timeline.
type sign uint8

const (
	lt sign = iota
	eq
	gt
)

// signSet is a small bitset over the three signs, used while deriving
// the composition table.
type signSet uint8

func newSignSet(ss ...sign) signSet {
	var out signSet
	for _, s := range ss {
		out |= 1 << s
	}
	return out
}

func (s signSet) has(v sign) bool { return s&(1<<v) != 0 }

const fullSignSet = signSet(1<<lt | 1<<eq | 1<<gt)

// pointCompose derives the possible sign of (p, r) given sign(p, q) = a
// and sign(q, r) = b, by elementary transitivity of a total order. When
// a and b disagree in direction (one lt, the other gt) nothing can be
// said: p vs r is unconstrained.
func pointCompose(a, b sign) signSet {
	switch {
	case a == eq:
		return newSignSet(b)
	case b == eq:
		return newSignSet(a)
	case a == lt && b == lt:
		return newSignSet(lt)
	case a == gt && b == gt:
		return newSignSet(gt)
	default:
		return fullSignSet
	}
}

// signature describes a relation "X r Y" as the four pairwise orderings
// of its endpoints: (X.start vs Y.start), (X.start vs Y.end),
// (X.end vs Y.start), (X.end vs Y.end). Every one of the thirteen Allen
// relations has a unique signature, and the signature of r.Inverse() is
// recoverable from r's by swapping the middle two components and
// flipping every sign.
type signature [4]sign

var signatures = [numRelations]signature{
	Equals:       {eq, lt, gt, eq},
	Before:       {lt, lt, lt, lt},
	After:        {gt, gt, gt, gt},
	Meets:        {lt, lt, eq, lt},
	MetBy:        {gt, eq, gt, gt},
	Overlaps:     {lt, lt, gt, lt},
	OverlappedBy: {gt, lt, gt, gt},
	During:       {gt, lt, gt, lt},
	Contains:     {lt, lt, gt, gt},
	Starts:       {eq, lt, gt, lt},
	StartedBy:    {eq, lt, gt, gt},
	Finishes:     {gt, lt, gt, eq},
	FinishedBy:   {lt, lt, gt, eq},
}

var composeTable [numRelations][numRelations]Set

func init() {
	for _, r1 := range All {
		sig1 := signatures[r1]
		for _, r2 := range All {
			sig2 := signatures[r2]
			composed := composeSignatures(sig1, sig2)
			if composed.IsEmpty() {
				// Conservative fallback: a cell that resolves to no known
				// relation allows every relation rather than none.
				composed = Full()
			}
			composeTable[r1][r2] = composed
		}
	}
}

// composeSignatures derives, from the signature of "X r1 Y" and the
// signature of "Y r2 Z", the set of relations r3 for which "X r3 Z" is
// consistent with some concrete choice of endpoints. For each of the
// four X/Z endpoint pairs, the possible sign is derived two ways (via Y's
// start and via Y's end) and intersected; a candidate r3 survives if its
// signature fits within all four derived possibilities. This computes
// the classical Allen (1983) composition table from point-algebra
// primitives rather than a transcribed literal, and is always sound: an
// accidental over-approximation only weakens propagation, it never
// yields a wrong answer.
func composeSignatures(sig1, sig2 signature) Set {
	// sig1 = (xs-ys, xs-ye, xe-ys, xe-ye); sig2 = (ys-zs, ys-ze, ye-zs, ye-ze)
	s1, s2, s3, s4 := sig1[0], sig1[1], sig1[2], sig1[3]
	t1, t2, t3, t4 := sig2[0], sig2[1], sig2[2], sig2[3]

	possibleSS := pointCompose(s1, t1) & pointCompose(s2, t3) // xs vs zs
	possibleSE := pointCompose(s1, t2) & pointCompose(s2, t4) // xs vs ze
	possibleES := pointCompose(s3, t1) & pointCompose(s4, t3) // xe vs zs
	possibleEE := pointCompose(s3, t2) & pointCompose(s4, t4) // xe vs ze

	var out Set
	for _, r3 := range All {
		sig3 := signatures[r3]
		if possibleSS.has(sig3[0]) && possibleSE.has(sig3[1]) &&
			possibleES.has(sig3[2]) && possibleEE.has(sig3[3]) {
			out = out.Add(r3)
		}
	}
	return out
}

// Compose returns the set of relations that can hold between X and Z
// given that "X r1 Y" and "Y r2 Z" hold. This is the core operation used
// by path-consistency: intersecting a stored constraint against the
// composition of the two constraints that reach it transitively can only
// ever narrow it.
func Compose(r1, r2 Relation) Set {
	return composeTable[r1][r2]
}

// ComposeSets returns the union, over every pair (r1, r2) with r1 in s1
// and r2 in s2, of Compose(r1, r2): the composition of two disjunctive
// relation sets.
func ComposeSets(s1, s2 Set) Set {
	var out Set
	for _, r1 := range s1.Slice() {
		for _, r2 := range s2.Slice() {
			out = out.Union(Compose(r1, r2))
		}
	}
	return out
}
