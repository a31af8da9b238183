package structure

import (
	"cmp"
	"strconv"
)

// Bond pairs two position indices of the same sequence.
// When ordered bonds are enumerated, (a,b) and (b,a) are distinct values.
type Bond struct {
	Start int
	End   int
}

// Shift returns b with both endpoints moved by d.
// Used when lifting a segment's bonds into the coordinates of the full sequence.
func (b Bond) Shift(d int) Bond {
	return Bond{Start: b.Start + d, End: b.End + d}
}

// Contains reports whether i is one of b's endpoints.
func (b Bond) Contains(i int) bool { return b.Start == i || b.End == i }

// Other returns the endpoint opposite to i, or -1 if i is not an endpoint.
func (b Bond) Other(i int) int {
	switch i {
	case b.Start:
		return b.End
	case b.End:
		return b.Start
	}

	return -1
}

// String renders b as "(start,end)".
func (b Bond) String() string {
	return "(" + strconv.Itoa(b.Start) + "," + strconv.Itoa(b.End) + ")"
}

// Compare orders bonds by Start, then End. It defines the canonical order
// in which a Sequence stores and reports its bonds.
func (b Bond) Compare(o Bond) int {
	if c := cmp.Compare(b.Start, o.Start); c != 0 {
		return c
	}

	return cmp.Compare(b.End, o.End)
}

// Less reports whether b sorts before o in canonical order.
func (b Bond) Less(o Bond) bool { return b.Compare(o) < 0 }
