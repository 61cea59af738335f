package domain

// Location is a node of the logistics network: the hub or one of the supply centers.
type Location string

const (
	Hub Location = "L1"

	C1 Location = "C1"
	C2 Location = "C2"
	C3 Location = "C3"
)

// Centers lists the supply centers in their fixed enumeration order.
// Route evaluation and candidate selection both walk this order.
var Centers = []Location{C1, C2, C3}

// IsCenter reports whether l is one of the supply centers.
func IsCenter(l Location) bool {
	for _, c := range Centers {
		if c == l {
			return true
		}
	}
	return false
}

// IsKnown reports whether l is the hub or a supply center.
func IsKnown(l Location) bool {
	return l == Hub || IsCenter(l)
}
