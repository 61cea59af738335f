package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownLocation     = errors.New("unknown location")
	ErrUnknownCenter       = errors.New("unknown center")
	ErrInvalidProduct      = errors.New("invalid product")
	ErrDuplicateProduct    = errors.New("duplicate product")
	ErrInvalidDistance     = errors.New("invalid distance")
	ErrConflictingDistance = errors.New("conflicting distance")
	ErrMissingDistance     = errors.New("missing distance")
)

// Distance between two locations. Direction is irrelevant.
type Distance struct {
	From  Location
	To    Location
	Value decimal.Decimal
}

type locationPair struct{ a, b Location }

func pairOf(x, y Location) locationPair {
	if y < x {
		x, y = y, x
	}
	return locationPair{a: x, b: y}
}

// Network is the static product catalog and distance table.
//
// A Network is immutable once built by NewNetwork and may be shared by any
// number of goroutines without synchronization.
type Network struct {
	products    map[string]Product
	distances   map[locationPair]decimal.Decimal
	fingerprint uint64
}

// NewNetwork validates the catalog and distance table and builds a Network.
//
// Every product must reference a supply center and have a positive weight.
// Distances are stored as unordered pairs; giving both directions is allowed
// as long as the values agree. The table must cover every center<->hub and
// center<->center pair.
func NewNetwork(products []Product, distances []Distance) (*Network, error) {
	n := &Network{
		products:  make(map[string]Product, len(products)),
		distances: make(map[locationPair]decimal.Decimal, len(distances)),
	}

	for i, p := range products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("new network: product at index %d: %w: empty id", i, ErrInvalidProduct)
		}
		if !IsCenter(p.Center) {
			return nil, fmt.Errorf("new network: product %q: %w %q", id, ErrUnknownCenter, p.Center)
		}
		if !p.Weight.IsPositive() {
			return nil, fmt.Errorf("new network: product %q: %w: weight %s must be positive", id, ErrInvalidProduct, p.Weight)
		}
		if _, ok := n.products[id]; ok {
			return nil, fmt.Errorf("new network: %w %q", ErrDuplicateProduct, id)
		}
		p.ID = id
		n.products[id] = p
	}

	for _, d := range distances {
		if !IsKnown(d.From) || !IsKnown(d.To) {
			return nil, fmt.Errorf("new network: distance %s-%s: %w", d.From, d.To, ErrUnknownLocation)
		}
		if d.From == d.To {
			return nil, fmt.Errorf("new network: distance %s-%s: %w: endpoints must differ", d.From, d.To, ErrInvalidDistance)
		}
		if d.Value.IsNegative() {
			return nil, fmt.Errorf("new network: distance %s-%s: %w: %s is negative", d.From, d.To, ErrInvalidDistance, d.Value)
		}

		key := pairOf(d.From, d.To)
		if prev, ok := n.distances[key]; ok && !prev.Equal(d.Value) {
			return nil, fmt.Errorf(
				"new network: distance %s-%s: %w: %s vs %s",
				d.From, d.To, ErrConflictingDistance, prev, d.Value,
			)
		}
		n.distances[key] = d.Value
	}

	for _, pair := range requiredPairs() {
		if _, ok := n.distances[pair]; !ok {
			return nil, fmt.Errorf("new network: %w between %s and %s", ErrMissingDistance, pair.a, pair.b)
		}
	}

	n.fingerprint = n.computeFingerprint()
	return n, nil
}

// Every center must reach the hub and every other center.
func requiredPairs() []locationPair {
	pairs := make([]locationPair, 0, len(Centers)*(len(Centers)+1)/2)
	for i, c := range Centers {
		pairs = append(pairs, pairOf(c, Hub))
		for _, other := range Centers[i+1:] {
			pairs = append(pairs, pairOf(c, other))
		}
	}
	return pairs
}

// Product looks up a product by id.
func (n *Network) Product(id string) (Product, bool) {
	p, ok := n.products[id]
	return p, ok
}

// Products returns the catalog sorted by product id.
func (n *Network) Products() []Product {
	out := make([]Product, 0, len(n.products))
	for _, p := range n.products {
		out = append(out, p)
	}
	slices.SortFunc(out, func(x, y Product) int { return strings.Compare(x.ID, y.ID) })
	return out
}

// Distance returns the distance between a and b in either direction.
// The result is not Valid when the table has no entry for the pair.
func (n *Network) Distance(a, b Location) decimal.NullDecimal {
	v, ok := n.distances[pairOf(a, b)]
	return decimal.NullDecimal{Decimal: v, Valid: ok}
}

// Distances returns one entry per stored pair, with From <= To, sorted.
func (n *Network) Distances() []Distance {
	out := make([]Distance, 0, len(n.distances))
	for k, v := range n.distances {
		out = append(out, Distance{From: k.a, To: k.b, Value: v})
	}
	slices.SortFunc(out, func(x, y Distance) int {
		if c := strings.Compare(string(x.From), string(y.From)); c != 0 {
			return c
		}
		return strings.Compare(string(x.To), string(y.To))
	})
	return out
}

// Fingerprint identifies the network contents. Two networks with the same
// products and distances share a fingerprint.
func (n *Network) Fingerprint() uint64 { return n.fingerprint }

func (n *Network) computeFingerprint() uint64 {
	h := xxhash.New()
	for _, p := range n.Products() {
		fmt.Fprintf(h, "p|%s|%s|%s\n", p.ID, p.Center, p.Weight.String())
	}
	for _, d := range n.Distances() {
		fmt.Fprintf(h, "d|%s|%s|%s\n", d.From, d.To, d.Value.String())
	}
	return h.Sum64()
}
