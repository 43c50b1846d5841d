package engine

import "github.com/teklink/devid/internal/catalog"

// candidateSet is the working state of one classification: an ordered set of
// product names that only ever shrinks. Order is catalog order and survives
// every narrowing step, so identical inputs always emit identical output.
type candidateSet struct {
	items []string
}

func newCandidateSet(products []string) *candidateSet {
	return &candidateSet{items: products}
}

func (s *candidateSet) len() int { return len(s.items) }

func (s *candidateSet) list() []string { return s.items }

func (s *candidateSet) contains(product string) bool {
	for _, item := range s.items {
		if item == product {
			return true
		}
	}
	return false
}

// only collapses the set to a single product.
func (s *candidateSet) only(product string) {
	s.items = []string{product}
}

// retain keeps only the listed products, preserving the set's order.
func (s *candidateSet) retain(allowed []string) {
	kept := s.items[:0]
	for _, item := range s.items {
		for _, a := range allowed {
			if item == a {
				kept = append(kept, item)
				break
			}
		}
	}
	s.items = kept
}

// remove drops the listed products if present.
func (s *candidateSet) remove(products ...string) {
	kept := s.items[:0]
	for _, item := range s.items {
		drop := false
		for _, p := range products {
			if item == p {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// allDeskphone reports whether the set is non-empty and every member belongs
// to the Deskphone family.
func (s *candidateSet) allDeskphone() bool {
	if len(s.items) == 0 {
		return false
	}
	for _, item := range s.items {
		if !catalog.IsDeskphoneVariant(item) {
			return false
		}
	}
	return true
}
