package urdna2015

import "strconv"

// IdentifierIssuer assigns fresh, deterministic, prefix-based labels to
// original blank-node identifiers and remembers the assignment. The
// same (prefix, call sequence) always produces the same state, and
// Clone produces an independent copy so speculative exploration never
// mutates a caller's working issuer.
type IdentifierIssuer struct {
	prefix  string
	counter int
	ids     map[string]string
	order   []string
}

// NewIdentifierIssuer returns an issuer that mints labels "<prefix>0",
// "<prefix>1", and so on.
func NewIdentifierIssuer(prefix string) *IdentifierIssuer {
	return &IdentifierIssuer{
		prefix: prefix,
		ids:    make(map[string]string),
	}
}

// Counter returns the number of identifiers issued so far.
func (iss *IdentifierIssuer) Counter() int {
	return iss.counter
}

// Issue returns the issued identifier for orig, minting and recording a
// new one on first use. It is idempotent: repeated calls for the same
// orig return the same issued label.
func (iss *IdentifierIssuer) Issue(orig string) string {
	if existing, ok := iss.ids[orig]; ok {
		return existing
	}
	issued := iss.prefix + strconv.Itoa(iss.counter)
	iss.counter++
	iss.ids[orig] = issued
	iss.order = append(iss.order, orig)
	return issued
}

// Has reports whether orig has already been issued an identifier.
func (iss *IdentifierIssuer) Has(orig string) bool {
	_, ok := iss.ids[orig]
	return ok
}

// Issued returns the identifier previously issued for orig, and false
// if orig has never been issued one.
func (iss *IdentifierIssuer) Issued(orig string) (string, bool) {
	v, ok := iss.ids[orig]
	return v, ok
}

// IssuedOrder returns the original identifiers in the order they were
// issued.
func (iss *IdentifierIssuer) IssuedOrder() []string {
	out := make([]string, len(iss.order))
	copy(out, iss.order)
	return out
}

// Clone returns a deep copy of iss; mutating the clone never affects
// the original, which is what lets phase-2 explore permutations of
// blank-node labeling without committing to any of them until one is
// chosen.
func (iss *IdentifierIssuer) Clone() *IdentifierIssuer {
	clone := &IdentifierIssuer{
		prefix:  iss.prefix,
		counter: iss.counter,
		ids:     make(map[string]string, len(iss.ids)),
		order:   make([]string, len(iss.order)),
	}
	for k, v := range iss.ids {
		clone.ids[k] = v
	}
	copy(clone.order, iss.order)
	return clone
}
