package urdna2015

// Options configures a single Canonicalize call.
type Options struct {
	// Algorithm selects the message digest. Only "sha256" is accepted;
	// Canonicalize treats an empty value as "sha256".
	Algorithm string
	// MaxCallStackDepth bounds hashNDegreeQuads recursion depth within a
	// single top-level call. Zero means unlimited.
	MaxCallStackDepth int
	// MaxTotalCallStackDepth bounds the cumulative number of
	// hashNDegreeQuads invocations across the whole canonicalization.
	// Zero means unlimited.
	MaxTotalCallStackDepth int
}

// DefaultOptions returns the conventional configuration: SHA-256, no
// recursion bounds.
func DefaultOptions() Options {
	return Options{Algorithm: "sha256"}
}
