// Package urdna2015 implements RDF Dataset Normalization (URDNA2015): a
// deterministic canonicalization algorithm for RDF datasets containing
// blank nodes.
//
// Canonicalize takes a Dataset — an already-parsed sequence of Quad
// values — and returns its canonical N-Quads serialization. Every blank
// node in the output is relabeled with a stable, structurally-derived
// identifier of the form "_:c14nN"; two RDF-isomorphic datasets always
// produce byte-identical output.
//
// The algorithm runs in two phases. Phase one computes a structural hash
// of each blank node's immediate neighborhood (hashFirstDegreeQuads).
// Phase two resolves any remaining ties among blank nodes that hashed
// identically by exploring permutations of the tied nodes and their
// related neighbors, picking the lexicographically smallest hash path
// (hashNDegreeQuads). The result is assigned through a cloneable
// IdentifierIssuer so speculative exploration never pollutes the
// committed labeling.
//
// This package parses nothing: constructing a Dataset from Turtle,
// JSON-LD, RDF/XML, or any other serialization is the caller's
// responsibility. Canonicalize is synchronous, single-threaded, and
// holds no package-level state, so independent datasets may be
// canonicalized concurrently from separate goroutines.
//
// Example:
//
//	ds := urdna2015.Dataset{
//		{S: urdna2015.BlankNode{ID: "x"}, P: urdna2015.IRI{Value: "http://ex/p"}, O: urdna2015.Literal{Lexical: "v"}},
//	}
//	out, err := urdna2015.Canonicalize(ds, urdna2015.DefaultOptions())
//	// out == "_:c14n0 <http://ex/p> \"v\" .\n"
package urdna2015
