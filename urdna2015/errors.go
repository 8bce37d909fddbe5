package urdna2015

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a canonicalization failure programmatically.
type ErrorCode string

const (
	// ErrCodeUnsupportedAlgorithm indicates an unrecognized hash algorithm.
	ErrCodeUnsupportedAlgorithm ErrorCode = "UNSUPPORTED_ALGORITHM"
	// ErrCodeInvalidTermPosition indicates a term variant appeared in a
	// quad position its variant forbids.
	ErrCodeInvalidTermPosition ErrorCode = "INVALID_TERM_POSITION"
	// ErrCodeMalformedLiteral indicates a literal whose language tag and
	// datatype are inconsistent.
	ErrCodeMalformedLiteral ErrorCode = "MALFORMED_LITERAL"
	// ErrCodeRecursionLimit indicates hashNDegreeQuads exceeded a
	// configured recursion bound.
	ErrCodeRecursionLimit ErrorCode = "RECURSION_LIMIT_EXCEEDED"
	// ErrCodeUnlabeledBlankNode indicates an internal consistency
	// failure: a blank node survived to the rewrite step without ever
	// being issued a canonical identifier.
	ErrCodeUnlabeledBlankNode ErrorCode = "UNLABELED_BLANK_NODE"
)

var (
	// ErrUnsupportedAlgorithm is returned by NewDigest/Canonicalize for
	// any algorithm name other than "sha256" (Canonicalize reads an empty
	// name as "sha256").
	ErrUnsupportedAlgorithm = errors.New("urdna2015: unsupported hash algorithm")
	// ErrInvalidTermPosition is returned when a term occupies a quad
	// position its variant forbids (e.g. a Literal as subject).
	ErrInvalidTermPosition = errors.New("urdna2015: term not valid in this position")
	// ErrMalformedLiteral is returned for a literal with an inconsistent
	// language tag/datatype pairing.
	ErrMalformedLiteral = errors.New("urdna2015: malformed literal")
	// ErrRecursionLimitExceeded is returned when hashNDegreeQuads
	// recursion exceeds a configured depth bound.
	ErrRecursionLimitExceeded = errors.New("urdna2015: recursion limit exceeded")
	// ErrUnlabeledBlankNode is returned on the internal-consistency
	// failure described by ErrCodeUnlabeledBlankNode. It should be
	// unreachable given a complete blank-node index.
	ErrUnlabeledBlankNode = errors.New("urdna2015: blank node was never issued a canonical identifier")
)

// Code maps an error returned by this package to its ErrorCode, or the
// empty string if err is nil or not recognized by this package.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var canonErr *CanonError
	if errors.As(err, &canonErr) {
		return canonErr.Code
	}
	switch {
	case errors.Is(err, ErrUnsupportedAlgorithm):
		return ErrCodeUnsupportedAlgorithm
	case errors.Is(err, ErrInvalidTermPosition):
		return ErrCodeInvalidTermPosition
	case errors.Is(err, ErrMalformedLiteral):
		return ErrCodeMalformedLiteral
	case errors.Is(err, ErrRecursionLimitExceeded):
		return ErrCodeRecursionLimit
	case errors.Is(err, ErrUnlabeledBlankNode):
		return ErrCodeUnlabeledBlankNode
	}
	return ""
}

// CanonError carries structured context for a canonicalization failure
// (a short description, the rejected algorithm name, or the blank node
// identifier involved), alongside the sentinel error it wraps.
type CanonError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *CanonError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("urdna2015: %s: %s", e.Message, e.Err.Error())
}

func (e *CanonError) Unwrap() error { return e.Err }

func newCanonError(code ErrorCode, message string, err error) *CanonError {
	return &CanonError{Code: code, Message: message, Err: err}
}
