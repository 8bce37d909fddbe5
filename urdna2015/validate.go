package urdna2015

// Validate checks the position and literal invariants from the data
// model: predicate must be an IRI (guaranteed by the Quad.P field type);
// subject must be IRI or BlankNode; object must be IRI, BlankNode, or
// Literal; graph must be IRI, BlankNode, or DefaultGraphTerm (including
// a nil Term, treated as the default graph); and a Literal's language
// tag may be set only alongside an rdf:langString datatype.
func (q Quad) Validate() error {
	switch q.S.(type) {
	case IRI, BlankNode:
	default:
		return newCanonError(ErrCodeInvalidTermPosition, "subject must be an IRI or blank node", ErrInvalidTermPosition)
	}

	switch o := q.O.(type) {
	case IRI, BlankNode:
	case Literal:
		if err := o.validate(); err != nil {
			return err
		}
	default:
		return newCanonError(ErrCodeInvalidTermPosition, "object must be an IRI, blank node, or literal", ErrInvalidTermPosition)
	}

	if q.G != nil {
		switch q.G.(type) {
		case IRI, BlankNode, DefaultGraphTerm:
		default:
			return newCanonError(ErrCodeInvalidTermPosition, "graph must be an IRI, blank node, or the default graph", ErrInvalidTermPosition)
		}
	}

	return nil
}

func (l Literal) validate() error {
	if l.Lang != "" && l.Datatype.Value != rdfLangString {
		return newCanonError(ErrCodeMalformedLiteral, "language tag requires rdf:langString datatype", ErrMalformedLiteral)
	}
	if l.Datatype.Value == rdfLangString && l.Lang == "" {
		return newCanonError(ErrCodeMalformedLiteral, "rdf:langString literal requires a language tag", ErrMalformedLiteral)
	}
	return nil
}
