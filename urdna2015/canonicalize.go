package urdna2015

import "sort"

// blankNodeRecord tracks, for a single blank-node identifier, every
// quad it appears in and (once phase 1 has run) its first-degree hash.
// It is owned by the canonicalizer's index and never shared outside a
// single Canonicalize call.
type blankNodeRecord struct {
	quads []Quad
	hash  string
}

// canonicalizer holds the working state of a single Canonicalize call:
// the blank-node-to-quads index, the committed canonical issuer, and
// the configuration bounding recursion. None of this survives past the
// call that created it.
type canonicalizer struct {
	opts            Options
	dataset         Dataset
	blankNodeInfo   map[string]*blankNodeRecord
	canonicalIssuer *IdentifierIssuer
	totalRecursions int
}

// Canonicalize computes the URDNA2015 canonical N-Quads serialization
// of dataset. An empty opts.Algorithm is treated as "sha256". It
// returns UnsupportedAlgorithm for any other algorithm name than
// "sha256", InvalidTermPosition/MalformedLiteral if dataset contains a
// quad violating the data model, and RecursionLimitExceeded if a
// configured depth bound is exceeded while resolving hash ties.
func Canonicalize(dataset Dataset, opts Options) (string, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = "sha256"
	}
	if opts.Algorithm != "sha256" {
		return "", newCanonError(ErrCodeUnsupportedAlgorithm, opts.Algorithm, ErrUnsupportedAlgorithm)
	}

	for _, q := range dataset {
		if err := q.Validate(); err != nil {
			return "", err
		}
	}

	c := &canonicalizer{
		opts:            opts,
		dataset:         dedupeDataset(dataset),
		blankNodeInfo:   make(map[string]*blankNodeRecord),
		canonicalIssuer: NewIdentifierIssuer("_:c14n"),
	}
	return c.run()
}

// dedupeDataset collapses literal duplicate quads to a single occurrence,
// preserving first-occurrence order. Dataset is a set (see Dataset's doc
// comment): a quad repeated in the input must be indexed, hashed, and
// emitted exactly once, or blank nodes it mentions would get a
// first-degree hash skewed by the duplicate's extra occurrence.
func dedupeDataset(dataset Dataset) Dataset {
	seen := make(map[Quad]bool, len(dataset))
	out := make(Dataset, 0, len(dataset))
	for _, q := range dataset {
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	return out
}

func (c *canonicalizer) run() (string, error) {
	c.buildBlankNodeIndex()

	hashToBlankNodes := make(map[string][]string)
	nonNormalized := make([]string, 0, len(c.blankNodeInfo))
	for id := range c.blankNodeInfo {
		nonNormalized = append(nonNormalized, id)
	}
	sort.Strings(nonNormalized) // deterministic first-degree hashing order

	for _, id := range nonNormalized {
		hash, err := c.hashFirstDegreeQuads(id)
		if err != nil {
			return "", err
		}
		hashToBlankNodes[hash] = append(hashToBlankNodes[hash], id)
	}

	hashes := make([]string, 0, len(hashToBlankNodes))
	for h := range hashToBlankNodes {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	var nonUnique [][]string
	for _, h := range hashes {
		idList := hashToBlankNodes[h]
		if len(idList) > 1 {
			nonUnique = append(nonUnique, idList)
			continue
		}
		c.canonicalIssuer.Issue(idList[0])
	}

	for _, idList := range nonUnique {
		if err := c.resolveTieGroup(idList); err != nil {
			return "", err
		}
	}

	return c.rewriteAndSerialize()
}

// buildBlankNodeIndex populates blankNodeInfo: for every quad and every
// position {subject, object, graph}, if the term there is a blank node,
// a reference to the quad is appended under that node's identifier. A
// quad mentioning the same blank node in multiple positions is indexed
// once per position.
func (c *canonicalizer) buildBlankNodeIndex() {
	add := func(q Quad, t Term) {
		bn, ok := t.(BlankNode)
		if !ok {
			return
		}
		rec, ok := c.blankNodeInfo[bn.ID]
		if !ok {
			rec = &blankNodeRecord{}
			c.blankNodeInfo[bn.ID] = rec
		}
		rec.quads = append(rec.quads, q)
	}
	for _, q := range c.dataset {
		add(q, q.S)
		add(q, q.O)
		add(q, q.G)
	}
}

// hashFirstDegreeQuads computes and stores the first-degree hash for
// the blank node id: every quad mentioning id is serialized with its
// blank-node components abstracted to "_:a" (for id itself) or "_:z"
// (for any other blank node), the resulting lines are sorted and
// concatenated, and the result is hashed.
func (c *canonicalizer) hashFirstDegreeQuads(id string) (string, error) {
	rec := c.blankNodeInfo[id]
	lines := make([]string, 0, len(rec.quads))
	for _, q := range rec.quads {
		modified := Quad{
			S: modifyFirstDegreeComponent(id, q.S),
			P: q.P,
			O: modifyFirstDegreeComponent(id, q.O),
			G: modifyFirstDegreeComponent(id, q.G),
		}
		line, err := serializeQuad(modified)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	sort.Strings(lines)

	d, err := NewDigest(c.opts.Algorithm)
	if err != nil {
		return "", err
	}
	for _, line := range lines {
		d.Update([]byte(line))
	}
	hash := d.Sum()
	rec.hash = hash
	return hash, nil
}

// modifyFirstDegreeComponent replaces a blank-node component with the
// literal placeholder "_:a" when it is the reference node id, or "_:z"
// for any other blank node. A known quirk in the published algorithm
// text never substitutes an already-issued canonical identifier here;
// this implementation preserves that behavior deliberately, since
// deviating from it would break interop with every other conformant
// implementation.
func modifyFirstDegreeComponent(id string, component Term) Term {
	bn, ok := component.(BlankNode)
	if !ok {
		return component
	}
	if bn.ID == id {
		return BlankNode{ID: "a"}
	}
	return BlankNode{ID: "z"}
}

// resolveTieGroup runs the non-unique-hash resolution pass (spec §4.5)
// for one group of blank nodes that shared a first-degree hash.
func (c *canonicalizer) resolveTieGroup(idList []string) error {
	type pathResult struct {
		hash   string
		issuer *IdentifierIssuer
	}
	var hashPathList []pathResult

	for _, id := range idList {
		if c.canonicalIssuer.Has(id) {
			continue
		}
		tempIssuer := NewIdentifierIssuer("_:b")
		tempIssuer.Issue(id)
		hash, issuer, err := c.hashNDegreeQuads(id, tempIssuer, 0)
		if err != nil {
			return err
		}
		hashPathList = append(hashPathList, pathResult{hash: hash, issuer: issuer})
	}

	sort.Slice(hashPathList, func(i, j int) bool {
		return hashPathList[i].hash < hashPathList[j].hash
	})

	for _, result := range hashPathList {
		for _, orig := range result.issuer.IssuedOrder() {
			c.canonicalIssuer.Issue(orig)
		}
	}
	return nil
}

// rewriteAndSerialize replaces every blank-node label with its issued
// canonical identifier and emits the sorted N-Quads text.
func (c *canonicalizer) rewriteAndSerialize() (string, error) {
	rewritten := make([]Quad, len(c.dataset))
	for i, q := range c.dataset {
		s, err := c.useCanonicalID(q.S)
		if err != nil {
			return "", err
		}
		o, err := c.useCanonicalID(q.O)
		if err != nil {
			return "", err
		}
		g, err := c.useCanonicalID(q.G)
		if err != nil {
			return "", err
		}
		rewritten[i] = Quad{S: s, P: q.P, O: o, G: g}
	}
	return serializeDataset(rewritten)
}

func (c *canonicalizer) useCanonicalID(t Term) (Term, error) {
	bn, ok := t.(BlankNode)
	if !ok {
		return t, nil
	}
	issued, ok := c.canonicalIssuer.Issued(bn.ID)
	if !ok {
		return nil, newCanonError(ErrCodeUnlabeledBlankNode, bn.ID, ErrUnlabeledBlankNode)
	}
	return BlankNode{ID: issued[len("_:"):]}, nil
}
