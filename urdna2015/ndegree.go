package urdna2015

import "sort"

// hashNDegreeQuads resolves the hash path for id by exploring
// permutations of every blank node related to it, recursing into each
// related node's own neighborhood when necessary, and keeping only the
// lexicographically smallest path at every branch point. issuer is the
// caller's working issuer; it is never mutated directly — callers that
// branch clone before mutating, and the returned issuer is the winning
// clone, committed back by the caller.
func (c *canonicalizer) hashNDegreeQuads(id string, issuer *IdentifierIssuer, depth int) (string, *IdentifierIssuer, error) {
	if c.opts.MaxCallStackDepth > 0 && depth > c.opts.MaxCallStackDepth {
		return "", nil, newCanonError(ErrCodeRecursionLimit, "call stack depth", ErrRecursionLimitExceeded)
	}
	c.totalRecursions++
	if c.opts.MaxTotalCallStackDepth > 0 && c.totalRecursions > c.opts.MaxTotalCallStackDepth {
		return "", nil, newCanonError(ErrCodeRecursionLimit, "total call stack depth", ErrRecursionLimitExceeded)
	}

	hashToRelated, err := c.createHashToRelated(id, issuer)
	if err != nil {
		return "", nil, err
	}

	relatedHashes := make([]string, 0, len(hashToRelated))
	for h := range hashToRelated {
		relatedHashes = append(relatedHashes, h)
	}
	sort.Strings(relatedHashes)

	d, err := NewDigest(c.opts.Algorithm)
	if err != nil {
		return "", nil, err
	}

	workingIssuer := issuer
	for _, relatedHash := range relatedHashes {
		d.Update([]byte(relatedHash))

		blankNodes := hashToRelated[relatedHash]
		chosenPath := ""
		var chosenIssuer *IdentifierIssuer

		perm := newPermuter(blankNodes)
		for perm.hasNext() {
			permutation := perm.next()

			issuerCopy := workingIssuer.Clone()
			path := ""
			var recursionList []string
			abandoned := false

			for _, related := range permutation {
				if v, ok := c.canonicalIssuer.Issued(related); ok {
					path += v
				} else {
					if !issuerCopy.Has(related) {
						recursionList = append(recursionList, related)
					}
					path += issuerCopy.Issue(related)
				}
				if chosenPath != "" && path > chosenPath {
					abandoned = true
					break
				}
			}

			if !abandoned {
				for _, related := range recursionList {
					resultHash, resultIssuer, err := c.hashNDegreeQuads(related, issuerCopy, depth+1)
					if err != nil {
						return "", nil, err
					}
					issuerCopy = resultIssuer
					path += issuerCopy.Issue(related) + "<" + resultHash + ">"
					if chosenPath != "" && path > chosenPath {
						abandoned = true
						break
					}
				}
			}

			if !abandoned && (chosenPath == "" || path < chosenPath) {
				chosenPath = path
				chosenIssuer = issuerCopy
			}
		}

		d.Update([]byte(chosenPath))
		workingIssuer = chosenIssuer
	}

	return d.Sum(), workingIssuer, nil
}

// hashRelatedBlankNode computes a deterministic fingerprint for a blank
// node related to some focal node through quad, identifying related by
// its canonical identifier if already issued, else its working-issuer
// identifier if issued, else its first-degree hash.
func (c *canonicalizer) hashRelatedBlankNode(related string, quad Quad, issuer *IdentifierIssuer, position byte) (string, error) {
	var id string
	if v, ok := c.canonicalIssuer.Issued(related); ok {
		id = v
	} else if v, ok := issuer.Issued(related); ok {
		id = v
	} else {
		id = c.blankNodeInfo[related].hash
	}

	d, err := NewDigest(c.opts.Algorithm)
	if err != nil {
		return "", err
	}
	d.Update([]byte{position})
	if position != 'g' {
		d.Update([]byte("<" + quad.P.Value + ">"))
	}
	d.Update([]byte(id))
	return d.Sum(), nil
}

// createHashToRelated builds the multimap from related-blank-node hash
// to the identifiers of every blank node that co-occurs with id in one
// of its quads.
func (c *canonicalizer) createHashToRelated(id string, issuer *IdentifierIssuer) (map[string][]string, error) {
	hashToRelated := make(map[string][]string)
	for _, q := range c.blankNodeInfo[id].quads {
		if err := c.addRelated(q, q.S, 's', id, issuer, hashToRelated); err != nil {
			return nil, err
		}
		if err := c.addRelated(q, q.O, 'o', id, issuer, hashToRelated); err != nil {
			return nil, err
		}
		if err := c.addRelated(q, q.G, 'g', id, issuer, hashToRelated); err != nil {
			return nil, err
		}
	}
	return hashToRelated, nil
}

func (c *canonicalizer) addRelated(q Quad, component Term, position byte, id string, issuer *IdentifierIssuer, hashToRelated map[string][]string) error {
	bn, ok := component.(BlankNode)
	if !ok || bn.ID == id {
		return nil
	}
	hash, err := c.hashRelatedBlankNode(bn.ID, q, issuer, position)
	if err != nil {
		return err
	}
	hashToRelated[hash] = append(hashToRelated[hash], bn.ID)
	return nil
}
