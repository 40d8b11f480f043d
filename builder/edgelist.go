// SPDX-License-Identifier: MIT
// Package: mstwalk/builder
//
// edgelist.go: plain-text edge lists.
//
// Format (whitespace separated, line breaks not significant):
//
//	N
//	u v w
//	u v w
//	...
//
// A complete input carries N(N−1)/2 triples. ReadEdgeList reads triples until
// EOF and leaves completeness to Validate, so sparse inputs load too.

package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mstwalk/core"
)

const methodReadEdgeList = "ReadEdgeList"

// MaxVertices is the largest vertex count ReadEdgeList accepts. Every
// consumer allocates per-vertex state, so the header alone must not be able
// to demand unbounded memory.
const MaxVertices = 1 << 22

// edgeCapHint bounds the initial edge slice; larger inputs grow by append.
const edgeCapHint = 1 << 16

// ReadEdgeList parses an edge list from r. Tokens that do not parse, a
// missing or non-positive N, an N above MaxVertices and a trailing partial
// triple return ErrBadFormat.
// Endpoint ranges are not checked here; see Validate.
// Complexity: O(size of input).
func ReadEdgeList(r io.Reader) (int, []core.Edge, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	token := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		token++
		return sc.Text(), true
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return 0, nil, fmt.Errorf("%s: %w", methodReadEdgeList, err)
		}
		return 0, nil, builderErrorf(methodReadEdgeList, ErrBadFormat, "missing vertex count")
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 1 || n > MaxVertices {
		return 0, nil, builderErrorf(methodReadEdgeList, ErrBadFormat, "vertex count %q not in [1,%d]", head, MaxVertices)
	}

	edges := make([]core.Edge, 0, min(core.CompleteEdgeCount(n), edgeCapHint))
	for {
		us, ok := next()
		if !ok {
			break
		}
		vs, okV := next()
		ws, okW := next()
		if !okV || !okW {
			return 0, nil, builderErrorf(methodReadEdgeList, ErrBadFormat, "partial triple at token %d", token)
		}
		u, errU := strconv.Atoi(us)
		v, errV := strconv.Atoi(vs)
		w, errW := strconv.ParseFloat(ws, 64)
		if errU != nil || errV != nil || errW != nil {
			return 0, nil, builderErrorf(methodReadEdgeList, ErrBadFormat,
				"edge %d: %q %q %q", len(edges)+1, us, vs, ws)
		}
		edges = append(edges, core.NewEdge(core.Vertex(u), core.Vertex(v), w))
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("%s: %w", methodReadEdgeList, err)
	}

	return n, edges, nil
}

// WriteEdgeList writes n and edges to w in the format ReadEdgeList reads.
// Weights use the shortest representation that round-trips.
func WriteEdgeList(w io.Writer, n int, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", e.U, e.V, strconv.FormatFloat(e.Weight, 'g', -1, 64)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
