package verify

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathproof/core"
)

// SampleVertices draws exactly k distinct vertices from g uniformly at
// random, without replacement, using the supplied RNG. Duplicate draws are
// rejected and redrawn, so termination is guaranteed for k <= |vertices|.
//
// Returns a non-nil empty slice when k == 0 (an empty set, not an absent
// one). k < 0 or k > |vertices| is a caller error (ErrBadSampleSize).
// Complexity: O(k) expected for k well below |vertices|.
func SampleVertices(g *core.Graph, k int, rng *rand.Rand) ([]int64, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	vertices := g.Vertices()
	if k < 0 || k > len(vertices) {
		return nil, fmt.Errorf("verify: k=%d, graph has %d vertices: %w", k, len(vertices), ErrBadSampleSize)
	}

	picked := make(map[int64]bool, k)
	out := make([]int64, 0, k)
	for len(out) < k {
		v := vertices[rng.Intn(len(vertices))]
		if picked[v] {
			continue
		}
		picked[v] = true
		out = append(out, v)
	}

	return out, nil
}
