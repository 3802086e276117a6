package identifier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLength(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := New()
		require.Len(t, id, Length)
		for _, r := range id {
			require.Contains(t, "0123456789abcdef", string(r))
		}
	}
}

func TestNewPairwiseDistinct(t *testing.T) {
	const trials = 10000
	seen := make(map[string]struct{}, trials)
	for i := 0; i < trials; i++ {
		id := New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate identifier %q after %d trials", id, i)
		seen[id] = struct{}{}
	}
}

func TestNewMarkerDistinctFromID(t *testing.T) {
	marker := NewMarker()
	require.Len(t, marker, 36)
	require.NotEqual(t, marker, NewMarker())
}
