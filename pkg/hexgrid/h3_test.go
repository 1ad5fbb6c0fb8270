package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sanFrancisco = LatLng{Lat: 37.7749, Lng: -122.4194}

func TestTessellateMatchesCellCount(t *testing.T) {
	idx := NewH3()
	for res := 0; res <= 2; res++ {
		cells := Tessellate(idx, res)
		assert.Len(t, cells, CellCount(res), "resolution %d", res)

		seen := make(map[CellID]struct{}, len(cells))
		for _, c := range cells {
			seen[c] = struct{}{}
		}
		assert.Len(t, seen, len(cells), "duplicate cells at resolution %d", res)
	}
}

func TestTwelvePentagonsPerResolution(t *testing.T) {
	idx := NewH3()
	for res := 0; res <= 1; res++ {
		pentagons := 0
		for _, c := range Tessellate(idx, res) {
			if !idx.IsPentagon(c) {
				assert.Len(t, Ring(idx, c), 6)
				continue
			}
			pentagons++
			assert.Len(t, Ring(idx, c), 5)
		}
		assert.Equal(t, 12, pentagons, "resolution %d", res)
	}
}

func TestRingExcludesSelf(t *testing.T) {
	idx := NewH3()
	cell, err := idx.FromLatLng(sanFrancisco, 3)
	require.NoError(t, err)

	assert.Contains(t, idx.Neighbors(cell), cell)
	assert.NotContains(t, Ring(idx, cell), cell)
}

func TestLocalIJRoundTrip(t *testing.T) {
	idx := NewH3()
	anchor, err := idx.FromLatLng(sanFrancisco, 2)
	require.NoError(t, err)

	for _, n := range idx.Neighbors(anchor) {
		ij, err := idx.ToLocalIJ(anchor, n)
		require.NoError(t, err)

		back, err := idx.FromLocalIJ(anchor, ij)
		require.NoError(t, err)
		assert.Equal(t, n, back)
	}
}

func TestLatLngRoundTrip(t *testing.T) {
	idx := NewH3()
	cell, err := idx.FromLatLng(sanFrancisco, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Resolution(cell))

	back, err := idx.FromLatLng(idx.ToLatLng(cell), 2)
	require.NoError(t, err)
	assert.Equal(t, cell, back)
}

func TestFromLatLngRejectsResolution(t *testing.T) {
	idx := NewH3()
	_, err := idx.FromLatLng(sanFrancisco, idx.MaxResolution()+1)
	assert.ErrorIs(t, err, ErrResolution)
}

func TestInvalidAnchor(t *testing.T) {
	idx := NewH3()
	_, err := idx.FromLocalIJ(0, IJ{})
	assert.ErrorIs(t, err, ErrInvalidCell)
}
