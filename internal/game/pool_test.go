package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSymbolPoolPairs(t *testing.T) {
	dims := [][2]int{{2, 2}, {2, 3}, {4, 4}, {6, 6}, {1, 2}, {8, 8}}

	for _, d := range dims {
		t.Run(fmt.Sprintf("%dx%d", d[0], d[1]), func(t *testing.T) {
			pool := BuildSymbolPool(d[0], d[1], rand.New(rand.NewSource(1)))
			require.Len(t, pool, d[0]*d[1])

			counts := make(map[string]int)
			for _, s := range pool {
				counts[s]++
			}
			assert.Len(t, counts, d[0]*d[1]/2)
			for sym, n := range counts {
				assert.Equal(t, 2, n, "symbol %s should appear exactly twice", sym)
			}
		})
	}
}

func TestBuildSymbolPoolSeeded(t *testing.T) {
	a := BuildSymbolPool(4, 4, rand.New(rand.NewSource(42)))
	b := BuildSymbolPool(4, 4, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b, "same seed should produce the same pool")
}

func TestBuildSymbolPoolOddCells(t *testing.T) {
	pool := BuildSymbolPool(3, 3, nil)
	assert.Len(t, pool, 8, "leftover cell gets no symbol")
}

func TestBuildSymbolPoolNonPositive(t *testing.T) {
	assert.Empty(t, BuildSymbolPool(0, 4, nil))
	assert.Empty(t, BuildSymbolPool(4, 0, nil))
	assert.Empty(t, BuildSymbolPool(-2, -2, nil))
}

func TestBuildSymbolPoolUsesLettersFirst(t *testing.T) {
	pool := BuildSymbolPool(2, 2, nil)
	assert.ElementsMatch(t, []string{"A", "A", "B", "B"}, pool)
}

func TestSymbolFor(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, symbolFor(tt.i), "symbolFor(%d)", tt.i)
	}
}
