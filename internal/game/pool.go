// internal/game/pool.go
package game

import (
	"math/rand"
	"time"
)

// BuildSymbolPool returns a shuffled slice holding rows*cols/2 distinct symbols,
// each exactly twice. An odd cell count drops the leftover cell; non-positive
// dimensions yield an empty pool. If r is nil a time-seeded source is used.
func BuildSymbolPool(rows, cols int, r *rand.Rand) []string {
	if rows <= 0 || cols <= 0 {
		return []string{}
	}
	numPairs := rows * cols / 2

	pool := make([]string, 0, numPairs*2)
	for i := 0; i < numPairs; i++ {
		sym := symbolFor(i)
		pool = append(pool, sym, sym)
	}

	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool
}

// symbolFor names the i-th pair: A..Z, then AA, AB, ... like spreadsheet columns.
func symbolFor(i int) string {
	var b []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}
