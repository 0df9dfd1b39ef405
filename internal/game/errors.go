package game

import "errors"

// Sentinel errors returned when building a game.
// Use errors.Is to check: errors.Is(err, game.ErrOddCellCount)
var (
	ErrInvalidDimensions = errors.New("pairs: rows and cols must be positive")
	ErrOddCellCount      = errors.New("pairs: rows*cols must be even")
	ErrBoardTooLarge     = errors.New("pairs: board exceeds maximum side")
	ErrSymbolCount       = errors.New("pairs: symbol count does not match board size")
	ErrUnpairedSymbols   = errors.New("pairs: every symbol must appear exactly twice")
)
