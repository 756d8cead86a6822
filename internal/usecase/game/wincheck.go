package game

import (
	"github.com/kiryu-dev/connect-four/internal/domain"
)

// HasWin reports whether player has WinLength markers in a row anywhere on the board.
func HasWin(board *domain.Board, player domain.Cell) bool {
	_, ok := WinningLine(board, player)
	return ok
}

// WinningLine scans every anchor cell in the four directions and returns the first line held by player.
func WinningLine(board *domain.Board, player domain.Cell) (domain.Line, bool) {
	if !player.IsPlayer() {
		return domain.Line{}, false
	}
	for y := 0; y < domain.Height; y++ {
		for x := 0; x < domain.Width; x++ {
			anchor := domain.Point{Row: y, Column: x}
			for _, direction := range domain.Directions {
				line := direction.LineFrom(anchor)
				if isWinningLine(board, line, player) {
					return line, true
				}
			}
		}
	}
	return domain.Line{}, false
}

func isWinningLine(board *domain.Board, line domain.Line, player domain.Cell) bool {
	for _, p := range line {
		if !p.InBounds() {
			return false
		}
		if board.At(p) != player {
			return false
		}
	}
	return true
}
