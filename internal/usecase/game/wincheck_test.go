package game

import (
	"testing"

	"github.com/kiryu-dev/connect-four/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mirrorColumns(board domain.Board) domain.Board {
	var mirrored domain.Board
	for r := range board {
		for c := range board[r] {
			mirrored[r][domain.Width-1-c] = board[r][c]
		}
	}
	return mirrored
}

func flipRows(board domain.Board) domain.Board {
	var flipped domain.Board
	for r := range board {
		flipped[domain.Height-1-r] = board[r]
	}
	return flipped
}

func TestHasWinDirections(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		player domain.Cell
		want   bool
	}{
		{
			name: "empty board",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				".......",
			},
			player: domain.Player1,
			want:   false,
		},
		{
			name: "horizontal at right edge",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"...2222",
			},
			player: domain.Player2,
			want:   true,
		},
		{
			name: "vertical at top",
			rows: []string{
				"1......",
				"1......",
				"1......",
				"1......",
				"2......",
				"2......",
			},
			player: domain.Player1,
			want:   true,
		},
		{
			name: "diagonal down right",
			rows: []string{
				".......",
				".......",
				"...1...",
				"...21..",
				"...221.",
				"...2221",
			},
			player: domain.Player1,
			want:   true,
		},
		{
			name: "diagonal down left",
			rows: []string{
				".......",
				".......",
				"......2",
				".....21",
				"....212",
				"...2121",
			},
			player: domain.Player2,
			want:   true,
		},
		{
			name: "three is not enough",
			rows: []string{
				".......",
				".......",
				".......",
				"1......",
				"1......",
				"1.222..",
			},
			player: domain.Player1,
			want:   false,
		},
		{
			name: "line of the other player",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"1111...",
			},
			player: domain.Player2,
			want:   false,
		},
		{
			name: "no wrap across rows",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"11.....",
				".....11",
			},
			player: domain.Player1,
			want:   false,
		},
		{
			name: "empty cells never win",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"1.2....",
			},
			player: domain.Empty,
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := parseBoard(t, tt.rows)
			assert.Equal(t, tt.want, HasWin(&board, tt.player))
		})
	}
}

func TestHasWinIsSymmetric(t *testing.T) {
	boards := [][]string{
		{
			".......",
			".......",
			"...1...",
			"...21..",
			"...221.",
			"...2221",
		},
		{
			".......",
			"2......",
			"2......",
			"2......",
			"2......",
			"11.1...",
		},
		{
			".......",
			".......",
			".......",
			"..1....",
			"..2.1..",
			".121212",
		},
		{
			".......",
			".......",
			".......",
			".......",
			".......",
			"...2222",
		},
	}
	for i, rows := range boards {
		board := parseBoard(t, rows)
		for _, player := range []domain.Cell{domain.Player1, domain.Player2} {
			want := HasWin(&board, player)
			mirrored := mirrorColumns(board)
			flipped := flipRows(board)
			rotated := mirrorColumns(flipRows(board))
			assert.Equal(t, want, HasWin(&mirrored, player), "board %d player %d mirrored", i, player)
			assert.Equal(t, want, HasWin(&flipped, player), "board %d player %d flipped", i, player)
			assert.Equal(t, want, HasWin(&rotated, player), "board %d player %d rotated", i, player)
		}
	}
}

func TestDiagonalWinAndRemoval(t *testing.T) {
	points := []domain.Point{{Row: 5, Column: 0}, {Row: 4, Column: 1}, {Row: 3, Column: 2}, {Row: 2, Column: 3}}
	var board domain.Board
	for _, p := range points {
		board[p.Row][p.Column] = domain.Player2
	}
	require.True(t, HasWin(&board, domain.Player2))
	require.False(t, HasWin(&board, domain.Player1))

	line, ok := WinningLine(&board, domain.Player2)
	require.True(t, ok)
	for _, p := range points {
		assert.True(t, line.Contains(p), "line %v misses %v", line, p)
	}

	for _, removed := range points {
		b := board
		b[removed.Row][removed.Column] = domain.Empty
		assert.False(t, HasWin(&b, domain.Player2), "removed %v", removed)
	}
}

func TestLineFromOutOfBounds(t *testing.T) {
	line := domain.DiagonalDownLeft.LineFrom(domain.Point{Row: 0, Column: 1})
	assert.Equal(t, domain.Line{{Row: 0, Column: 1}, {Row: 1, Column: 0}, {Row: 2, Column: -1}, {Row: 3, Column: -2}}, line)
	assert.False(t, line[2].InBounds())

	var board domain.Board
	board[0][1] = domain.Player1
	board[1][0] = domain.Player1
	assert.False(t, isWinningLine(&board, line, domain.Player1))
}
