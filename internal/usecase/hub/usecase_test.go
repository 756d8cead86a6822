package hub

import (
	"testing"

	"github.com/kiryu-dev/connect-four/internal/domain"
	"github.com/kiryu-dev/connect-four/internal/usecase/game"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHub() *useCase {
	logger := zap.NewNop()
	return New(game.New(logger), logger)
}

func playColumns(t *testing.T, u *useCase, columns ...int) domain.DropResult {
	t.Helper()
	var result domain.DropResult
	for i, column := range columns {
		var err error
		result, err = u.Drop(column)
		require.NoError(t, err, "move %d", i)
	}
	return result
}

func TestNewHubStartsGame(t *testing.T) {
	u := newTestHub()
	state := u.Current()
	assert.NotEmpty(t, state.Uuid)
	assert.Equal(t, domain.Player1, state.CurrentPlayer)
	assert.Equal(t, domain.AwaitingMove, state.Status)
	assert.Equal(t, domain.Score{Games: 1}, u.Score())
}

func TestLandingRowPreview(t *testing.T) {
	u := newTestHub()
	row, ok, err := u.LandingRow(4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Height-1, row)

	result := playColumns(t, u, 4)
	assert.Equal(t, row, result.Row)

	row, ok, err = u.LandingRow(4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Height-2, row)

	_, _, err = u.LandingRow(domain.Width)
	assert.True(t, errors.Is(err, game.ErrOutOfRange))
}

func TestCurrentIsSnapshot(t *testing.T) {
	u := newTestHub()
	snapshot := u.Current()
	playColumns(t, u, 0)
	assert.Equal(t, domain.Empty, snapshot.Board[domain.Height-1][0])
	assert.Equal(t, domain.Player1, u.Current().Board[domain.Height-1][0])
}

func TestWinIsTalliedAndFrozen(t *testing.T) {
	u := newTestHub()
	result := playColumns(t, u, 0, 0, 1, 1, 2, 2, 3)
	require.Equal(t, domain.Win, result.Status)
	assert.True(t, u.Current().IsFinished())

	line, ok := u.WinningLine()
	require.True(t, ok)
	assert.Equal(t, domain.Line{{Row: 5, Column: 0}, {Row: 5, Column: 1}, {Row: 5, Column: 2}, {Row: 5, Column: 3}}, line)

	_, err := u.Drop(5)
	assert.True(t, errors.Is(err, game.ErrGameFinished))
	assert.Equal(t, domain.Score{Player1Wins: 1, Games: 1}, u.Score())

	first := u.Current().Uuid
	state := u.NewGame()
	assert.NotEqual(t, first, state.Uuid)
	assert.Equal(t, domain.Board{}, state.Board)
	assert.False(t, u.Current().IsFinished())
	_, ok = u.WinningLine()
	assert.False(t, ok)

	result = playColumns(t, u, 6, 0, 6, 0, 5, 0, 6, 0)
	require.Equal(t, domain.Win, result.Status)
	assert.Equal(t, domain.Player2, result.Player)
	assert.Equal(t, domain.Score{Player1Wins: 1, Player2Wins: 1, Games: 2}, u.Score())
}

func TestDrawIsTallied(t *testing.T) {
	u := newTestHub()
	result := playColumns(t, u,
		0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0,
		2, 3, 2, 3, 2, 3, 3, 2, 3, 2, 3, 2,
		4, 5, 4, 5, 4, 5, 5, 4, 5, 4, 5, 4,
		6, 6, 6, 6, 6, 6)
	assert.Equal(t, domain.Draw, result.Status)
	assert.Equal(t, domain.Drawn, u.Current().Status)
	assert.Equal(t, domain.Score{Draws: 1, Games: 1}, u.Score())
	_, ok := u.WinningLine()
	assert.False(t, ok)
}

func TestColumnFullKeepsTurn(t *testing.T) {
	u := newTestHub()
	playColumns(t, u, 2, 2, 2, 2, 2, 2)
	before := u.Current()

	result, err := u.Drop(2)
	require.NoError(t, err)
	assert.Equal(t, domain.ColumnFull, result.Status)
	assert.Equal(t, before, u.Current())
}
