package game

import (
	"github.com/kiryu-dev/connect-four/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type useCase struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) useCase {
	return useCase{
		logger: logger,
	}
}

// FindLandingRow returns the lowest empty row of the column, ok is false when the column is full.
func (u useCase) FindLandingRow(state *domain.GameState, column int) (int, bool, error) {
	if err := validateColumn(column); err != nil {
		return 0, false, err
	}
	row, ok := landingRow(&state.Board, column)
	return row, ok, nil
}

func (u useCase) DropInColumn(state *domain.GameState, column int) (domain.DropResult, error) {
	if err := validateColumn(column); err != nil {
		return domain.DropResult{}, err
	}
	if state.IsFinished() {
		return domain.DropResult{}, errors.WithMessagef(ErrGameFinished, "game '%s' is %s", state.Uuid, state.Status)
	}
	player := state.CurrentPlayer
	row, ok := landingRow(&state.Board, column)
	if !ok {
		u.logger.Debug("column is full", zap.String("game uuid", state.Uuid), zap.Int("column", column))
		return domain.DropResult{
			Status: domain.ColumnFull,
			Player: player,
			Row:    -1,
			Column: column,
		}, nil
	}
	status := executeMove(state, row, column)
	u.logger.Debug("marker dropped",
		zap.String("game uuid", state.Uuid),
		zap.Uint8("player", uint8(player)),
		zap.Int("row", row),
		zap.Int("column", column),
		zap.Stringer("status", status),
	)
	return domain.DropResult{
		Status: status,
		Player: player,
		Row:    row,
		Column: column,
	}, nil
}

func validateColumn(column int) error {
	if column < 0 || column >= domain.Width {
		return errors.WithMessagef(ErrOutOfRange, "column %d not in [0, %d)", column, domain.Width)
	}
	return nil
}

// landingRow counts markers from the bottom row up; the first empty cell is where the next one lands.
func landingRow(board *domain.Board, column int) (int, bool) {
	count := board.ColumnCount(column)
	if count == domain.Height {
		return 0, false
	}
	return domain.Height - 1 - count, true
}

// executeMove writes the marker, resolves the outcome and toggles the turn only when the game goes on.
func executeMove(state *domain.GameState, row int, column int) domain.MoveStatus {
	player := state.CurrentPlayer
	state.Board[row][column] = player
	state.Round++
	if HasWin(&state.Board, player) {
		state.Status = domain.Won
		state.Winner = player
		return domain.Win
	}
	if isTopRowFull(&state.Board) {
		state.Status = domain.Drawn
		return domain.Draw
	}
	state.CurrentPlayer = player.Toggle()
	return domain.Continue
}

// isTopRowFull is a full-board test as long as every column fills from the bottom.
func isTopRowFull(board *domain.Board) bool {
	for _, cell := range board[0] {
		if cell == domain.Empty {
			return false
		}
	}
	return true
}
