package hub

import (
	"sync"

	"github.com/google/uuid"
	"github.com/kiryu-dev/connect-four/internal/domain"
	"github.com/kiryu-dev/connect-four/internal/usecase/game"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type tally struct {
	player1Wins *atomic.Uint64
	player2Wins *atomic.Uint64
	draws       *atomic.Uint64
	games       *atomic.Uint64
}

type useCase struct {
	game   domain.GameUseCase
	state  *domain.GameState
	tally  tally
	mu     *sync.RWMutex
	logger *zap.Logger
}

func New(game domain.GameUseCase, logger *zap.Logger) *useCase {
	u := &useCase{
		game: game,
		tally: tally{
			player1Wins: atomic.NewUint64(0),
			player2Wins: atomic.NewUint64(0),
			draws:       atomic.NewUint64(0),
			games:       atomic.NewUint64(0),
		},
		mu:     &sync.RWMutex{},
		logger: logger,
	}
	u.NewGame()
	return u
}

// NewGame drops the current game, finished or not, and starts an empty one with player 1 to move.
func (u *useCase) NewGame() domain.GameState {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = domain.NewGameState(uuid.NewString())
	u.tally.games.Inc()
	u.logger.Info("new game", zap.String("game uuid", u.state.Uuid))
	return *u.state
}

func (u *useCase) Current() domain.GameState {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return *u.state
}

func (u *useCase) LandingRow(column int) (int, bool, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	row, ok, err := u.game.FindLandingRow(u.state, column)
	if err != nil {
		return 0, false, errors.WithMessage(err, "find landing row")
	}
	return row, ok, nil
}

func (u *useCase) Drop(column int) (domain.DropResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	result, err := u.game.DropInColumn(u.state, column)
	if err != nil {
		return domain.DropResult{}, errors.WithMessage(err, "drop in column")
	}
	switch result.Status {
	case domain.Win:
		u.countWin(result.Player)
		u.logger.Info("game won",
			zap.String("game uuid", u.state.Uuid),
			zap.Uint8("player", uint8(result.Player)),
			zap.Uint8("round", u.state.Round),
		)
	case domain.Draw:
		u.tally.draws.Inc()
		u.logger.Info("game drawn", zap.String("game uuid", u.state.Uuid))
	}
	return result, nil
}

func (u *useCase) WinningLine() (domain.Line, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.state.Status != domain.Won {
		return domain.Line{}, false
	}
	return game.WinningLine(&u.state.Board, u.state.Winner)
}

func (u *useCase) Score() domain.Score {
	return domain.Score{
		Player1Wins: u.tally.player1Wins.Load(),
		Player2Wins: u.tally.player2Wins.Load(),
		Draws:       u.tally.draws.Load(),
		Games:       u.tally.games.Load(),
	}
}

func (u *useCase) countWin(player domain.Cell) {
	switch player {
	case domain.Player1:
		u.tally.player1Wins.Inc()
	case domain.Player2:
		u.tally.player2Wins.Inc()
	}
}
