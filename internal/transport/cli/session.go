package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kiryu-dev/connect-four/internal/domain"
	"github.com/kiryu-dev/connect-four/internal/usecase/game"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	newGameCommand = "new"
	scoreCommand   = "score"
	quitCommand    = "quit"
)

type session struct {
	hub      domain.HubUseCase
	renderer domain.Renderer
	players  domain.Players
	scanner  *bufio.Scanner
	logger   *zap.Logger
}

func New(hub domain.HubUseCase, renderer domain.Renderer, players domain.Players, in io.Reader,
	logger *zap.Logger) *session {
	return &session{
		hub:      hub,
		renderer: renderer,
		players:  players,
		scanner:  bufio.NewScanner(in),
		logger:   logger,
	}
}

type inputLine struct {
	text string
	err  error
}

// Run plays until the input is exhausted, the quit command arrives or ctx is done.
func (s *session) Run(ctx context.Context) error {
	if err := s.startGame(s.hub.Current()); err != nil {
		return errors.WithMessage(err, "start game")
	}
	lines := s.readLines(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line inputLine
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line = <-lines:
		}
		input, err := parseInput(line)
		switch {
		case errors.Is(err, domain.ErrInputClosed):
			s.logger.Info("input closed")
			return nil
		case errors.Is(err, domain.ErrEmptyInput):
			continue
		case err != nil:
			return errors.WithMessage(err, "read input")
		}
		switch strings.ToLower(input) {
		case quitCommand, "q":
			s.logger.Info("quit requested")
			return nil
		case newGameCommand:
			if err := s.startGame(s.hub.NewGame()); err != nil {
				return errors.WithMessage(err, "start new game")
			}
		case scoreCommand:
			if err := s.render(domain.Message{Type: domain.ScoreReport, Payload: s.hub.Score()}); err != nil {
				return errors.WithMessage(err, "report score")
			}
		default:
			if err := s.handleMove(input); err != nil {
				return errors.WithMessage(err, "handle move")
			}
		}
	}
}

// readLines scans in the background so a blocked read never holds up Run; the last line carries the scan error.
func (s *session) readLines(ctx context.Context) <-chan inputLine {
	ch := make(chan inputLine)
	go func() {
		defer close(ch)
		for s.scanner.Scan() {
			select {
			case ch <- inputLine{text: s.scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		err := domain.ErrInputClosed
		if scanErr := s.scanner.Err(); scanErr != nil {
			err = errors.WithMessage(scanErr, "scan input")
		}
		select {
		case ch <- inputLine{err: err}:
		case <-ctx.Done():
		}
	}()
	return ch
}

func parseInput(line inputLine) (string, error) {
	if line.err != nil {
		return "", line.err
	}
	input := strings.TrimSpace(line.text)
	if input == "" {
		return "", domain.ErrEmptyInput
	}
	return input, nil
}

func (s *session) startGame(state domain.GameState) error {
	err := s.render(domain.Message{
		Type: domain.StartGame,
		Payload: domain.StartGamePayload{
			GameUuid: state.Uuid,
			Player:   s.players.Of(state.CurrentPlayer),
		},
	})
	if err != nil {
		return err
	}
	return s.requestMove()
}

func (s *session) requestMove() error {
	state := s.hub.Current()
	return s.render(domain.Message{
		Type:    domain.RequestMove,
		Payload: domain.RequestMovePayload{Player: s.players.Of(state.CurrentPlayer)},
	})
}

func (s *session) handleMove(input string) error {
	if s.hub.Current().IsFinished() {
		return s.rejectMove(input, fmt.Sprintf("game is over, type '%s' to play again", newGameCommand))
	}
	position, err := strconv.Atoi(input)
	if err != nil {
		return s.rejectMove(input, "not a column number")
	}
	column := position - 1
	row, ok, err := s.hub.LandingRow(column)
	switch {
	case errors.Is(err, game.ErrOutOfRange):
		return s.rejectMove(input, fmt.Sprintf("column must be between 1 and %d", domain.Width))
	case err != nil:
		return errors.WithMessage(err, "landing row")
	}
	s.logger.Debug("landing row preview", zap.Int("column", column), zap.Int("row", row), zap.Bool("free", ok))
	result, err := s.hub.Drop(column)
	if err != nil {
		return errors.WithMessage(err, "drop")
	}
	if result.Status == domain.ColumnFull {
		return s.rejectMove(input, "column is full")
	}
	err = s.render(domain.Message{
		Type: domain.PlayerMove,
		Payload: domain.PlayerMovePayload{
			Player: s.players.Of(result.Player),
			Row:    result.Row,
			Column: result.Column,
			Status: result.Status.String(),
		},
	})
	if err != nil {
		return err
	}
	switch result.Status {
	case domain.Win:
		winner := s.players.Of(result.Player)
		line, _ := s.hub.WinningLine()
		return s.render(domain.Message{
			Type: domain.GameResult,
			Payload: domain.GameResultPayload{
				Status: result.Status.String(),
				Winner: &winner,
				Line:   &line,
			},
		})
	case domain.Draw:
		return s.render(domain.Message{
			Type:    domain.GameResult,
			Payload: domain.GameResultPayload{Status: result.Status.String()},
		})
	default:
		return s.requestMove()
	}
}

func (s *session) rejectMove(input string, reason string) error {
	s.logger.Debug("move rejected", zap.String("input", input), zap.String("reason", reason))
	err := s.render(domain.Message{
		Type:    domain.InvalidMove,
		Payload: domain.InvalidMovePayload{Input: input, Reason: reason},
	})
	if err != nil {
		return err
	}
	if s.hub.Current().IsFinished() {
		return nil
	}
	return s.requestMove()
}

func (s *session) render(msg domain.Message) error {
	if err := s.renderer.Render(msg, s.hub.Current().Board); err != nil {
		return errors.WithMessagef(err, "render '%s'", msg.Type)
	}
	return nil
}

// NewRenderer picks the renderer for the configured output format.
func NewRenderer(format string, w io.Writer, players domain.Players) (domain.Renderer, error) {
	switch format {
	case "text":
		return newTextRenderer(w, players), nil
	case "json":
		return newJsonRenderer(w), nil
	default:
		return nil, errors.Errorf("unknown output format '%s'", format)
	}
}
