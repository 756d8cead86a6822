package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kiryu-dev/connect-four/internal/domain"
	"github.com/kiryu-dev/connect-four/pkg/utils"
	"github.com/pkg/errors"
)

type textRenderer struct {
	w       io.Writer
	players domain.Players
}

func newTextRenderer(w io.Writer, players domain.Players) textRenderer {
	return textRenderer{w: w, players: players}
}

func (r textRenderer) Render(msg domain.Message, board domain.Board) error {
	var out string
	switch payload := msg.Payload.(type) {
	case domain.StartGamePayload:
		out = fmt.Sprintf("New game %s\n", payload.GameUuid)
	case domain.RequestMovePayload:
		out = r.board(board, nil) + fmt.Sprintf("%s (%s), choose a column [1-%d]: ",
			payload.Player.Name, payload.Player.Symbol, domain.Width)
	case domain.PlayerMovePayload:
		out = fmt.Sprintf("%s drops into column %d\n", payload.Player.Name, payload.Column+1)
	case domain.GameResultPayload:
		out = r.board(board, payload.Line)
		if payload.Winner != nil {
			out += fmt.Sprintf("%s wins! Type 'new' to play again.\n", payload.Winner.Name)
		} else {
			out += "Draw! Type 'new' to play again.\n"
		}
	case domain.InvalidMovePayload:
		out = fmt.Sprintf("Invalid move '%s': %s\n", payload.Input, payload.Reason)
	case domain.Score:
		out = fmt.Sprintf("%s: %d, %s: %d, draws: %d, games: %d\n",
			r.players.Of(domain.Player1).Name, payload.Player1Wins,
			r.players.Of(domain.Player2).Name, payload.Player2Wins,
			payload.Draws, payload.Games)
	default:
		return errors.Errorf("unexpected payload %T for message '%s'", msg.Payload, msg.Type)
	}
	if _, err := io.WriteString(r.w, out); err != nil {
		return errors.WithMessage(err, "write output")
	}
	return nil
}

// board draws the grid top row first; cells of highlight are bracketed.
func (r textRenderer) board(board domain.Board, highlight *domain.Line) string {
	sb := new(strings.Builder)
	for column := 0; column < domain.Width; column++ {
		fmt.Fprintf(sb, " %d ", column+1)
	}
	sb.WriteString("\n")
	for row := 0; row < domain.Height; row++ {
		for column := 0; column < domain.Width; column++ {
			point := domain.Point{Row: row, Column: column}
			symbol := "."
			if cell := board.At(point); cell != domain.Empty {
				symbol = r.players.Of(cell).Symbol
			}
			if highlight != nil && highlight.Contains(point) {
				fmt.Fprintf(sb, "[%s]", symbol)
			} else {
				fmt.Fprintf(sb, " %s ", symbol)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

type jsonEvent struct {
	domain.Message
	Board []string `json:"board,omitempty"`
}

type jsonRenderer struct {
	w io.Writer
}

func newJsonRenderer(w io.Writer) jsonRenderer {
	return jsonRenderer{w: w}
}

func (r jsonRenderer) Render(msg domain.Message, board domain.Board) error {
	event := jsonEvent{Message: msg}
	switch msg.Type {
	case domain.StartGame, domain.PlayerMove, domain.GameResult:
		event.Board = encodeBoard(board)
	}
	if err := utils.WriteJsonLine(r.w, event); err != nil {
		return errors.WithMessagef(err, "write '%s' event", msg.Type)
	}
	return nil
}

// encodeBoard renders rows top first with '.', '1' and '2'.
func encodeBoard(board domain.Board) []string {
	rows := make([]string, 0, domain.Height)
	for _, row := range board {
		var sb strings.Builder
		for _, cell := range row {
			switch cell {
			case domain.Player1:
				sb.WriteByte('1')
			case domain.Player2:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}
