package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrInputClosed = errors.New("input closed")
	ErrEmptyInput  = errors.New("empty input")
)

type messageType string

const (
	StartGame   = messageType("start_game")
	RequestMove = messageType("request_move")
	PlayerMove  = messageType("player_move")
	GameResult  = messageType("game_result")
	InvalidMove = messageType("invalid_move")
	ScoreReport = messageType("score")
)

type Message struct {
	Type    messageType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

type StartGamePayload struct {
	GameUuid string `json:"game_uuid"`
	Player   Player `json:"player"`
}

type RequestMovePayload struct {
	Player Player `json:"player"`
}

type PlayerMovePayload struct {
	Player Player `json:"player"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Status string `json:"status"`
}

type GameResultPayload struct {
	Status string  `json:"status"`
	Winner *Player `json:"winner,omitempty"`
	Line   *Line   `json:"line,omitempty"`
}

type InvalidMovePayload struct {
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

// Renderer is the presentation side of the UI layer.
type Renderer interface {
	Render(msg Message, board Board) error
}
