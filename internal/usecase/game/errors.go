package game

import (
	"github.com/pkg/errors"
)

var (
	ErrOutOfRange   = errors.New("column is out of range")
	ErrGameFinished = errors.New("game is already finished")
)
