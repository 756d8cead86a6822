package domain

type Player struct {
	Cell   Cell   `json:"cell"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func NewPlayer(cell Cell, name string, symbol string) Player {
	return Player{
		Cell:   cell,
		Name:   name,
		Symbol: symbol,
	}
}

// Players maps a cell to its display settings.
type Players map[Cell]Player

func (p Players) Of(cell Cell) Player {
	if player, ok := p[cell]; ok {
		return player
	}
	return Player{Cell: cell}
}
