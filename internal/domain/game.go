package domain

const (
	Width     = 7
	Height    = 6
	WinLength = 4
)

type Cell byte

const (
	Empty = Cell(iota)
	Player1
	Player2
)

// Toggle returns the opponent of a player cell. Empty stays Empty.
func (c Cell) Toggle() Cell {
	switch c {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (c Cell) IsPlayer() bool {
	return c == Player1 || c == Player2
}

// Board is indexed [row][column], row 0 is the top of the grid.
type Board [Height][Width]Cell

func (b *Board) At(p Point) Cell {
	return b[p.Row][p.Column]
}

// ColumnCount returns the number of occupied cells in a column.
func (b *Board) ColumnCount(column int) int {
	count := 0
	for row := Height - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			break
		}
		count++
	}
	return count
}

type MoveStatus byte

const (
	Continue = MoveStatus(iota)
	ColumnFull
	Win
	Draw
)

func (s MoveStatus) String() string {
	switch s {
	case Continue:
		return "continue"
	case ColumnFull:
		return "column_full"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// DropResult is what the UI layer receives after a drop. Row is -1 for ColumnFull.
type DropResult struct {
	Status MoveStatus
	Player Cell
	Row    int
	Column int
}

type status byte

const (
	AwaitingMove = status(iota)
	Won
	Drawn
)

func (s status) String() string {
	switch s {
	case AwaitingMove:
		return "awaiting_move"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "unknown"
	}
}

type GameState struct {
	Uuid          string
	Board         Board
	CurrentPlayer Cell
	Status        status
	Winner        Cell
	Round         uint8
}

func NewGameState(uuid string) *GameState {
	return &GameState{
		Uuid:          uuid,
		CurrentPlayer: Player1,
		Status:        AwaitingMove,
	}
}

func (s GameState) IsFinished() bool {
	return s.Status != AwaitingMove
}

type GameUseCase interface {
	FindLandingRow(state *GameState, column int) (int, bool, error)
	DropInColumn(state *GameState, column int) (DropResult, error)
}
