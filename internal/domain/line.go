package domain

type Point struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (p Point) InBounds() bool {
	return p.Row >= 0 && p.Row < Height && p.Column >= 0 && p.Column < Width
}

type Line [WinLength]Point

// Direction is a (row, column) step applied WinLength-1 times from an anchor.
type Direction struct {
	DRow    int
	DColumn int
}

var (
	Horizontal        = Direction{DRow: 0, DColumn: 1}
	Vertical          = Direction{DRow: 1, DColumn: 0}
	DiagonalDownRight = Direction{DRow: 1, DColumn: 1}
	DiagonalDownLeft  = Direction{DRow: 1, DColumn: -1}
)

var Directions = [...]Direction{Horizontal, Vertical, DiagonalDownRight, DiagonalDownLeft}

func (d Direction) LineFrom(anchor Point) Line {
	var line Line
	for i := range line {
		line[i] = Point{
			Row:    anchor.Row + d.DRow*i,
			Column: anchor.Column + d.DColumn*i,
		}
	}
	return line
}

func (l Line) Contains(p Point) bool {
	for _, v := range l {
		if v == p {
			return true
		}
	}
	return false
}
