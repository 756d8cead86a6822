package domain

type Score struct {
	Player1Wins uint64 `json:"player1_wins"`
	Player2Wins uint64 `json:"player2_wins"`
	Draws       uint64 `json:"draws"`
	Games       uint64 `json:"games"`
}

type HubUseCase interface {
	NewGame() GameState
	Current() GameState
	LandingRow(column int) (int, bool, error)
	Drop(column int) (DropResult, error)
	WinningLine() (Line, bool)
	Score() Score
}
