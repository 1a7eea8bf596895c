package yahtzee

import "github.com/google/uuid"

// Player owns one scorecard for the lifetime of a game.
type Player struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Card *ScoreCard `json:"-"`
}

func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Card: NewScoreCard(),
	}
}
