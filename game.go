package yahtzee

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GameState represents the current state of the game
type GameState string

const (
	GameStateWaiting    GameState = "waiting"
	GameStateInProgress GameState = "in_progress"
	GameStateFinished   GameState = "finished"
)

// MaxRerolls is how many times a turn's dice may be rerolled after the
// opening roll.
const MaxRerolls = 2

// Game sequences one player's turns: roll, up to two rerolls, then record
// one category. It finishes when the scorecard is full.
type Game struct {
	ID          string    `json:"id"`
	Player      *Player   `json:"player"`
	State       GameState `json:"state"`
	CreatedAt   time.Time `json:"createdAt"`
	src         Source
	hand        Hand
	rerollsLeft int
	values      CategoryValues
	mutex       *sync.RWMutex
}

// NewGame creates a game in the waiting state. src provides the dice.
func NewGame(player *Player, src Source) *Game {
	return &Game{
		ID:        uuid.NewString(),
		Player:    player,
		State:     GameStateWaiting,
		CreatedAt: time.Now(),
		src:       src,
		mutex:     &sync.RWMutex{},
	}
}

// Start rolls the opening hand and puts the game in progress.
func (g *Game) Start() error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.State != GameStateWaiting {
		return fmt.Errorf("game already started")
	}

	g.State = GameStateInProgress
	g.beginTurn()
	return nil
}

// beginTurn rolls a fresh hand. Callers hold the write lock.
func (g *Game) beginTurn() {
	g.hand = RollHand(g.src)
	g.rerollsLeft = MaxRerolls
	g.values = Evaluate(g.hand.Tally())
}

// Hand returns the current turn's dice.
func (g *Game) Hand() Hand {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.hand
}

// RerollsLeft returns how many rerolls remain this turn.
func (g *Game) RerollsLeft() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.rerollsLeft
}

// Values returns the achievable score per category for the current hand.
func (g *Game) Values() CategoryValues {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.values
}

// Options returns the still-open (category, value) pairs for the current
// hand, in card order.
func (g *Game) Options() []Entry {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.Player.Card.Options(g.values)
}

// Reroll replaces the dice at the given positions and re-evaluates the
// hand. It fails when the game is not in progress, the turn's rerolls are
// spent, or no positions are given.
func (g *Game) Reroll(positions []int) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.State != GameStateInProgress {
		return fmt.Errorf("game is not in progress")
	}
	if g.rerollsLeft == 0 {
		return fmt.Errorf("no rerolls left this turn")
	}
	if len(positions) == 0 {
		return fmt.Errorf("no dice selected")
	}

	g.hand = g.hand.Reroll(positions, g.src)
	g.rerollsLeft--
	g.values = Evaluate(g.hand.Tally())
	return nil
}

// Record scores the current hand under c, then either rolls the next
// turn's hand or finishes the game when the card is full.
func (g *Game) Record(c Category) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.State != GameStateInProgress {
		return fmt.Errorf("game is not in progress")
	}

	if err := g.Player.Card.Record(c, g.values.Value(c)); err != nil {
		return err
	}

	if g.Player.Card.IsDone() {
		g.State = GameStateFinished
		return nil
	}

	g.beginTurn()
	return nil
}

// Card returns the player's scorecard.
func (g *Game) Card() *ScoreCard {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.Player.Card
}

// Score returns the player's running score.
func (g *Game) Score() Score {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.Player.Card.Score()
}
