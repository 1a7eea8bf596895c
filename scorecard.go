package yahtzee

import "errors"

// ErrAlreadyRecorded is returned by Record when the category already has
// an entry on the card.
var ErrAlreadyRecorded = errors.New("category already recorded")

// Bonus rule: 35 points once the upper section reaches 63.
const (
	bonusThreshold = 63
	bonusScore     = 35
)

// Score is the derived view of a card: section totals plus the bonus.
type Score struct {
	Upper int `json:"upper"`
	Lower int `json:"lower"`
	Bonus int `json:"bonus"`
}

// Total is the game score: upper + lower + bonus.
func (s Score) Total() int {
	return s.Upper + s.Lower + s.Bonus
}

// ScoreCard is a player's append-only ledger of (category, value) entries,
// one per category, in play order. Record is the only mutation; entries
// are never updated or removed.
type ScoreCard struct {
	entries []Entry
}

func NewScoreCard() *ScoreCard {
	return &ScoreCard{
		entries: make([]Entry, 0, NumCategories),
	}
}

// HasCategory reports whether c has already been recorded.
func (sc *ScoreCard) HasCategory(c Category) bool {
	for _, e := range sc.entries {
		if e.Category == c {
			return true
		}
	}
	return false
}

// Record appends (c, value) to the ledger. It fails with
// ErrAlreadyRecorded if c has been recorded before, whatever the value.
func (sc *ScoreCard) Record(c Category, value int) error {
	if sc.HasCategory(c) {
		return ErrAlreadyRecorded
	}
	sc.entries = append(sc.entries, Entry{Category: c, Value: value})
	return nil
}

// ValueFor returns the recorded value for c, if any.
func (sc *ScoreCard) ValueFor(c Category) (int, bool) {
	for _, e := range sc.entries {
		if e.Category == c {
			return e.Value, true
		}
	}
	return 0, false
}

// Entries returns the ledger in play order.
func (sc *ScoreCard) Entries() []Entry {
	entries := make([]Entry, len(sc.entries))
	copy(entries, sc.entries)
	return entries
}

// Score recomputes the section totals and bonus from the ledger.
func (sc *ScoreCard) Score() Score {
	var upper, lower int
	for _, e := range sc.entries {
		if e.Category.IsUpper() {
			upper += e.Value
		} else {
			lower += e.Value
		}
	}

	bonus := 0
	if upper >= bonusThreshold {
		bonus = bonusScore
	}

	return Score{
		Upper: upper,
		Lower: lower,
		Bonus: bonus,
	}
}

// IsDone reports whether every category has been recorded, which ends
// the game.
func (sc *ScoreCard) IsDone() bool {
	return len(sc.entries) == NumCategories
}

// Options returns the (category, value) pairs still open on this card for
// a hand evaluated to v, in card order.
func (sc *ScoreCard) Options(v CategoryValues) []Entry {
	options := make([]Entry, 0, NumCategories-len(sc.entries))
	for _, e := range v.Entries() {
		if !sc.HasCategory(e.Category) {
			options = append(options, e)
		}
	}
	return options
}
