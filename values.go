package yahtzee

// Fixed scores for the pattern-based lower categories.
const (
	fiveOfAKindScore   = 50
	smallStraightScore = 30
	largeStraightScore = 40
	fullHouseScore     = 25
)

// CategoryValues holds, for one hand, the score every category would earn
// if recorded now. Indexed by category ordinal, so lookup is O(1).
type CategoryValues [NumCategories]int

// Evaluate computes the achievable score for every category from a tally.
// It is total: every hand shape yields a value (possibly 0) per category.
func Evaluate(t Tally) CategoryValues {
	var v CategoryValues

	upper := t.WeightedByValue()
	for _, f := range Faces {
		v[UpperFor(f)] = upper[f-One]
	}

	sum := t.Sum()
	if t.HasNOfAKind(3) {
		v[ThreeOfAKind] = sum
	}
	if t.HasNOfAKind(4) {
		v[FourOfAKind] = sum
	}
	if t.HasNOfAKind(5) {
		v[FiveOfAKind] = fiveOfAKindScore
	}
	if t.HasSmallStraight() {
		v[SmallStraight] = smallStraightScore
	}
	if t.HasLargeStraight() {
		v[LargeStraight] = largeStraightScore
	}
	if t.HasFullHouse() {
		v[FullHouse] = fullHouseScore
	}
	v[Chance] = sum

	return v
}

// Value returns the score category c would earn.
func (v CategoryValues) Value(c Category) int {
	return v[c]
}

// Entry pairs a category with a score, either achievable (option lists)
// or recorded (the card's ledger).
type Entry struct {
	Category Category `json:"category"`
	Value    int      `json:"value"`
}

// Entries lists all 13 (category, value) pairs in card order, unfiltered.
// Ordering or hiding pairs is the presentation layer's business.
func (v CategoryValues) Entries() []Entry {
	entries := make([]Entry, 0, NumCategories)
	for _, c := range UpperCategories {
		entries = append(entries, Entry{Category: c, Value: v[c]})
	}
	for _, c := range LowerCategories {
		entries = append(entries, Entry{Category: c, Value: v[c]})
	}
	return entries
}
