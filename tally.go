package yahtzee

// Tally is the per-face frequency table of a hand, indexed by face-1.
// Built from a valid Hand its counts always sum to 5.
type Tally [6]int

var smallStraights = [3][4]Face{
	{One, Two, Three, Four},
	{Two, Three, Four, Five},
	{Three, Four, Five, Six},
}

var largeStraights = [2][5]Face{
	{One, Two, Three, Four, Five},
	{Two, Three, Four, Five, Six},
}

// Count returns how many dice show f.
func (t Tally) Count(f Face) int {
	return t[f-One]
}

// Sum is the pip total of the tallied hand.
func (t Tally) Sum() int {
	sum := 0
	for _, f := range Faces {
		sum += t.Count(f) * int(f)
	}
	return sum
}

// HasNOfAKind reports whether any face shows at least n times. The "at
// least" matters: five equal dice also count as three and four of a kind.
func (t Tally) HasNOfAKind(n int) bool {
	for _, count := range t {
		if count >= n {
			return true
		}
	}
	return false
}

// HasFullHouse reports whether the tally holds an exact pair and an exact
// triple at once. Five equal dice do not qualify.
func (t Tally) HasFullHouse() bool {
	pair, triple := false, false
	for _, count := range t {
		if count == 2 {
			pair = true
		}
		if count == 3 {
			triple = true
		}
	}
	return pair && triple
}

func (t Tally) hasRun(run []Face) bool {
	for _, f := range run {
		if t.Count(f) == 0 {
			return false
		}
	}
	return true
}

// HasSmallStraight reports whether four consecutive faces are present.
func (t Tally) HasSmallStraight() bool {
	for _, run := range smallStraights {
		if t.hasRun(run[:]) {
			return true
		}
	}
	return false
}

// HasLargeStraight reports whether five consecutive faces are present.
func (t Tally) HasLargeStraight() bool {
	for _, run := range largeStraights {
		if t.hasRun(run[:]) {
			return true
		}
	}
	return false
}

// WeightedByValue returns each face's count multiplied by its pip value.
// Entry f-1 is exactly the upper-category score for face f.
func (t Tally) WeightedByValue() Tally {
	var w Tally
	for _, f := range Faces {
		w[f-One] = t.Count(f) * int(f)
	}
	return w
}
