package yahtzee

import "sort"

// Hand holds the five die faces of the current turn.
type Hand [5]Face

// RollHand rolls five fresh dice from src.
func RollHand(src Source) Hand {
	var h Hand
	for i := range h {
		h[i] = RandomFace(src)
	}
	return h
}

// Reroll returns a copy of the hand with the dice at the given positions
// replaced by fresh rolls. Positions outside [0,5) are ignored.
func (h Hand) Reroll(positions []int, src Source) Hand {
	for _, i := range positions {
		if i < 0 || i >= len(h) {
			continue
		}
		h[i] = RandomFace(src)
	}
	return h
}

// Sorted returns a copy of the hand in ascending face order.
func (h Hand) Sorted() Hand {
	sorted := h
	sort.Slice(sorted[:], func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// Tally counts how many of each face the hand holds.
func (h Hand) Tally() Tally {
	var t Tally
	for _, f := range h {
		t[f-One]++
	}
	return t
}
