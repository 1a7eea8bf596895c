// Package term renders the scorecard and dice on a terminal and drives
// the interactive roll/record loop.
package term

import (
	"fmt"
	"io"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/tkahng/yahtzee"
)

var strike = color.New(color.CrossedOut).SprintFunc()

// cell formats one scorecard slot, struck through with its value once
// recorded. The label is padded before styling so the ANSI codes do not
// break the column width.
func cell(card *yahtzee.ScoreCard, c yahtzee.Category) string {
	label := fmt.Sprintf("%-15s", c)
	if v, ok := card.ValueFor(c); ok {
		return fmt.Sprintf("%s (%2d)", strike(label), v)
	}
	return label + "     "
}

// RenderCard writes the card as two columns, upper slots on the left and
// lower on the right, followed by the running score.
func RenderCard(w io.Writer, card *yahtzee.ScoreCard) {
	for i, lower := range yahtzee.LowerCategories {
		left := fmt.Sprintf("%-20s", "")
		if i < len(yahtzee.UpperCategories) {
			left = cell(card, yahtzee.UpperCategories[i])
		}
		fmt.Fprintf(w, "%s  %s\n", left, cell(card, lower))
	}

	s := card.Score()
	fmt.Fprintf(w, "\nUpper: %3d Bonus: %2d Lower: %3d Total: %3d\n",
		s.Upper, s.Bonus, s.Lower, s.Total())
}

// RenderHand writes the rolled dice as glyphs in ascending order.
func RenderHand(w io.Writer, h yahtzee.Hand) {
	fmt.Fprint(w, "You rolled:")
	for _, f := range h.Sorted() {
		fmt.Fprintf(w, " %s", f)
	}
	fmt.Fprintln(w)
}

// byValueDesc returns the entries sorted by descending value, ties in
// card order.
func byValueDesc(entries []yahtzee.Entry) []yahtzee.Entry {
	sorted := make([]yahtzee.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	return sorted
}

// RenderOptions writes the open categories that would score points, best
// first.
func RenderOptions(w io.Writer, options []yahtzee.Entry) {
	for _, e := range byValueDesc(options) {
		if e.Value == 0 {
			break
		}
		fmt.Fprintf(w, "%2d for %s\n", e.Value, e.Category)
	}
}

// PickReroll asks which dice to roll again and returns their positions in
// the hand. An empty selection means the player keeps the hand.
func PickReroll(h yahtzee.Hand) ([]int, error) {
	// number the dice so two equal faces stay distinct options
	items := make([]string, len(h))
	for i, f := range h {
		items[i] = fmt.Sprintf("%d: %s", i+1, f)
	}

	var picked []survey.OptionAnswer
	prompt := &survey.MultiSelect{
		Message: "Select the dice that you want to roll again",
		Options: items,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, err
	}

	positions := make([]int, 0, len(picked))
	for _, p := range picked {
		positions = append(positions, p.Index)
	}
	return positions, nil
}

// PickCategory asks which open category to record, best value first.
func PickCategory(options []yahtzee.Entry) (yahtzee.Category, error) {
	sorted := byValueDesc(options)
	items := make([]string, len(sorted))
	for i, e := range sorted {
		items[i] = fmt.Sprintf("%2d for %s", e.Value, e.Category)
	}

	var picked survey.OptionAnswer
	prompt := &survey.Select{
		Message: "What category do you want to record?",
		Options: items,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return 0, err
	}
	return sorted[picked.Index].Category, nil
}

// Play drives one full game on the terminal: roll, up to two rerolls,
// record, until the card is full.
func Play(g *yahtzee.Game, out io.Writer) error {
	if err := g.Start(); err != nil {
		return err
	}

	for {
		for {
			fmt.Fprintln(out)
			RenderCard(out, g.Card())
			fmt.Fprintln(out)
			RenderHand(out, g.Hand())

			if g.RerollsLeft() == 0 {
				break
			}

			RenderOptions(out, g.Options())
			positions, err := PickReroll(g.Hand())
			if err != nil {
				return err
			}
			if len(positions) == 0 {
				break
			}
			if err := g.Reroll(positions); err != nil {
				return err
			}
		}

		c, err := PickCategory(g.Options())
		if err != nil {
			return err
		}
		if err := g.Record(c); err != nil {
			return err
		}

		if g.Card().IsDone() {
			fmt.Fprintln(out)
			RenderCard(out, g.Card())
			return nil
		}
	}
}
