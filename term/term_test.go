package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkahng/yahtzee"
)

func init() {
	// keep ANSI codes out of the assertions
	color.NoColor = true
}

func TestRenderCard(t *testing.T) {
	card := yahtzee.NewScoreCard()
	require.NoError(t, card.Record(yahtzee.Fives, 15))
	require.NoError(t, card.Record(yahtzee.FullHouse, 25))

	var buf bytes.Buffer
	RenderCard(&buf, card)
	out := buf.String()

	assert.Contains(t, out, "fives")
	assert.Contains(t, out, "(15)")
	assert.Contains(t, out, "full house")
	assert.Contains(t, out, "(25)")
	assert.Contains(t, out, "chance")
	assert.Contains(t, out, "Upper:  15 Bonus:  0 Lower:  25 Total:  40")
}

func TestRenderCard_Bonus(t *testing.T) {
	card := yahtzee.NewScoreCard()
	values := []int{3, 6, 9, 12, 15, 18} // upper total 63
	for i, c := range yahtzee.UpperCategories {
		require.NoError(t, card.Record(c, values[i]))
	}

	var buf bytes.Buffer
	RenderCard(&buf, card)

	assert.Contains(t, buf.String(), "Upper:  63 Bonus: 35 Lower:   0 Total:  98")
}

func TestRenderHand(t *testing.T) {
	var buf bytes.Buffer
	RenderHand(&buf, yahtzee.Hand{yahtzee.Five, yahtzee.One, yahtzee.Three, yahtzee.Six, yahtzee.One})

	assert.Equal(t, "You rolled: ⚀ ⚀ ⚂ ⚄ ⚅\n", buf.String())
}

func TestRenderOptions(t *testing.T) {
	options := []yahtzee.Entry{
		{Category: yahtzee.Twos, Value: 4},
		{Category: yahtzee.Fives, Value: 15},
		{Category: yahtzee.SmallStraight, Value: 0},
		{Category: yahtzee.Chance, Value: 19},
	}

	var buf bytes.Buffer
	RenderOptions(&buf, options)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"19 for chance",
		"15 for fives",
		" 4 for twos",
	}
	assert.Equal(t, want, lines, "options print best first and stop at zero")
}

func TestByValueDesc(t *testing.T) {
	options := []yahtzee.Entry{
		{Category: yahtzee.Ones, Value: 2},
		{Category: yahtzee.Chance, Value: 19},
		{Category: yahtzee.Twos, Value: 2},
	}

	sorted := byValueDesc(options)

	assert.Equal(t, yahtzee.Chance, sorted[0].Category)
	// ties keep card order
	assert.Equal(t, yahtzee.Ones, sorted[1].Category)
	assert.Equal(t, yahtzee.Twos, sorted[2].Category)
	// input untouched
	assert.Equal(t, yahtzee.Ones, options[0].Category)
}
