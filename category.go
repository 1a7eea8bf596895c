package yahtzee

// Category is one of the 13 fixed scoring slots on the card: six upper
// slots (one per face) and seven lower ones.
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	SmallStraight
	LargeStraight
	FullHouse
	FiveOfAKind
	Chance

	// NumCategories is the fixed size of the card. IsDone relies on it.
	NumCategories = 13
)

// UpperCategories lists the six upper slots in face order.
var UpperCategories = [6]Category{Ones, Twos, Threes, Fours, Fives, Sixes}

// LowerCategories lists the seven lower slots in card order.
var LowerCategories = [7]Category{
	ThreeOfAKind,
	FourOfAKind,
	SmallStraight,
	LargeStraight,
	FullHouse,
	FiveOfAKind,
	Chance,
}

// UpperFor returns the upper category scored by counting face f.
func UpperFor(f Face) Category {
	return Category(f - One)
}

// IsUpper reports whether c is one of the six upper slots.
func (c Category) IsUpper() bool {
	return c >= Ones && c <= Sixes
}

// UpperFace returns the face an upper category counts, and false for
// lower categories.
func (c Category) UpperFace() (Face, bool) {
	if !c.IsUpper() {
		return 0, false
	}
	return One + Face(c), true
}

func (c Category) String() string {
	switch c {
	case Ones:
		return "ones"
	case Twos:
		return "twos"
	case Threes:
		return "threes"
	case Fours:
		return "fours"
	case Fives:
		return "fives"
	case Sixes:
		return "sixes"
	case ThreeOfAKind:
		return "3 of a kind"
	case FourOfAKind:
		return "4 of a kind"
	case SmallStraight:
		return "small straight"
	case LargeStraight:
		return "large straight"
	case FullHouse:
		return "full house"
	case FiveOfAKind:
		return "5 of a kind"
	case Chance:
		return "chance"
	}
	return "unknown"
}
