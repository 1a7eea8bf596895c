package yahtzee

// Face is a single die's showing value, 1 through 6.
type Face int

const (
	One Face = iota + 1
	Two
	Three
	Four
	Five
	Six
)

// Faces lists every face in ascending order.
var Faces = [6]Face{One, Two, Three, Four, Five, Six}

func (f Face) String() string {
	switch f {
	case One:
		return "⚀"
	case Two:
		return "⚁"
	case Three:
		return "⚂"
	case Four:
		return "⚃"
	case Five:
		return "⚄"
	case Six:
		return "⚅"
	}
	return "?"
}

// Source supplies the randomness the engine consumes. *rand.Rand
// satisfies it; tests substitute deterministic stubs.
type Source interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// RandomFace draws one uniformly distributed face from src.
func RandomFace(src Source) Face {
	return Faces[src.Intn(len(Faces))]
}
