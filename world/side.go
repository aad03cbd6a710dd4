package world

// TurtleSide is the side of a turtle an upgrade is mounted on
type TurtleSide int

const (
	Left TurtleSide = iota
	Right

	sideCount = 2
)

// Sides returns all turtle sides in display order
func Sides() [sideCount]TurtleSide {
	return [sideCount]TurtleSide{Left, Right}
}

func (s TurtleSide) valid() bool {
	return s >= 0 && s < sideCount
}

func (s TurtleSide) String() string {
	switch s {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}
