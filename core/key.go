package core

// Key is a semantic key press delivered by the input boundary
type Key uint8

const (
	KeyNone Key = iota
	KeyMove
	KeyAttack
	KeyBuild
	KeyEscape
	KeySpace
	KeyReport
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyMove:
		return "M"
	case KeyAttack:
		return "A"
	case KeyBuild:
		return "B"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyReport:
		return "R"
	case KeyQuit:
		return "Quit"
	}
	return "None"
}
