package core

// GameMode gates which rules-engine action a released click dispatches to
type GameMode uint8

const (
	ModeSelect GameMode = iota
	ModeMove
	ModeAttack
	ModeBuild
)

func (m GameMode) String() string {
	switch m {
	case ModeSelect:
		return "Select"
	case ModeMove:
		return "Move"
	case ModeAttack:
		return "Attack"
	case ModeBuild:
		return "Build"
	}
	return "Unknown"
}

// Session is the top-level screen state
type Session uint8

const (
	SessionMenu Session = iota
	SessionPlaying
)

func (s Session) String() string {
	if s == SessionPlaying {
		return "Playing"
	}
	return "Menu"
}
