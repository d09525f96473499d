package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/input"
	"github.com/lixenwraith/papercraft/systems"
)

// ReportCopier exports the battle report, typically to the clipboard
type ReportCopier interface {
	CopyReport() error
}

// InputHandler processes user input events and drives one rules cycle per frame
type InputHandler struct {
	rules    *systems.RulesEngine
	machine  *input.Machine
	reporter ReportCopier
	log      zerolog.Logger
}

// NewInputHandler creates a new input handler. reporter may be nil.
func NewInputHandler(rules *systems.RulesEngine, machine *input.Machine, reporter ReportCopier) *InputHandler {
	return &InputHandler{
		rules:    rules,
		machine:  machine,
		reporter: reporter,
		log:      rules.Context().Log,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch h.machine.Process(ev) {
	case core.KeyQuit:
		return false
	case core.KeyReport:
		h.copyReport()
	}
	return true
}

// Tick runs one frame: the accumulated input goes through one rules cycle.
// In the menu only Space has an effect.
func (h *InputHandler) Tick() {
	h.rules.Cycle(h.machine.Frame())
}

func (h *InputHandler) copyReport() {
	if h.reporter == nil || h.rules.Context().State.Session != core.SessionPlaying {
		return
	}
	if err := h.reporter.CopyReport(); err != nil {
		h.log.Warn().Err(err).Msg("battle report copy failed")
		return
	}
	h.log.Info().Msg("battle report copied")
}
