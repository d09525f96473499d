package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/engine"
)

// Render writes the battle report: header, per-faction roster and the log
func Render(v engine.View, lines []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "PaperCraft battle report\n")
	fmt.Fprintf(&sb, "Round %d, %s to move, mode %s\n", v.Round, v.Turn, v.Mode)

	for f := core.Faction(0); f < core.FactionCount; f++ {
		var units []engine.EntityView
		for _, e := range v.Entities {
			if e.Unit.Faction == f {
				units = append(units, e)
			}
		}
		fmt.Fprintf(&sb, "\n%s (%d)\n", f, len(units))
		for _, e := range units {
			u := e.Unit
			fmt.Fprintf(&sb, "  %c #%d (%d,%d) hp %d  moves %d/%d  attacks %d/%d  interceptors %d/%d",
				e.Glyph, e.ID, e.Position.X, e.Position.Y, u.HP,
				u.Moves.Current, u.Moves.Max,
				u.Attacks.Current, u.Attacks.Max,
				u.Interceptors.Current, u.Interceptors.Max)
			if u.Lifespan != nil {
				fmt.Fprintf(&sb, "  lifespan %d", *u.Lifespan)
			}
			sb.WriteByte('\n')
		}
	}

	if len(lines) > 0 {
		sb.WriteString("\nLog\n")
		for _, l := range lines {
			sb.WriteString("  ")
			sb.WriteString(l)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Exporter copies the current battle report to the system clipboard
type Exporter struct {
	ctx *engine.GameContext
	log *BattleLog

	// write overrides the clipboard; nil uses the system clipboard
	write func(string) error
}

// NewExporter creates an exporter writing to the system clipboard
func NewExporter(ctx *engine.GameContext, log *BattleLog) *Exporter {
	return &Exporter{ctx: ctx, log: log}
}

// Report renders the report for the current state
func (x *Exporter) Report() string {
	return Render(x.ctx.BuildView(core.RGBBlack), x.log.Lines())
}

// CopyReport writes the report to the clipboard
func (x *Exporter) CopyReport() error {
	write := x.write
	if write == nil {
		if clipboard.Unsupported {
			return errors.New("clipboard unsupported on this system")
		}
		write = clipboard.WriteAll
	}
	if err := write(x.Report()); err != nil {
		return fmt.Errorf("copy battle report: %w", err)
	}
	return nil
}
