package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/papercraft/config"
	"github.com/lixenwraith/papercraft/events"
)

const (
	logFileName = "papercraft.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the game logger. Without debug every log is discarded and
// the returned file is nil. With debug the log goes to <dir>/papercraft.log,
// rotating the previous file once it exceeds maxLogSize. The terminal is never
// written to.
func setupLogging(cfg config.LogConfig) (zerolog.Logger, *os.File, error) {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
	}

	logPath := filepath.Join(cfg.Dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(cfg.Dir, fmt.Sprintf("papercraft-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotating log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.DebugLevel
	}

	// Third-party packages that use the standard logger end up in the same file
	log.SetOutput(file)

	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return logger, file, nil
}

// eventLogger traces every dispatched game event
type eventLogger struct {
	log zerolog.Logger
}

func (l eventLogger) EventTypes() []events.EventType {
	return events.AllTypes()
}

func (l eventLogger) HandleEvent(ev events.GameEvent) {
	l.log.Trace().
		Stringer("type", ev.Type).
		Int("round", ev.Round).
		Interface("payload", ev.Payload).
		Msg("event")
}
