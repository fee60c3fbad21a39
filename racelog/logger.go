// Package racelog provides the race controller's structured logging,
// wrapping zerolog directly rather than a generic logging facade — the
// controller only ever needs a handful of event kinds (tick, race start,
// race complete, invariant violation), so a thin wrapper is all that's
// warranted.
package racelog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger records race controller lifecycle events.
type Logger struct {
	zl zerolog.Logger
}

// New wraps a zerolog.Logger for race controller use.
func New(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// NewConsole builds a human-readable console logger writing to w, the
// idiomatic default for CLI tools in this stack.
func NewConsole(w io.Writer) *Logger {
	return New(zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger())
}

// NewNop discards every event. It is not the controller's default; pass it
// via WithLogger to silence logging.
func NewNop() *Logger {
	return New(zerolog.Nop())
}

// Default is a console logger writing to stderr, used when no Logger
// option is supplied to NewRaceController.
func Default() *Logger {
	return NewConsole(os.Stderr)
}

func (l *Logger) RaceStarted(config string, arraySize int, seed uint64) {
	l.zl.Info().
		Str("fairness", config).
		Int("array_size", arraySize).
		Uint64("seed", seed).
		Msg("race started")
}

func (l *Logger) RaceComplete(steps int) {
	l.zl.Info().Int("steps", steps).Msg("race complete")
}

func (l *Logger) Tick(step int, budgets []int) {
	l.zl.Debug().Int("step", step).Ints("budgets", budgets).Msg("tick")
}

func (l *Logger) InvariantViolation(msg string) {
	l.zl.Error().Msg("invariant violation: " + msg)
}
