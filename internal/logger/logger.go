package logger

import (
	"io"
	"os"
	"strings"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"github.com/trafficsim/trafficlight-go/internal/config"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var DefaultSet = wire.NewSet(
	NewLogger,
)

func NewLogger(config *config.Config) *zerolog.Logger {
	return New(config.Log, os.Stdout)
}

// New builds a logger writing to out. Unknown formats fall back to console
// output and unknown levels leave every level enabled.
func New(cfg config.Log, out io.Writer) *zerolog.Logger {
	if !strings.EqualFold(cfg.Format, FormatJSON) {
		out = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()

	if cfg.Level != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
			logger = logger.Level(level)
		}
	}

	return &logger
}
