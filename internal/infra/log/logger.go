package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"automarket/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
	// Output overrides stderr, e.g. a file while the dashboard owns the terminal
	Output io.Writer `optional:"true"`
}

// New builds the process logger. Pretty selects the text handler, JSON otherwise.
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	level, err := parseLogLevel(logCfg.Level)
	if err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	handler := slog.Handler(slog.NewJSONHandler(out, opts))
	if logCfg.Pretty {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With(slog.String("service", params.Config.Env.ServiceName)), nil
}

// parseLogLevel accepts slog level names in any case, plus "warning"
func parseLogLevel(level string) (slog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	switch name {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		name = "warn"
	}

	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "unknown log level %q", level)
	}

	return parsed, nil
}
