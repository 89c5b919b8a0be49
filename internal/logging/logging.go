// Package logging builds the zap logger of the command line tools
// and carries it through a context.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	filteriterator "github.com/laplasian/filteriterator-tttask"
)

const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

const ErrUnknownFormat filteriterator.Error = "logging: unknown format"

type Config struct {
	// Level is a zap level name, like debug, info or warn.
	Level string
	// Format is one of auto, json or console.
	// With auto, console is used when the output is a terminal.
	Format string
}

// New returns a logger that writes to out.
func New(cfg Config, out io.Writer) (*zap.Logger, error) {
	atom := zap.NewAtomicLevel()
	if cfg.Level != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
		atom.SetLevel(lvl)
	}

	encoder, err := newEncoder(cfg.Format, out)
	if err != nil {
		return nil, err
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), atom)), nil
}

func newEncoder(format string, out io.Writer) (zapcore.Encoder, error) {
	switch format {
	case FormatJSON:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	case FormatConsole:
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	case FormatAuto, "":
		if isTerminal(out) {
			return newEncoder(FormatConsole, out)
		}
		return newEncoder(FormatJSON, out)
	default:
		return nil, ErrUnknownFormat
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
