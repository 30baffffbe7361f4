package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/anoideaopen/reflection/core/config"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const (
	EnvLevel  = "REFLECTION_LOGGING_LEVEL"
	EnvFormat = "REFLECTION_LOGGING_FORMAT"

	module = "reflection"
)

var (
	once sync.Once
	lg   *logrus.Logger
)

// Logger returns the module logger. On first use it is configured from
// REFLECTION_LOGGING_LEVEL and REFLECTION_LOGGING_FORMAT; invalid values fall
// back to the defaults.
func Logger() *logrus.Entry {
	once.Do(func() {
		lg = logrus.New()
		lg.SetOutput(os.Stderr)

		cfg := config.Logging{
			Level:  os.Getenv(EnvLevel),
			Format: os.Getenv(EnvFormat),
		}
		if err := apply(lg, cfg); err != nil {
			_ = apply(lg, config.Logging{})
			lg.WithError(err).Warn("invalid logging settings in environment, using defaults")
		}
	})

	return lg.WithField("module", module)
}

// Configure applies cfg to the module logger.
func Configure(cfg config.Logging) error {
	base := Logger().Logger

	return apply(base, cfg)
}

// New creates a logger writing to out, configured by cfg.
func New(out io.Writer, cfg config.Logging) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(out)

	if err := apply(l, cfg); err != nil {
		return nil, err
	}

	return l, nil
}

func apply(l *logrus.Logger, cfg config.Logging) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.ParseLevel()
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cfg.Format, l.Out)
	if err != nil {
		return err
	}

	l.SetLevel(lvl)
	l.SetFormatter(formatter)

	return nil
}

func newFormatter(format string, out io.Writer) (logrus.Formatter, error) {
	switch format {
	case config.FormatJSON:
		return &logrus.JSONFormatter{}, nil
	case config.FormatText:
		return &logrus.TextFormatter{FullTimestamp: true, DisableColors: true}, nil
	case "":
		return &logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   isTerminal(out),
			DisableColors: !isTerminal(out),
		}, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", config.ErrUnknownFormat, format)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
