package mock

import (
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// NewLogger returns a silent logger whose entries are kept by the hook. The
// level is debug unless the LOG environment variable names another one.
func NewLogger(t *testing.T) (*logrus.Logger, *test.Hook) {
	lvl := logrus.DebugLevel
	if level, ok := os.LookupEnv("LOG"); ok {
		var err error
		lvl, err = logrus.ParseLevel(level)
		require.NoError(t, err)
	}

	l, hook := test.NewNullLogger()
	l.SetLevel(lvl)
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})

	return l, hook
}
