package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log/slog"

	"github.com/valadaptive/after-effects/internal/hosttest"
	"github.com/valadaptive/after-effects/log"
)

func TestLoggerWritesToHostConsole(t *testing.T) {
	host := hosttest.New()
	logger := log.New(host.UtilitySuite())

	logger.Info("render started", "frame", 12)

	lines := host.ConsoleLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "INFO render started frame=12", lines[0])
}

func TestLevelFiltering(t *testing.T) {
	host := hosttest.New()
	logger := log.New(host.UtilitySuite(), log.WithLevel(slog.LevelWarn))

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")
	logger.Error("kept too")

	lines := host.ConsoleLines()
	require.Len(t, lines, 2)
	assert.Equal(t, "WARN kept", lines[0])
	assert.Equal(t, "ERROR kept too", lines[1])
}

func TestNilUtilityDiscards(t *testing.T) {
	logger := log.New(nil)
	logger.Info("into the void")
	logger.Error("also discarded")
}

func TestWithAttrsAndGroup(t *testing.T) {
	host := hosttest.New()
	logger := log.New(host.UtilitySuite()).With("param", "blend")

	logger.Info("checked out", "index", 2)
	logger.WithGroup("host").Info("callback", "kind", "new")

	lines := host.ConsoleLines()
	require.Len(t, lines, 2)
	assert.Equal(t, "INFO checked out param=blend index=2", lines[0])
	assert.Equal(t, "INFO callback param=blend host.kind=new", lines[1])
}
