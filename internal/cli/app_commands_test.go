package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindful-ai-dude/multilingo/internal/config"
)

// capturePrintln redirects user-facing output for the duration of a test.
func capturePrintln(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	old := printlnFn
	printlnFn = func(args ...any) { fmt.Fprintln(&sb, args...) }
	t.Cleanup(func() { printlnFn = old })
	return &sb
}

func newTestApp(t *testing.T, script string) *App {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = ":memory:"

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.store.Close() })

	app.reader = bufio.NewReader(strings.NewReader(script))
	return app
}

func TestPrefsShowAndUpdate(t *testing.T) {
	ctx := context.Background()
	out := capturePrintln(t)

	a := newTestApp(t, "french\nenglish\n")
	a.prefs(ctx, nil)

	p, err := a.store.Preferences.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "arabic", string(p.FromLanguage))

	a.prefs(ctx, []string{"languages"})
	assert.Contains(t, out.String(), "Preferences updated.")

	p, err = a.store.Preferences.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "french", string(p.FromLanguage))
	assert.Equal(t, "english", string(p.ToLanguage))
}

func TestPhrasesCommand(t *testing.T) {
	ctx := context.Background()
	capturePrintln(t)

	a := newTestApp(t, "")
	a.phrases(ctx, []string{"medical"})
	// seeded phrase set always has medical entries, so no error output expected
}

func TestSyncCommandEmptyQueue(t *testing.T) {
	ctx := context.Background()
	out := capturePrintln(t)

	a := newTestApp(t, "")
	a.sync(ctx)
	assert.Contains(t, out.String(), "Sync queue is empty.")
}

func TestAcknowledgeUsage(t *testing.T) {
	ctx := context.Background()
	out := capturePrintln(t)

	a := newTestApp(t, "")
	a.acknowledge(ctx, nil)
	assert.Contains(t, out.String(), "Usage: ack")
}

func TestBroadcastEndToEnd(t *testing.T) {
	ctx := context.Background()
	capturePrintln(t)

	// message, language, location, urgency, category
	a := newTestApp(t, "I need help\nenglish\nAtlas Mountains\n9\nrescue\n")
	a.broadcast(ctx)

	active, err := a.broadcaster.Active(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "I need help", active[0].Message)
	assert.Equal(t, 9, active[0].UrgencyLevel)
	// fan-out covers every language except the source
	assert.Len(t, active[0].Translations, 3)
}
