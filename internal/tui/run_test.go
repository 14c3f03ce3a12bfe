package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/expense-tally/internal/ledger"
	"github.com/Veraticus/expense-tally/internal/model"
	"github.com/Veraticus/expense-tally/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	set, err := model.PresetCategories(model.PresetExtended)
	require.NoError(t, err)
	return ledger.New(set)
}

func TestRun_RequiresLedger(t *testing.T) {
	err := Run(context.Background())
	assert.ErrorIs(t, err, ErrNoLedger)

	err = Run(context.Background(), WithLedger(ledger.New(model.CategorySet{})))
	assert.ErrorIs(t, err, ErrNoCategories)
}

func TestRun_ScriptedInput(t *testing.T) {
	l := newRunLedger(t)

	// Type an expense, submit, dismiss the success dialog, then ctrl+c.
	input := strings.NewReader("Coffee\t4.50\r\r\x03")
	var output bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx,
		WithLedger(l),
		WithTheme(themes.Default),
		WithAltScreen(false),
		WithIO(input, &output),
	)
	require.NoError(t, err)

	require.Equal(t, 1, l.Len())
	e := l.List()[0]
	assert.Equal(t, "Coffee", e.Description)
	assert.Equal(t, "4.5", e.Amount.String())
	assert.Equal(t, model.CategoryFood, e.Category)
}

func TestRun_ContextCanceled(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	l := newRunLedger(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, WithLedger(l), WithAltScreen(false), WithIO(reader, io.Discard))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
