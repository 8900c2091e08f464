package ui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// captureOutput collects spinner writes in a thread-safe buffer.
type captureOutput struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (c *captureOutput) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.WriteString(s)
}

func (c *captureOutput) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

func TestSpinnerSuccess(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("testing connection")
	s.SetOutput(out.write)

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Success()

	assert.Equal(t, SpinnerSuccess, s.State())
	assert.Contains(t, out.String(), "testing connection")
	assert.Contains(t, out.String(), SymbolSuccess)
}

func TestSpinnerFail(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("probing service")
	s.SetOutput(out.write)

	s.Start()
	s.Fail()

	assert.Equal(t, SpinnerFailed, s.State())
	assert.Contains(t, out.String(), SymbolFail)
}

func TestSpinnerStartIsIdempotent(t *testing.T) {
	s := NewSpinner("x")
	s.SetOutput(func(string) {})

	s.Start()
	s.Start() // second start is a no-op
	s.Stop()

	assert.Equal(t, SpinnerInProgress, s.State())
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := NewSpinner("x")
	s.Stop() // must not panic or block
	assert.Equal(t, SpinnerPending, s.State())
}

func TestSpinnerLabel(t *testing.T) {
	s := NewSpinner("checking")
	assert.Equal(t, "checking", s.Label())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0.05s", formatDuration(50*time.Millisecond))
	assert.Equal(t, "1.2s", formatDuration(1200*time.Millisecond))
}
