package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithOptions(&out, &errOut, ColorNever), &out, &errOut
}

func TestError(t *testing.T) {
	p, out, errOut := newTestPresenter()

	p.Error(errors.New("boom"), "Validation failed")
	assert.Contains(t, errOut.String(), "[ERROR] Validation failed: boom")
	assert.Empty(t, out.String())

	errOut.Reset()
	p.Error(nil, "ignored")
	assert.Empty(t, errOut.String())
}

func TestMessages(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("all skills pass")
	p.Warning("one advisory finding")
	p.Info("3 skills checked")

	assert.Contains(t, out.String(), "✓ all skills pass")
	assert.Contains(t, out.String(), "⚠ one advisory finding")
	assert.Contains(t, out.String(), "3 skills checked")
}

func TestSection(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Section("Report")
	assert.Contains(t, out.String(), "Report\n------\n")
}

func TestQuietMode(t *testing.T) {
	p, out, errOut := newTestPresenter()
	p.SetQuiet(true)
	assert.True(t, p.IsQuiet())

	p.Success("hidden")
	p.Warning("hidden")
	p.Info("hidden")
	p.Section("hidden")
	p.Separator()
	assert.Empty(t, out.String())

	// Errors are never suppressed
	p.Error(errors.New("boom"), "")
	assert.Contains(t, errOut.String(), "boom")
}
