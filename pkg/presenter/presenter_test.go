package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPresenterOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewWithWriters(&out, &errOut)

	p.Success("archive written")
	p.Warning("key does not look like a 32-character hex string")
	p.Info("3 files bundled")
	p.Error(errors.New("no SKILL.md found"), "validation failed")

	assert.Contains(t, out.String(), "archive written")
	assert.Contains(t, out.String(), "32-character hex string")
	assert.Contains(t, out.String(), "3 files bundled")
	assert.Contains(t, errOut.String(), "validation failed: no SKILL.md found")
}

func TestQuietSuppressesNonErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewWithWriters(&out, &errOut)
	p.SetQuiet(true)

	p.Success("done")
	p.Warning("careful")
	p.Info("hello")
	assert.Empty(t, out.String())

	p.Error(errors.New("boom"), "")
	assert.Contains(t, errOut.String(), "boom")
}
