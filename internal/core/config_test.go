package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeConfigCenter(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, NewRect(0, 0, 600, 400), cfg.Bounds())
	assert.Equal(t, Vec(300, 200, 0), cfg.Center())

	cfg.SurfaceW, cfg.SurfaceH = 101, 50
	assert.Equal(t, Vec(50.5, 25, 0), cfg.Center())
}
