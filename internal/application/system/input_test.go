package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/portalknight/internal/domain/entity"
)

func TestNewInputSystem(t *testing.T) {
	assert.NotNil(t, NewInputSystem())
}

func TestInputState_Direction(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  entity.Direction
	}{
		{"nothing held", InputState{}, entity.DirNone},
		{"left", InputState{Left: true}, entity.DirLeft},
		{"right", InputState{Right: true}, entity.DirRight},
		{"up", InputState{Up: true}, entity.DirUp},
		{"down", InputState{Down: true}, entity.DirDown},
		{"left beats right", InputState{Left: true, Right: true}, entity.DirLeft},
		{"right beats up", InputState{Right: true, Up: true}, entity.DirRight},
		{"up beats down", InputState{Up: true, Down: true}, entity.DirUp},
		{"all held", InputState{Left: true, Right: true, Up: true, Down: true}, entity.DirLeft},
		{"quit does not move", InputState{Quit: true}, entity.DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Direction())
		})
	}
}
