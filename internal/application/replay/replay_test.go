package replay

import (
	"image"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalknight/internal/application/session"
	"github.com/younwookim/portalknight/internal/application/state"
	"github.com/younwookim/portalknight/internal/application/system"
	"github.com/younwookim/portalknight/internal/domain/anim"
	"github.com/younwookim/portalknight/internal/domain/entity"
)

type solidSprites struct{}

func (solidSprites) Sprite(entity.Kind) *anim.Animator {
	img := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return anim.Static(img)
}

func createTestSession(level string) *session.Session {
	grid := entity.ParseText(level)
	cfg := session.Config{
		ScreenWidth:  grid.Width * 50,
		ScreenHeight: grid.Height*50 + 50,
		UIMargin:     50,
		Spawn:        system.SpawnOptions{TileSize: 50, PlayerSpeed: 50, Patrols: system.DefaultPatrols()},
	}
	return session.New(cfg, grid, solidSprites{}, session.Deps{Logger: log.New(io.Discard)})
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Level:   "level1.txt",
		Frames: []FrameInput{
			{F: 0, L: true, MX: 100, MY: 100},
			{F: 1, R: true, U: true, MX: 110, MY: 95, MC: true},
			{F: 2, Q: true},
		},
	}

	replayer := NewReplayer(data)
	assert.Equal(t, "level1.txt", replayer.Level())

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)
	assert.Equal(t, 100, input.MouseX)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Right)
	assert.True(t, input.Up)
	assert.True(t, input.Click)
	assert.Equal(t, 95, input.MouseY)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Quit)

	_, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData("test", 3))

	for i := 0; i < 3; i++ {
		_, ok := replayer.GetInput()
		require.True(t, ok)
	}
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	_, ok = replayer.GetInput()
	assert.True(t, ok)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData("level2.txt", 60)

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, "level2.txt", data.Level)
	assert.Len(t, data.Frames, 60)
	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "frame number mismatch at index %d", i)
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder("level3.txt", 2, true)
	require.True(t, rec.IsRecording())

	rec.RecordFrame(session.Input{Right: true})
	rec.RecordFrame(session.Input{Click: true, MouseX: 7, MouseY: 9})
	rec.Stop()
	rec.RecordFrame(session.Input{Left: true})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	data := rec.GetData()
	assert.Equal(t, "level3.txt", data.Level)
	assert.Equal(t, 2, data.Index)
	assert.True(t, data.Sound)
	assert.Equal(t, FrameInput{F: 1, MX: 7, MY: 9, MC: true}, data.Frames[1])
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), GenerateFilename(0))

	rec := NewRecorder("level1.txt", 0, false)
	rec.RecordFrame(session.Input{Down: true})
	rec.RecordFrame(session.Input{Quit: true})
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.GetData().Frames, data.Frames)
	assert.Equal(t, "level1.txt", data.Level)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("level1.txt", 0, false)

	assert.Error(t, rec.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRun_Deterministic(t *testing.T) {
	level := "@..\n.#.\n../"
	moves := []session.Input{{Right: true}, {Right: true}, {Down: true}, {Down: true}}

	// record a live run
	live := createTestSession(level)
	rec := NewRecorder("inline", 0, false)
	var liveOutcome state.Outcome
	for _, in := range moves {
		rec.RecordFrame(in)
		if liveOutcome = live.Tick(in); liveOutcome != state.Continue {
			break
		}
	}

	replayed := createTestSession(level)
	outcome := Run(replayed, NewReplayer(rec.GetData()))

	assert.Equal(t, liveOutcome, outcome)
	assert.Equal(t, live.Result(), replayed.Result())
	lx, ly := live.PlayerPosition()
	rx, ry := replayed.PlayerPosition()
	assert.Equal(t, lx, rx)
	assert.Equal(t, ly, ry)
}

func TestRun_StopsAtTerminal(t *testing.T) {
	s := createTestSession("@/.")
	data := CreateTestReplayData("inline", 10)
	data.Frames[0].R = true
	r := NewReplayer(data)

	outcome := Run(s, r)

	assert.Equal(t, state.Passed, outcome)
	assert.Equal(t, 1, r.CurrentFrame(), "remaining frames are not consumed")
}

func TestRun_FramesRunOut(t *testing.T) {
	s := createTestSession("@.........")
	r := NewReplayer(CreateTestReplayData("inline", 5))

	assert.Equal(t, state.Continue, Run(s, r))
	assert.Equal(t, 5, s.Result().Ticks)
}
