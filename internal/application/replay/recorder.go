package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/portalknight/internal/application/session"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for one attempt at a level
func NewRecorder(level string, index int, sound bool) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Level:     level,
			Index:     index,
			Sound:     sound,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3000), // Pre-allocate for ~1 minute at 50 TPS
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input session.Input) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  r.frame,
		L:  input.Left,
		R:  input.Right,
		U:  input.Up,
		D:  input.Down,
		Q:  input.Quit,
		MX: input.MouseX,
		MY: input.MouseY,
		MC: input.Click,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time and level
func GenerateFilename(index int) string {
	return fmt.Sprintf("replay_L%d_%s.json", index+1, time.Now().Format("20060102_150405"))
}
