package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/portalknight/internal/application/session"
	"github.com/younwookim/portalknight/internal/application/state"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Level == "" {
		return nil, fmt.Errorf("failed to decode replay: no level recorded")
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (session.Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return session.Input{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return session.Input{
		Left:   fi.L,
		Right:  fi.R,
		Up:     fi.U,
		Down:   fi.D,
		Quit:   fi.Q,
		Click:  fi.MC,
		MouseX: fi.MX,
		MouseY: fi.MY,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the recorded level file name
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run feeds every recorded frame into the session until the frames run out
// or the session ends. It returns the last outcome.
func Run(s *session.Session, r *Replayer) state.Outcome {
	outcome := s.State().Outcome()
	for outcome == state.Continue {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		outcome = s.Tick(in)
	}
	return outcome
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(level string, frames int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
