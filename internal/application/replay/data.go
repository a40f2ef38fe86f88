// Package replay records and plays back per-tick session input.
//
// A session is fully deterministic given its level and input sequence, so a
// replay file only stores which level was played and one FrameInput per tick.
package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	Q  bool `json:"q,omitempty"`  // Quit
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	MC bool `json:"mc,omitempty"` // MouseClick
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"` // level file name
	Index     int          `json:"index"` // position in the level list
	Sound     bool         `json:"sound"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
