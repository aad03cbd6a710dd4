package audio

import (
	"github.com/google/uuid"
	"github.com/gopxl/beep"
)

// Engine is the host sound engine a stream is played on
type Engine interface {
	SampleRate() beep.SampleRate
}

// Channel is a host playback channel
// Attach hands a streamer to the channel; Stop releases the channel
type Channel interface {
	Attach(s beep.Streamer)
	Stop() error
}

// SpeakerStream is a decoded audio stream produced for one speaker
// The host plays it like any other stream; the registry recognizes it by type
type SpeakerStream struct {
	Speaker uuid.UUID
	Rate    beep.SampleRate
	Source  beep.Streamer
}

// Stream implements beep.Streamer
func (s *SpeakerStream) Stream(samples [][2]float64) (int, bool) {
	if s.Source == nil {
		return 0, false
	}
	return s.Source.Stream(samples)
}

// Err implements beep.Streamer
func (s *SpeakerStream) Err() error {
	if s.Source == nil {
		return nil
	}
	return s.Source.Err()
}
