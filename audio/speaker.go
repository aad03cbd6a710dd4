package audio

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gopxl/beep"
)

// resampleQuality matches beep's recommended default for realtime playback
const resampleQuality = 4

// Speaker is the client-side state of one speaker peripheral
type Speaker struct {
	id uuid.UUID

	mu      sync.Mutex // guards ctrl and channel, and every read of ctrl from the audio thread
	ctrl    *beep.Ctrl
	channel Channel
}

func newSpeaker(id uuid.UUID) *Speaker {
	return &Speaker{id: id}
}

// ID returns the speaker's instance id
func (s *Speaker) ID() uuid.UUID {
	return s.id
}

// Playing reports whether the speaker is bound to a channel and not paused
func (s *Speaker) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channel != nil && s.ctrl != nil && !s.ctrl.Paused
}

// playback is the streamer handed to a host channel
// The audio thread pulls samples through it under the speaker lock
type playback struct {
	s    *Speaker
	ctrl *beep.Ctrl
}

func (p *playback) Stream(samples [][2]float64) (int, bool) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	return p.ctrl.Stream(samples)
}

func (p *playback) Err() error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	return p.ctrl.Err()
}

// bind attaches stream to ch, resampling to the engine rate when they differ
// A previous channel is released first; channel calls are made without the lock held
func (s *Speaker) bind(engine Engine, ch Channel, stream *SpeakerStream) error {
	var src beep.Streamer = stream
	if engine != nil && stream.Rate > 0 {
		if target := engine.SampleRate(); target > 0 && target != stream.Rate {
			src = beep.Resample(resampleQuality, stream.Rate, target, stream)
		}
	}

	s.mu.Lock()
	prev := s.channel
	if s.ctrl != nil {
		s.ctrl.Paused = true
		s.ctrl.Streamer = nil
	}
	s.ctrl = &beep.Ctrl{Streamer: src}
	s.channel = ch
	p := &playback{s: s, ctrl: s.ctrl}
	s.mu.Unlock()

	var err error
	if prev != nil && prev != ch {
		err = prev.Stop()
	}
	ch.Attach(p)
	return err
}

// Stop pauses playback and releases the bound channel
func (s *Speaker) Stop() error {
	s.mu.Lock()
	if s.ctrl != nil {
		s.ctrl.Paused = true
		s.ctrl.Streamer = nil
		s.ctrl = nil
	}
	ch := s.channel
	s.channel = nil
	s.mu.Unlock()

	if ch == nil {
		return nil
	}
	return ch.Stop()
}
