package audio

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gopxl/beep"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lixenwraith/cchooks/core"
)

// Registry tracks the client speakers of one session and binds
// host playback channels to their streams
type Registry struct {
	mu       sync.Mutex
	speakers map[uuid.UUID]*Speaker
	log      *zap.Logger
}

// NewRegistry creates an empty speaker registry
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		speakers: make(map[uuid.UUID]*Speaker),
		log:      log,
	}
}

// Name implements service.Registry
func (r *Registry) Name() string {
	return "speakers"
}

// Speaker returns the speaker for id, creating it on first use
func (r *Registry) Speaker(id uuid.UUID) *Speaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sp, ok := r.speakers[id]; ok {
		return sp
	}
	sp := newSpeaker(id)
	r.speakers[id] = sp
	return sp
}

// Lookup returns the speaker for id without creating it
func (r *Registry) Lookup(id uuid.UUID) (*Speaker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sp, ok := r.speakers[id]
	return sp, ok
}

// Remove stops and forgets the speaker for id
func (r *Registry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	sp, ok := r.speakers[id]
	delete(r.speakers, id)
	r.mu.Unlock()

	if !ok {
		return nil
	}
	return sp.Stop()
}

// Len returns the number of tracked speakers
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.speakers)
}

// OnPlayStreaming binds ch to the owning speaker when stream is a *SpeakerStream
// Streams of any other type, or for unknown speakers, are left to the host
// Returns true if the stream was bound
func (r *Registry) OnPlayStreaming(engine Engine, ch Channel, stream beep.Streamer) bool {
	ss, ok := stream.(*SpeakerStream)
	if !ok || ch == nil {
		return false
	}

	sp, ok := r.Lookup(ss.Speaker)
	if !ok {
		return false
	}

	if err := sp.bind(engine, ch, ss); err != nil {
		r.log.Debug("previous speaker channel failed to stop",
			zap.Stringer("speaker", ss.Speaker), zap.Error(err))
	}
	return true
}

// Reset stops every speaker and empties the registry
// Each speaker is stopped in isolation; failures are combined
func (r *Registry) Reset() error {
	r.mu.Lock()
	speakers := r.speakers
	r.speakers = make(map[uuid.UUID]*Speaker)
	r.mu.Unlock()

	var errs error
	for id, sp := range speakers {
		if err := core.Guard(sp.Stop); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("speaker %s: %w", id, err))
		}
	}
	return errs
}
