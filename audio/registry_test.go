package audio

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type fakeEngine struct{ rate beep.SampleRate }

func (e fakeEngine) SampleRate() beep.SampleRate { return e.rate }

type fakeChannel struct {
	attached []beep.Streamer
	stops    int
	stopErr  error
}

func (c *fakeChannel) Attach(s beep.Streamer) { c.attached = append(c.attached, s) }

func (c *fakeChannel) Stop() error {
	c.stops++
	return c.stopErr
}

func speakerStream(t *testing.T, id uuid.UUID, rate beep.SampleRate) *SpeakerStream {
	t.Helper()
	tone, err := generators.SineTone(rate, 440)
	require.NoError(t, err)
	return &SpeakerStream{Speaker: id, Rate: rate, Source: tone}
}

func TestOnPlayStreaming_BindsSpeakerStream(t *testing.T) {
	r := NewRegistry(nil)
	id := uuid.New()
	sp := r.Speaker(id)
	ch := &fakeChannel{}

	bound := r.OnPlayStreaming(fakeEngine{rate: 48000}, ch, speakerStream(t, id, 48000))

	assert.True(t, bound)
	require.Len(t, ch.attached, 1)
	pb, ok := ch.attached[0].(*playback)
	require.True(t, ok)
	_, isSpeakerStream := pb.ctrl.Streamer.(*SpeakerStream)
	assert.True(t, isSpeakerStream, "matching rates play the stream directly")
	assert.True(t, sp.Playing())

	samples := make([][2]float64, 64)
	n, ok := ch.attached[0].Stream(samples)
	assert.Equal(t, 64, n)
	assert.True(t, ok)
}

func TestOnPlayStreaming_ResamplesToEngineRate(t *testing.T) {
	r := NewRegistry(nil)
	id := uuid.New()
	r.Speaker(id)
	ch := &fakeChannel{}

	require.True(t, r.OnPlayStreaming(fakeEngine{rate: 44100}, ch, speakerStream(t, id, 48000)))

	pb := ch.attached[0].(*playback)
	_, resampled := pb.ctrl.Streamer.(*beep.Resampler)
	assert.True(t, resampled)
}

func TestOnPlayStreaming_IgnoresForeignStreams(t *testing.T) {
	r := NewRegistry(nil)
	id := uuid.New()
	r.Speaker(id)
	ch := &fakeChannel{}

	assert.False(t, r.OnPlayStreaming(fakeEngine{rate: 48000}, ch, beep.Silence(10)))
	assert.False(t, r.OnPlayStreaming(fakeEngine{rate: 48000}, ch, speakerStream(t, uuid.New(), 48000)), "unknown speaker")
	assert.False(t, r.OnPlayStreaming(fakeEngine{rate: 48000}, nil, speakerStream(t, id, 48000)), "nil channel")
	assert.Empty(t, ch.attached)
}

func TestOnPlayStreaming_RebindReleasesPreviousChannel(t *testing.T) {
	r := NewRegistry(nil)
	id := uuid.New()
	r.Speaker(id)
	first, second := &fakeChannel{}, &fakeChannel{}

	require.True(t, r.OnPlayStreaming(nil, first, speakerStream(t, id, 48000)))
	require.True(t, r.OnPlayStreaming(nil, second, speakerStream(t, id, 48000)))

	assert.Equal(t, 1, first.stops)
	assert.Zero(t, second.stops)
}

func TestRemove(t *testing.T) {
	r := NewRegistry(nil)
	id := uuid.New()
	r.Speaker(id)
	ch := &fakeChannel{}
	require.True(t, r.OnPlayStreaming(nil, ch, speakerStream(t, id, 48000)))

	require.NoError(t, r.Remove(id))
	assert.Equal(t, 1, ch.stops)
	_, ok := r.Lookup(id)
	assert.False(t, ok)
	assert.NoError(t, r.Remove(id), "removing twice is a no-op")
}

func TestReset_StopsEverySpeaker(t *testing.T) {
	r := NewRegistry(nil)
	channels := []*fakeChannel{{stopErr: errors.New("gone")}, {}, {stopErr: errors.New("also gone")}}
	for _, ch := range channels {
		id := uuid.New()
		r.Speaker(id)
		require.True(t, r.OnPlayStreaming(nil, ch, speakerStream(t, id, 48000)))
	}
	idle := r.Speaker(uuid.New())

	err := r.Reset()

	assert.Len(t, multierr.Errors(err), 2)
	for _, ch := range channels {
		assert.Equal(t, 1, ch.stops)
	}
	assert.False(t, idle.Playing())
	assert.Zero(t, r.Len())
	assert.NoError(t, r.Reset())
}

func TestSpeakerStream_NilSource(t *testing.T) {
	s := &SpeakerStream{}
	n, ok := s.Stream(make([][2]float64, 4))
	assert.Zero(t, n)
	assert.False(t, ok)
	assert.NoError(t, s.Err())
}

func TestSpeakerGetOrCreate(t *testing.T) {
	r := NewRegistry(nil)
	id := uuid.New()
	assert.Same(t, r.Speaker(id), r.Speaker(id))
	assert.Equal(t, id, r.Speaker(id).ID())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "speakers", r.Name())
}

func TestReset_WhileAudioThreadStreams(t *testing.T) {
	r := NewRegistry(nil)
	id := uuid.New()
	r.Speaker(id)
	ch := &fakeChannel{}
	require.True(t, r.OnPlayStreaming(nil, ch, speakerStream(t, id, 48000)))
	stream := ch.attached[0]

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		samples := make([][2]float64, 32)
		for i := 0; i < 1000; i++ {
			if _, ok := stream.Stream(samples); !ok {
				return
			}
			_ = stream.Err()
		}
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, r.Reset())
	}()
	wg.Wait()

	n, ok := stream.Stream(make([][2]float64, 8))
	assert.Zero(t, n, "released stream produces nothing")
	assert.False(t, ok)
}

func TestRebind_OldChannelGoesSilent(t *testing.T) {
	r := NewRegistry(nil)
	id := uuid.New()
	r.Speaker(id)
	first, second := &fakeChannel{}, &fakeChannel{}
	require.True(t, r.OnPlayStreaming(nil, first, speakerStream(t, id, 48000)))
	require.True(t, r.OnPlayStreaming(nil, second, speakerStream(t, id, 48000)))

	n, ok := first.attached[0].Stream(make([][2]float64, 8))
	assert.Zero(t, n)
	assert.False(t, ok)

	n, ok = second.attached[0].Stream(make([][2]float64, 8))
	assert.Equal(t, 8, n)
	assert.True(t, ok)
}
