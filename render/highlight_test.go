package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cchooks/event"
	"github.com/lixenwraith/cchooks/world"
)

// countingHighlight reports a fixed result and counts invocations
type countingHighlight struct {
	draws bool
	calls int
}

func (c *countingHighlight) DrawHighlight(event.DrawHighlight) bool {
	c.calls++
	return c.draws
}

func hitEvent() event.DrawHighlight {
	return event.DrawHighlight{Hit: world.BlockHit(world.BlockPos{X: 1, Y: 2, Z: 3})}
}

func TestHighlightChain_FirstMatchWins(t *testing.T) {
	cable := &countingHighlight{draws: true}
	monitor := &countingHighlight{draws: true}
	chain := NewHighlightChain().Append(HighlightCable, cable).Append(HighlightMonitor, monitor)

	by, drawn := chain.Draw(hitEvent())

	assert.True(t, drawn)
	assert.Equal(t, HighlightCable, by)
	assert.Equal(t, 1, cable.calls)
	assert.Zero(t, monitor.calls, "later stage must not run once an earlier one drew")
}

func TestHighlightChain_FallsThrough(t *testing.T) {
	cable := &countingHighlight{}
	monitor := &countingHighlight{draws: true}
	chain := NewHighlightChain().Append(HighlightCable, cable).Append(HighlightMonitor, monitor)

	by, drawn := chain.Draw(hitEvent())

	assert.True(t, drawn)
	assert.Equal(t, HighlightMonitor, by)
	assert.Equal(t, 1, cable.calls)
	assert.Equal(t, 1, monitor.calls)
}

func TestHighlightChain_NoneDraw(t *testing.T) {
	cable := &countingHighlight{}
	monitor := &countingHighlight{}
	chain := NewHighlightChain().Append(HighlightCable, cable).Append(HighlightMonitor, monitor)

	_, drawn := chain.Draw(hitEvent())

	assert.False(t, drawn)
	assert.Equal(t, 1, cable.calls)
	assert.Equal(t, 1, monitor.calls)
}

func TestHighlightChain_NilAndEmpty(t *testing.T) {
	var nilChain *HighlightChain
	_, drawn := nilChain.Draw(hitEvent())
	assert.False(t, drawn)
	assert.Zero(t, nilChain.Len())

	chain := NewHighlightChain().Append("ignored", nil)
	assert.Zero(t, chain.Len())
	_, drawn = chain.Draw(hitEvent())
	assert.False(t, drawn)
}

func TestRegistry_ChainFollowsConfiguredOrder(t *testing.T) {
	reg := NewRegistry()
	cable := &countingHighlight{draws: true}
	monitor := &countingHighlight{draws: true}
	reg.RegisterHighlight(HighlightCable, cable)
	reg.RegisterHighlight(HighlightMonitor, monitor)

	def, err := reg.Chain(DefaultHighlightOrder)
	require.NoError(t, err)
	assert.Equal(t, []string{"cable", "monitor"}, def.Names())

	reversed, err := reg.Chain([]string{HighlightMonitor, HighlightCable})
	require.NoError(t, err)
	by, _ := reversed.Draw(hitEvent())
	assert.Equal(t, HighlightMonitor, by)
	assert.Zero(t, cable.calls)
}

func TestRegistry_ChainErrors(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterHighlight(HighlightCable, HighlightFunc(func(event.DrawHighlight) bool { return false }))

	_, err := reg.Chain([]string{HighlightCable, "laser"})
	assert.ErrorIs(t, err, ErrUnknownRenderer)

	_, err = reg.Chain([]string{HighlightCable, HighlightCable})
	assert.ErrorIs(t, err, ErrDuplicateRenderer)

	assert.Equal(t, []string{HighlightCable}, reg.HighlightNames())
}
