package pocket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCache_GetOrCreateStartsWithLightOff(t *testing.T) {
	c := NewCache()
	id := uuid.New()

	pc := c.GetOrCreate(id)

	assert.Same(t, pc, c.GetOrCreate(id))
	assert.Equal(t, id, pc.Instance())
	assert.Equal(t, NoLight, pc.State().Light)
}

func TestComputer_Update(t *testing.T) {
	pc := NewCache().GetOrCreate(uuid.New())
	pc.Update(State{ComputerID: 5, Label: "miner", On: true, Light: 0xF0C000})

	assert.Equal(t, State{ComputerID: 5, Label: "miner", On: true, Light: 0xF0C000}, pc.State())
}

func TestCache_RemoveAndReset(t *testing.T) {
	c := NewCache()
	a, b := uuid.New(), uuid.New()
	c.GetOrCreate(a)
	c.GetOrCreate(b)

	c.Remove(a)
	_, ok := c.Get(a)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	assert.NoError(t, c.Reset())
	assert.Zero(t, c.Len())
	assert.Equal(t, "pocket computers", c.Name())
}
