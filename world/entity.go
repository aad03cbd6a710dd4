package world

// BlockEntity is a world object attached to a block position
// The set of variants is closed: *Monitor, *Turtle and *Generic
type BlockEntity interface {
	Pos() BlockPos
	blockEntity()
}

// Monitor is one block of a (possibly multi-block) monitor
// XIndex/YIndex locate this block inside the monitor; Width/Height are the whole monitor in blocks
type Monitor struct {
	At             BlockPos
	XIndex, YIndex int
	Width, Height  int
}

func (m *Monitor) Pos() BlockPos { return m.At }
func (*Monitor) blockEntity()    {}

// Turtle is a turtle block entity with up to one upgrade per side
type Turtle struct {
	At         BlockPos
	ComputerID int
	upgrades   [sideCount]*Upgrade
}

func (t *Turtle) Pos() BlockPos { return t.At }
func (*Turtle) blockEntity()    {}

// Upgrade returns the upgrade installed on side, nil if none
func (t *Turtle) Upgrade(side TurtleSide) *Upgrade {
	if !side.valid() {
		return nil
	}
	return t.upgrades[side]
}

// SetUpgrade installs u on side; nil removes the current upgrade
func (t *Turtle) SetUpgrade(side TurtleSide, u *Upgrade) {
	if !side.valid() {
		return
	}
	t.upgrades[side] = u
}

// Upgrade identifies an installed turtle upgrade
type Upgrade struct {
	ID string
}

// Generic is any other block entity; Kind is informational only
type Generic struct {
	At   BlockPos
	Kind string
}

func (g *Generic) Pos() BlockPos { return g.At }
func (*Generic) blockEntity()    {}

// Level resolves block entities in the loaded world
type Level interface {
	BlockEntity(pos BlockPos) (BlockEntity, bool)
}

// MapLevel is an in-memory Level keyed by position
type MapLevel map[BlockPos]BlockEntity

// Put stores e at its own position
func (l MapLevel) Put(e BlockEntity) {
	l[e.Pos()] = e
}

func (l MapLevel) BlockEntity(pos BlockPos) (BlockEntity, bool) {
	e, ok := l[pos]
	return e, ok
}
