package world

// ItemKind is the item class relevant to custom first-person and frame rendering
type ItemKind int

const (
	ItemOther ItemKind = iota
	ItemPocketComputer
	ItemPrintout
)

func (k ItemKind) String() string {
	switch k {
	case ItemPocketComputer:
		return "pocket_computer"
	case ItemPrintout:
		return "printout"
	default:
		return "other"
	}
}

// Item is an item type
type Item struct {
	ID   string
	Kind ItemKind
}

// ItemStack is a quantity of one item
type ItemStack struct {
	Item  Item
	Count int
}

// Empty reports whether the stack holds nothing
func (s ItemStack) Empty() bool {
	return s.Count <= 0 || s.Item.ID == ""
}

// Hand selects which hand holds an item
type Hand int

const (
	MainHand Hand = iota
	OffHand
)

func (h Hand) String() string {
	if h == OffHand {
		return "off_hand"
	}
	return "main_hand"
}

// ItemFrame is an item frame entity displaying a stack
type ItemFrame struct {
	EntityID int
	At       BlockPos
	Rotation int
}
