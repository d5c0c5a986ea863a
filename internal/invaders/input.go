package invaders

// Key is a logical game key, independent of the physical keyboard binding.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Input is a snapshot of the keyboard for one frame.
type Input interface {
	// KeyDown reports whether the logical key is currently held.
	KeyDown(k Key) bool
	// KeyCount returns how many physical keys are held. Controllers compare it
	// across frames to detect a fresh press.
	KeyCount() int
}

// KeySet is an Input backed by a fixed set of held keys. KeyCount is the
// number of held logical keys plus Extra, which stands in for keys that have
// no logical meaning.
type KeySet struct {
	Held  map[Key]bool
	Extra int
}

// Keys returns a KeySet holding the given keys.
func Keys(held ...Key) KeySet {
	ks := KeySet{Held: make(map[Key]bool, len(held))}
	for _, k := range held {
		ks.Held[k] = true
	}
	return ks
}

// KeyDown implements Input.
func (ks KeySet) KeyDown(k Key) bool { return ks.Held[k] }

// KeyCount implements Input.
func (ks KeySet) KeyCount() int {
	n := ks.Extra
	for _, down := range ks.Held {
		if down {
			n++
		}
	}
	return n
}
