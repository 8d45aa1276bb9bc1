package scene

// Handle is a stable reference to a source slot. Handles survive removal of
// other sources; a generation counter invalidates handles to freed slots.
type Handle struct {
	index      int
	generation uint64
}

type slot struct {
	src        *Source
	generation uint64
}

// arena stores sources in reusable slots while preserving creation order for
// iteration. Append-only collections cannot support removal without
// invalidating other references; the arena can.
type arena struct {
	slots []slot
	free  []int
	order []Handle
}

func (a *arena) insert(src *Source) Handle {
	var index int

	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		index = len(a.slots) - 1
	}

	a.slots[index].generation++
	a.slots[index].src = src

	h := Handle{index: index, generation: a.slots[index].generation}
	a.order = append(a.order, h)

	return h
}

func (a *arena) get(h Handle) (*Source, bool) {
	if h.index < 0 || h.index >= len(a.slots) {
		return nil, false
	}

	s := a.slots[h.index]
	if s.src == nil || s.generation != h.generation {
		return nil, false
	}

	return s.src, true
}

func (a *arena) remove(h Handle) bool {
	if _, ok := a.get(h); !ok {
		return false
	}

	a.slots[h.index].src = nil
	a.free = append(a.free, h.index)

	for i, oh := range a.order {
		if oh == h {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}

	return true
}

// forEach visits live sources in creation order.
func (a *arena) forEach(fn func(*Source)) {
	for _, h := range a.order {
		if src, ok := a.get(h); ok {
			fn(src)
		}
	}
}

func (a *arena) len() int {
	return len(a.order)
}
