package command

// ColorID is a slot in the renderer's fixed palette.
type ColorID int

// NoColor marks a stage that highlights nothing.
const NoColor ColorID = -1

// ColorAllocator hands out palette slots to highlighting stages at pipeline
// construction time, in stage order. Same stage order, same assignment:
// output is reproducible across runs. Once the palette is exhausted the
// allocator wraps around and reuses colors.
type ColorAllocator struct {
	next int
	size int
}

// NewColorAllocator creates an allocator over a palette of size slots.
func NewColorAllocator(size int) *ColorAllocator {
	if size < 1 {
		size = 1
	}
	return &ColorAllocator{size: size}
}

// Allocate returns the next palette slot.
func (a *ColorAllocator) Allocate() ColorID {
	id := ColorID(a.next % a.size)
	a.next++
	return id
}
