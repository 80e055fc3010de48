package mark

// DefaultCapacity is the size of the jump and change lists.
const DefaultCapacity = 100

// Ring is a fixed-capacity history of positions with a navigation cursor.
//
// Storage is allocated once. When the ring is full a push overwrites the
// oldest entry. After every push the cursor sits one past the newest
// entry, so the first Back returns the most recent position.
type Ring struct {
	entries  []Position
	capacity int
	start    int // index of oldest entry
	count    int // number of entries stored
	current  int // logical cursor in [0, count]
}

// NewRing creates a ring holding at most capacity positions.
// Capacity must be at least 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		entries:  make([]Position, capacity),
		capacity: capacity,
	}
}

// Push appends pos, evicting the oldest entry if the ring is full.
func (r *Ring) Push(pos Position) {
	if r.count < r.capacity {
		r.entries[(r.start+r.count)%r.capacity] = pos
		r.count++
	} else {
		r.entries[r.start] = pos
		r.start = (r.start + 1) % r.capacity
	}
	r.current = r.count
}

// Back moves the cursor one entry toward the oldest position and returns
// it. ok is false when the cursor is already at the oldest entry.
func (r *Ring) Back() (Position, bool) {
	if r.current == 0 {
		return Position{}, false
	}
	r.current--
	return r.at(r.current), true
}

// Forward moves the cursor one entry toward the newest position and
// returns it. ok is false when there is no newer entry.
func (r *Ring) Forward() (Position, bool) {
	if r.current+1 >= r.count {
		return Position{}, false
	}
	r.current++
	return r.at(r.current), true
}

// Len returns the number of stored positions.
func (r *Ring) Len() int {
	return r.count
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int {
	return r.capacity
}

// Current returns the cursor index.
func (r *Ring) Current() int {
	return r.current
}

// Entries returns the stored positions from oldest to newest.
func (r *Ring) Entries() []Position {
	result := make([]Position, r.count)
	for i := range result {
		result[i] = r.at(i)
	}
	return result
}

// Clear removes all entries without releasing storage.
func (r *Ring) Clear() {
	clear(r.entries)
	r.start, r.count, r.current = 0, 0, 0
}

func (r *Ring) at(i int) Position {
	return r.entries[(r.start+i)%r.capacity]
}
