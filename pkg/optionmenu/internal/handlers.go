package internal

import "sync"

// Handlers is a list of callbacks that can be removed individually. Fire
// runs a snapshot, so handlers may unsubscribe themselves (or others) while
// being called.
type Handlers[T any] struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func(T)
	order  []int
}

// Add registers fn and returns a function that removes it. The returned
// function is safe to call more than once.
func (h *Handlers[T]) Add(fn func(T)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fns == nil {
		h.fns = make(map[int]func(T))
	}
	id := h.nextID
	h.nextID++
	h.fns[id] = fn
	h.order = append(h.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Handlers[T]) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.fns, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered handlers.
func (h *Handlers[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.order)
}

// Fire calls every handler registered at the time of the call, in
// registration order, skipping any removed in the meantime.
func (h *Handlers[T]) Fire(v T) {
	h.mu.Lock()
	ids := append([]int(nil), h.order...)
	h.mu.Unlock()

	for _, id := range ids {
		h.mu.Lock()
		fn, ok := h.fns[id]
		h.mu.Unlock()
		if ok {
			fn(v)
		}
	}
}
