package internal

import (
	"reflect"
	"testing"
)

func TestHandlersFireInOrder(t *testing.T) {
	var h Handlers[int]
	var got []string

	h.Add(func(v int) { got = append(got, "a") })
	h.Add(func(v int) { got = append(got, "b") })
	h.Fire(1)

	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("order = %v", got)
	}
}

func TestHandlersUnsubscribe(t *testing.T) {
	var h Handlers[struct{}]
	calls := 0

	remove := h.Add(func(struct{}) { calls++ })
	remove()
	remove()
	h.Fire(struct{}{})

	if calls != 0 || h.Len() != 0 {
		t.Fatalf("calls = %d len = %d after unsubscribe", calls, h.Len())
	}
}

func TestHandlersRemoveDuringFire(t *testing.T) {
	var h Handlers[struct{}]
	var removeSecond func()
	first, second := 0, 0

	h.Add(func(struct{}) {
		first++
		removeSecond()
	})
	removeSecond = h.Add(func(struct{}) { second++ })

	h.Fire(struct{}{})
	h.Fire(struct{}{})

	if first != 2 || second != 0 {
		t.Fatalf("first = %d second = %d, want 2 and 0", first, second)
	}
}

func TestHandlersAddDuringFire(t *testing.T) {
	var h Handlers[struct{}]
	added := 0

	h.Add(func(struct{}) {
		h.Add(func(struct{}) { added++ })
	})
	h.Fire(struct{}{})

	if added != 0 {
		t.Fatalf("handler added during Fire ran in the same Fire")
	}
	if h.Len() != 2 {
		t.Fatalf("len = %d, want 2", h.Len())
	}
}
