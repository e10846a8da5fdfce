package pose

import (
	"testing"

	"github.com/ayusman/mudra/internal/geom"
)

func TestSignal_PublishNotifiesSubscribersInOrder(t *testing.T) {
	signal := NewSignal()

	var order []int
	signal.Subscribe(func(State) { order = append(order, 1) })
	signal.Subscribe(func(State) { order = append(order, 2) })
	signal.Subscribe(func(State) { order = append(order, 3) })

	p := geom.Point{X: 10, Y: 20}
	signal.Publish(State{Pointer: &p, Pinch: true})

	if len(order) != 3 {
		t.Fatalf("got %d notifications, want 3", len(order))
	}
	for i, got := range order {
		if got != i+1 {
			t.Errorf("notification %d was subscriber %d, want %d", i, got, i+1)
		}
	}
}

func TestSignal_SubscriberSeesAtomicState(t *testing.T) {
	signal := NewSignal()

	var seen []State
	signal.Subscribe(func(s State) { seen = append(seen, s) })

	p := geom.Point{X: 5, Y: 5}
	signal.Publish(State{Pointer: &p, Pinch: true})
	signal.Publish(State{})

	if len(seen) != 2 {
		t.Fatalf("got %d states, want 2", len(seen))
	}

	// Pointer and pinch arrive as one value; a pinch never appears
	// without its pointer
	if seen[0].Pointer == nil || !seen[0].Pinch {
		t.Errorf("first state = %+v, want pointer with pinch", seen[0])
	}
	if seen[1].Pointer != nil || seen[1].Pinch {
		t.Errorf("second state = %+v, want empty", seen[1])
	}
}

func TestSignal_NilPointerForcesPinchOff(t *testing.T) {
	signal := NewSignal()

	// A caller can never put the signal into the invalid
	// pinch-without-pointer state
	signal.Publish(State{Pointer: nil, Pinch: true})

	got := signal.Snapshot()
	if got.Pinch {
		t.Error("Pinch = true with nil pointer, want false")
	}
}

func TestSignal_Snapshot(t *testing.T) {
	signal := NewSignal()

	// Initial state is no pointer
	if s := signal.Snapshot(); s.Pointer != nil || s.Pinch {
		t.Errorf("initial state = %+v, want empty", s)
	}

	p := geom.Point{X: 100, Y: 50}
	signal.Publish(State{Pointer: &p, Pinch: true})

	got := signal.Snapshot()
	if got.Pointer == nil || got.Pointer.X != 100 || got.Pointer.Y != 50 {
		t.Errorf("Pointer = %v, want (100, 50)", got.Pointer)
	}
	if !got.Pinch {
		t.Error("Pinch = false, want true")
	}
}

func TestSignal_NilSubscriberIgnored(t *testing.T) {
	signal := NewSignal()
	signal.Subscribe(nil)

	// Publishing must not panic
	signal.Publish(State{})
}
