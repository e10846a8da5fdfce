package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/geom"
)

func testBinding(kind BindingKind, name string) *Binding {
	return &Binding{
		ID:   uuid.New().String(),
		Name: name,
		Kind: kind,
		Region: geom.Rect{
			Origin: geom.Point{X: 100, Y: 200},
			Size:   geom.Size{Width: 300, Height: 150},
		},
		EnableTouch: true,
	}
}

func TestBindingRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Bindings()

	b := testBinding(KindTap, "launch-button")
	b.PluginName = "notifier"
	b.ActionName = "notify"

	if err := repo.Create(b); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(b.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.Name != "launch-button" || got.Kind != KindTap {
		t.Errorf("got name=%q kind=%q, want launch-button/tap", got.Name, got.Kind)
	}
	if got.Region != b.Region {
		t.Errorf("Region = %+v, want %+v", got.Region, b.Region)
	}
	if !got.EnableTouch || got.AllowTouchDrag {
		t.Errorf("toggles = (%v, %v), want (true, false)", got.EnableTouch, got.AllowTouchDrag)
	}
	if got.PluginName != "notifier" || got.ActionName != "notify" {
		t.Errorf("plugin action = %q/%q, want notifier/notify", got.PluginName, got.ActionName)
	}
}

func TestBindingRepository_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Bindings().GetByID("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestBindingRepository_List(t *testing.T) {
	s := newTestStore(t)
	repo := s.Bindings()

	for i, kind := range []BindingKind{KindTap, KindDrag, KindDraw} {
		b := testBinding(kind, string(kind)+"-binding")
		if err := repo.Create(b); err != nil {
			t.Fatalf("Create(%d) error = %v", i, err)
		}
	}

	bindings, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(bindings) != 3 {
		t.Fatalf("List() returned %d bindings, want 3", len(bindings))
	}
}

func TestBindingRepository_Update(t *testing.T) {
	s := newTestStore(t)
	repo := s.Bindings()

	b := testBinding(KindDrag, "panel")
	b.AllowTouchDrag = false
	if err := repo.Create(b); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	b.AllowTouchDrag = true
	b.Region.Origin = geom.Point{X: 0, Y: 0}
	if err := repo.Update(b); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(b.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.AllowTouchDrag {
		t.Error("AllowTouchDrag not persisted by Update")
	}
	if got.Region.Origin.X != 0 || got.Region.Origin.Y != 0 {
		t.Errorf("Region.Origin = %+v, want (0, 0)", got.Region.Origin)
	}
}

func TestBindingRepository_UpdateMissing(t *testing.T) {
	s := newTestStore(t)

	b := testBinding(KindTap, "ghost")
	if err := s.Bindings().Update(b); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestBindingRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Bindings()

	b := testBinding(KindDraw, "canvas")
	if err := repo.Create(b); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(b.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}

func TestBindingRepository_RejectsInvalidKind(t *testing.T) {
	s := newTestStore(t)

	b := testBinding("pinchzoom", "bad")
	if err := s.Bindings().Create(b); err == nil {
		t.Error("Create() with unknown kind should fail the CHECK constraint")
	}
}

func TestBindingKind_Valid(t *testing.T) {
	for _, kind := range []BindingKind{KindTap, KindDrag, KindDraw} {
		if !kind.Valid() {
			t.Errorf("%q should be valid", kind)
		}
	}
	if BindingKind("swipe").Valid() {
		t.Error("\"swipe\" should not be valid")
	}
}
