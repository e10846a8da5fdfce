package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/ayusman/mudra/internal/geom"
)

// BindingKind identifies which interaction a binding drives.
type BindingKind string

const (
	KindTap  BindingKind = "tap"
	KindDrag BindingKind = "drag"
	KindDraw BindingKind = "draw"
)

// Valid reports whether the kind is one of the known interactions.
func (k BindingKind) Valid() bool {
	switch k {
	case KindTap, KindDrag, KindDraw:
		return true
	}
	return false
}

// Binding is a persisted interaction binding: which gesture state
// machine to run, the screen region it is scoped to, its touch
// toggles, and an optional plugin action fired on tap.
type Binding struct {
	ID             string
	Name           string
	Kind           BindingKind
	Region         geom.Rect
	EnableTouch    bool
	AllowTouchDrag bool
	PluginName     string
	ActionName     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BindingRepository provides CRUD operations for bindings.
type BindingRepository struct {
	db *sql.DB
}

// Bindings returns the binding repository for this store.
func (s *Store) Bindings() *BindingRepository {
	return &BindingRepository{db: s.db}
}

// Create inserts a new binding into the database.
func (r *BindingRepository) Create(b *Binding) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO bindings
		 (id, name, kind, region_x, region_y, region_w, region_h,
		  enable_touch, allow_touch_drag, plugin_name, action_name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, string(b.Kind),
		b.Region.Origin.X, b.Region.Origin.Y, b.Region.Size.Width, b.Region.Size.Height,
		b.EnableTouch, b.AllowTouchDrag, b.PluginName, b.ActionName, b.CreatedAt, b.UpdatedAt,
	)
	return err
}

// GetByID retrieves a binding by its ID.
func (r *BindingRepository) GetByID(id string) (*Binding, error) {
	row := r.db.QueryRow(
		`SELECT id, name, kind, region_x, region_y, region_w, region_h,
		        enable_touch, allow_touch_drag, plugin_name, action_name, created_at, updated_at
		 FROM bindings WHERE id = ?`,
		id,
	)
	return scanBinding(row)
}

// List retrieves all bindings ordered by creation time.
func (r *BindingRepository) List() ([]*Binding, error) {
	rows, err := r.db.Query(
		`SELECT id, name, kind, region_x, region_y, region_w, region_h,
		        enable_touch, allow_touch_drag, plugin_name, action_name, created_at, updated_at
		 FROM bindings ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bindings []*Binding
	for rows.Next() {
		b, err := scanBinding(rows)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bindings, nil
}

// Update rewrites a binding's mutable fields.
func (r *BindingRepository) Update(b *Binding) error {
	b.UpdatedAt = time.Now()

	res, err := r.db.Exec(
		`UPDATE bindings SET
		   name = ?, kind = ?, region_x = ?, region_y = ?, region_w = ?, region_h = ?,
		   enable_touch = ?, allow_touch_drag = ?, plugin_name = ?, action_name = ?, updated_at = ?
		 WHERE id = ?`,
		b.Name, string(b.Kind),
		b.Region.Origin.X, b.Region.Origin.Y, b.Region.Size.Width, b.Region.Size.Height,
		b.EnableTouch, b.AllowTouchDrag, b.PluginName, b.ActionName, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a binding by its ID.
func (r *BindingRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM bindings WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBinding(row scanner) (*Binding, error) {
	b := &Binding{}
	var kind string
	var enableTouch, allowTouchDrag int

	err := row.Scan(
		&b.ID, &b.Name, &kind,
		&b.Region.Origin.X, &b.Region.Origin.Y, &b.Region.Size.Width, &b.Region.Size.Height,
		&enableTouch, &allowTouchDrag, &b.PluginName, &b.ActionName, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	b.Kind = BindingKind(kind)
	b.EnableTouch = enableTouch != 0
	b.AllowTouchDrag = allowTouchDrag != 0
	return b, nil
}
