package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base identidad y marcas de tiempo comunes a todas las entidades.
// Se embebe por composición; todo método que cambie estado debe llamar Touch().
type Base struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBase genera una identidad nueva con timestamps actuales.
func NewBase() Base {
	now := time.Now()
	return Base{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
}

// NewBaseWithID reconstruye la identidad desde persistencia.
func NewBaseWithID(id string, createdAt, updatedAt time.Time) Base {
	return Base{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt}
}

// Touch actualiza la marca de modificación.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now()
}
