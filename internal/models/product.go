package models

import "time"

// Product represents one stocked variant: a name+category+size combination
// with its own on-hand count.
type Product struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Size     string `json:"size" validate:"required"`
	Stock    int    `json:"stock" validate:"gte=0"`

	// Timestamps give listings a stable order but are not part of the
	// wire shape the client consumes.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
