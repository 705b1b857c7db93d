package models

import (
	"time"

	"gorm.io/datatypes"
)

// Diet classifies the typical version of a dish.
type Diet string

const (
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
	DietNormal     Diet = "normal"
)

// Valid reports whether d is one of the three allowed classifications.
func (d Diet) Valid() bool {
	return d == DietVegetarian || d == DietVegan || d == DietNormal
}

// FavoriteFood is one dish row. A simulation iteration writes exactly three
// rows sharing one UserID. Rows are insert-only: never updated, never deleted.
type FavoriteFood struct {
	ID                  uint                        `gorm:"primaryKey" json:"id"`
	UserID              string                      `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Name                string                      `gorm:"not null" json:"name"`
	PossibleIngredients datatypes.JSONSlice[string] `gorm:"not null" json:"possible_ingredients"`
	Diet                Diet                        `gorm:"type:varchar(16);not null;check:diet IN ('vegetarian','vegan','normal')" json:"diet"`
	CreatedAt           time.Time                   `gorm:"index" json:"created_at"`
}
