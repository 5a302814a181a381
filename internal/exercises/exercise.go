package exercises

import (
	"github.com/google/uuid"
)

type Category string

const (
	CategoryPush Category = "push"
	CategoryPull Category = "pull"
	CategoryLegs Category = "legs"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPush, CategoryPull, CategoryLegs:
		return true
	}
	return false
}

type Type string

const (
	TypePrimary   Type = "primary"
	TypeAccessory Type = "accessory"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePrimary, TypeAccessory:
		return true
	}
	return false
}

type Exercise struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Type     Type      `json:"type"`
}

// catalogNamespace scopes the name based catalog ids.
var catalogNamespace = uuid.MustParse("5d0f8a2e-6f1c-4d8b-9b8e-3c2a7f41e6d0")

// IDForName returns the stable catalog id of the exercise with the given name.
// The seeder and the workout templates both derive ids with it, so a template
// entry always points to the seeded row.
func IDForName(name string) uuid.UUID {
	return uuid.NewSHA1(catalogNamespace, []byte(name))
}

func newCatalogExercise(name string, category Category, exType Type) Exercise {
	return Exercise{
		ID:       IDForName(name),
		Name:     name,
		Category: category,
		Type:     exType,
	}
}
