// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender identifies who an account shops for. Products follow a slightly
// different vocabulary, see CatalogGender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// CatalogGender maps an account gender onto the catalog vocabulary.
// Accounts declaring "other" shop the unisex catalog.
func (g Gender) CatalogGender() string {
	if g == GenderOther {
		return "unisex"
	}

	return string(g)
}

// Valid reports whether g is one of the known account genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}

	return false
}

// PriceRange bounds the prices a user is comfortable with.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Preferences is the free-form styling preference bag attached to a user.
type Preferences struct {
	Style      []string    `json:"style,omitempty"`
	Colors     []string    `json:"colors,omitempty"`
	Brands     []string    `json:"brands,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
}

// User is the core entity of the system, representing a registered account.
type User struct {
	ID           uuid.UUID    // The unique identifier for the user.
	Email        string       // The user's login identifier, stored lowercased.
	Name         string       // The user's display name.
	PasswordHash string       // The bcrypt hash of the user's password.
	City         string       // The user's default city for weather lookups. Empty when unset.
	Gender       Gender       // The user's declared gender. Empty when unset.
	Preferences  *Preferences // Styling preferences. Nil when the user never set any.
	CreatedAt    time.Time    // Timestamp of when this account was created.
	UpdatedAt    time.Time    // Timestamp of the last modification to this account.
}
