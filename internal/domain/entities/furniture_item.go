package entities

import (
	"fmt"
	"strings"
	"time"
)

// FurnitureStatus represents the availability of a catalog item.
//
// Domain notes:
//   - Items are never deleted; deactivation takes them off the catalog
//     and blocks both quoting and sale confirmation.
//   - Transport DTOs carry the status as a string; unknown values must be
//     rejected at the boundary via ParseFurnitureStatus.

type FurnitureStatus string

const (
	FurnitureStatusActive   FurnitureStatus = "ACTIVE"
	FurnitureStatusInactive FurnitureStatus = "INACTIVE"
)

func ParseFurnitureStatus(s string) (FurnitureStatus, error) {
	switch FurnitureStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case FurnitureStatusActive:
		return FurnitureStatusActive, nil
	case FurnitureStatusInactive:
		return FurnitureStatusInactive, nil
	}
	return "", fmt.Errorf("unknown furniture status %q", s)
}

// SizeClass is the coarse size bucket used by the catalog filters.

type SizeClass string

const (
	SizeClassSmall  SizeClass = "SMALL"
	SizeClassMedium SizeClass = "MEDIUM"
	SizeClassLarge  SizeClass = "LARGE"
)

func ParseSizeClass(s string) (SizeClass, error) {
	switch SizeClass(strings.ToUpper(strings.TrimSpace(s))) {
	case SizeClassSmall:
		return SizeClassSmall, nil
	case SizeClassMedium:
		return SizeClassMedium, nil
	case SizeClassLarge:
		return SizeClassLarge, nil
	}
	return "", fmt.Errorf("unknown size class %q", s)
}

// FurnitureItem is a catalog item persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Stock is mutated by catalog CRUD and by sale confirmation (decrement
// only, guarded by a conditional update so it never goes negative).

type FurnitureItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Material  string          `json:"material"`
	BasePrice float64         `json:"base_price"`
	Stock     int             `json:"stock"`
	Size      SizeClass       `json:"size"`
	Status    FurnitureStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
