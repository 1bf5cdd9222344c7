// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"standmatch/internal/domain/entity"
)

// ErrBuilderNotFound is a domain-specific error returned when a builder profile is not found.
var ErrBuilderNotFound = errors.New("builder not found")

// BuilderFilter narrows List results. Zero values mean "no constraint".
type BuilderFilter struct {
	// Country matches the headquarters country exactly.
	Country string

	// Verified filters on the verification flag when non-nil.
	Verified *bool

	// Query is a case-insensitive substring match over company name,
	// description, and headquarters city/country.
	Query string
}

// BuilderRepository defines the standard operations for builder persistence.
// The application layer depends on this interface, not the concrete implementation.
type BuilderRepository interface {
	// FindByID retrieves a single builder profile by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.BuilderProfile, error)

	// FindBySlug retrieves a single builder profile by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.BuilderProfile, error)

	// FindByEmail retrieves a single builder profile by primary email.
	// Matching is case-insensitive; this backs the persist-time dedupe.
	FindByEmail(ctx context.Context, email string) (*entity.BuilderProfile, error)

	// Create persists a new builder profile. Existing profiles are never
	// overwritten; the store is append-only from the importer's perspective.
	Create(ctx context.Context, builder *entity.BuilderProfile) error

	// Update modifies an existing builder profile.
	Update(ctx context.Context, builder *entity.BuilderProfile) error

	// Delete removes a builder profile by ID.
	Delete(ctx context.Context, id string) error

	// List returns profiles matching the filter, in insertion order.
	List(ctx context.Context, filter BuilderFilter) ([]*entity.BuilderProfile, error)
}
