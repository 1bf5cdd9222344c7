// Package memory provides an in-memory BuilderRepository used by tests and
// by the local runtime profile when no database is configured.
package memory

import (
	"context"
	"strings"
	"sync"

	"standmatch/internal/domain/entity"
	"standmatch/internal/domain/repository"
	domainerrors "standmatch/internal/domain/errors"
)

// BuilderRepository stores profiles in insertion order behind a mutex, so a
// single store instance is safe under concurrent imports.
type BuilderRepository struct {
	mu       sync.RWMutex
	builders []*entity.BuilderProfile
	byID     map[string]*entity.BuilderProfile
}

// NewBuilderRepository creates an empty in-memory store.
func NewBuilderRepository() *BuilderRepository {
	return &BuilderRepository{
		byID: make(map[string]*entity.BuilderProfile),
	}
}

// FindByID retrieves a profile by its unique ID.
func (r *BuilderRepository) FindByID(_ context.Context, id string) (*entity.BuilderProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if builder, ok := r.byID[id]; ok {
		return cloneBuilder(builder), nil
	}

	return nil, repository.ErrBuilderNotFound
}

// FindBySlug retrieves a profile by its URL slug.
func (r *BuilderRepository) FindBySlug(_ context.Context, slug string) (*entity.BuilderProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, builder := range r.builders {
		if builder.Slug == slug {
			return cloneBuilder(builder), nil
		}
	}

	return nil, repository.ErrBuilderNotFound
}

// FindByEmail retrieves a profile by primary email, compared case-insensitively.
func (r *BuilderRepository) FindByEmail(_ context.Context, email string) (*entity.BuilderProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(email))
	for _, builder := range r.builders {
		if strings.ToLower(builder.ContactInfo.PrimaryEmail) == needle {
			return cloneBuilder(builder), nil
		}
	}

	return nil, repository.ErrBuilderNotFound
}

// Create appends a new profile. IDs must be unique.
func (r *BuilderRepository) Create(_ context.Context, builder *entity.BuilderProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[builder.ID]; exists {
		return domainerrors.ErrBuilderAlreadyExists
	}

	stored := cloneBuilder(builder)
	r.builders = append(r.builders, stored)
	r.byID[stored.ID] = stored

	return nil
}

// Update replaces an existing profile in place.
func (r *BuilderRepository) Update(_ context.Context, builder *entity.BuilderProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[builder.ID]
	if !ok {
		return repository.ErrBuilderNotFound
	}

	*existing = *cloneBuilder(builder)

	return nil
}

// Delete removes a profile by ID.
func (r *BuilderRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return repository.ErrBuilderNotFound
	}

	delete(r.byID, id)
	for i, builder := range r.builders {
		if builder.ID == id {
			r.builders = append(r.builders[:i], r.builders[i+1:]...)

			break
		}
	}

	return nil
}

// List returns profiles matching the filter, in insertion order.
func (r *BuilderRepository) List(_ context.Context, filter repository.BuilderFilter) ([]*entity.BuilderProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.BuilderProfile, 0, len(r.builders))
	for _, builder := range r.builders {
		if !matchesFilter(builder, filter) {
			continue
		}
		result = append(result, cloneBuilder(builder))
	}

	return result, nil
}

func matchesFilter(builder *entity.BuilderProfile, filter repository.BuilderFilter) bool {
	if filter.Country != "" && builder.Headquarters.Country != filter.Country {
		return false
	}

	if filter.Verified != nil && builder.Verified != *filter.Verified {
		return false
	}

	if filter.Query != "" {
		query := strings.ToLower(filter.Query)
		haystack := strings.ToLower(strings.Join([]string{
			builder.CompanyName,
			builder.CompanyDescription,
			builder.Headquarters.City,
			builder.Headquarters.Country,
		}, "\n"))
		if !strings.Contains(haystack, query) {
			return false
		}
	}

	return true
}

// cloneBuilder copies a profile so callers cannot mutate the stored value.
// Slice fields are shallow-copied at the top level, which is enough because
// the importer never mutates elements after construction.
func cloneBuilder(src *entity.BuilderProfile) *entity.BuilderProfile {
	dst := *src
	dst.ServiceLocations = append([]entity.Location(nil), src.ServiceLocations...)
	dst.Services = append([]entity.Service(nil), src.Services...)
	dst.Specializations = append([]entity.Specialization(nil), src.Specializations...)
	dst.Portfolio = append([]entity.PortfolioProject(nil), src.Portfolio...)
	dst.Languages = append([]string(nil), src.Languages...)
	dst.WhyChooseUs = append([]string(nil), src.WhyChooseUs...)
	dst.KeyStrengths = append([]string(nil), src.KeyStrengths...)

	return &dst
}
