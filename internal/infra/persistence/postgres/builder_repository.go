// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"standmatch/internal/domain/entity"
	domainerrors "standmatch/internal/domain/errors"
	"standmatch/internal/domain/repository"
	"standmatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// builderRepository implements the repository.BuilderRepository interface using GORM.
type builderRepository struct {
	db *gorm.DB
}

// NewBuilderRepository is the constructor for builderRepository.
// It returns the repository as a repository.BuilderRepository interface, adhering to dependency inversion.
func NewBuilderRepository(db *gorm.DB) repository.BuilderRepository {
	return &builderRepository{db: db}
}

// FindByID retrieves a single builder profile by its unique ID.
func (repo *builderRepository) FindByID(ctx context.Context, id string) (*entity.BuilderProfile, error) {
	var builderM model.BuilderModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&builderM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuilderNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find builder by id")
	}

	return toBuilderDomain(&builderM)
}

// FindBySlug retrieves a single builder profile by its URL slug.
func (repo *builderRepository) FindBySlug(ctx context.Context, slug string) (*entity.BuilderProfile, error) {
	var builderM model.BuilderModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&builderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuilderNotFound
		}

		return nil, errors.Wrap(err, "failed to find builder by slug")
	}

	return toBuilderDomain(&builderM)
}

// FindByEmail retrieves a single builder profile by primary email.
// The email column is stored lowercased, so the lookup is case-insensitive.
func (repo *builderRepository) FindByEmail(ctx context.Context, email string) (*entity.BuilderProfile, error) {
	var builderM model.BuilderModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&builderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuilderNotFound
		}

		return nil, errors.Wrap(err, "failed to find builder by email")
	}

	return toBuilderDomain(&builderM)
}

// Create persists a new builder profile.
func (repo *builderRepository) Create(ctx context.Context, builder *entity.BuilderProfile) error {
	builderM, err := fromBuilderDomain(builder)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(builderM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBuilderAlreadyExists.WrapMessage("email or slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBuilderCreationFailed.WrapMessage("missing required builder information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create builder")
	}

	builder.CreatedAt = builderM.CreatedAt
	builder.UpdatedAt = builderM.UpdatedAt

	return nil
}

// Update modifies an existing builder profile.
func (repo *builderRepository) Update(ctx context.Context, builder *entity.BuilderProfile) error {
	builderM, err := fromBuilderDomain(builder)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BuilderModel{}).
		Where("id = ?", builderM.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(builderM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrBuilderAlreadyExists.WrapMessage("email or slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update builder")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBuilderNotFound
	}

	return nil
}

// Delete removes a builder profile by ID.
func (repo *builderRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BuilderModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete builder")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBuilderNotFound
	}

	return nil
}

// List returns profiles matching the filter, in insertion order.
func (repo *builderRepository) List(ctx context.Context, filter repository.BuilderFilter) ([]*entity.BuilderProfile, error) {
	tx := repo.db.WithContext(ctx).Model(&model.BuilderModel{})

	if filter.Country != "" {
		tx = tx.Where("country = ?", filter.Country)
	}
	if filter.Verified != nil {
		tx = tx.Where("verified = ?", *filter.Verified)
	}
	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		tx = tx.Where(
			"lower(company_name) LIKE ? OR lower(description) LIKE ? OR lower(city) LIKE ? OR lower(country) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var models []model.BuilderModel
	if err := tx.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list builders")
	}

	builders := make([]*entity.BuilderProfile, 0, len(models))
	for i := range models {
		builder, err := toBuilderDomain(&models[i])
		if err != nil {
			return nil, err
		}
		builders = append(builders, builder)
	}

	return builders, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// fromBuilderDomain maps a pure domain entity to the GORM persistence model.
// The whole aggregate is serialized into the JSONB document; scalar columns
// are duplicated from it for indexing and filtering.
func fromBuilderDomain(builder *entity.BuilderProfile) (*model.BuilderModel, error) {
	document, err := json.Marshal(builder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize builder profile")
	}

	return &model.BuilderModel{
		ID:            builder.ID,
		CompanyName:   builder.CompanyName,
		Slug:          builder.Slug,
		Email:         normalizeEmail(builder.ContactInfo.PrimaryEmail),
		Country:       builder.Headquarters.Country,
		City:          builder.Headquarters.City,
		Description:   builder.CompanyDescription,
		Verified:      builder.Verified,
		PremiumMember: builder.PremiumMember,
		Rating:        builder.Rating,
		ReviewCount:   builder.ReviewCount,
		Profile:       document,
		CreatedAt:     builder.CreatedAt,
		UpdatedAt:     builder.UpdatedAt,
	}, nil
}

// toBuilderDomain maps the persistence model back to a pure domain entity.
func toBuilderDomain(builderM *model.BuilderModel) (*entity.BuilderProfile, error) {
	var builder entity.BuilderProfile
	if err := json.Unmarshal(builderM.Profile, &builder); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize builder profile")
	}

	// Scalar columns win over the document for admin-editable fields.
	builder.ID = builderM.ID
	builder.Verified = builderM.Verified
	builder.PremiumMember = builderM.PremiumMember
	builder.CompanyDescription = builderM.Description
	builder.CreatedAt = builderM.CreatedAt
	builder.UpdatedAt = builderM.UpdatedAt

	return &builder, nil
}
