package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"standmatch/internal/domain/entity"
	domainerrors "standmatch/internal/domain/errors"
	"standmatch/internal/infra/persistence/memory"
	mockService "standmatch/internal/mocks/service"
	"standmatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// builderServiceFixtures holds all test dependencies for builder service tests.
type builderServiceFixtures struct {
	service usecase.BuilderUsecase
	repo    *memory.BuilderRepository
	qr      *mockService.MockQRCodeService
}

func createTestBuilderService(t *testing.T) builderServiceFixtures {
	t.Helper()

	repo := memory.NewBuilderRepository()
	qr := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewBuilderService(repo, qr, logger)

	return builderServiceFixtures{
		service: svc,
		repo:    repo,
		qr:      qr,
	}
}

var fixtureCities = map[string]string{
	"United States": "New York",
	"Germany":       "Berlin",
	"France":        "Paris",
}

func storedBuilder(t *testing.T, repo *memory.BuilderRepository, id, name, country string, verified, premium bool, rating float64) *entity.BuilderProfile {
	t.Helper()

	city, ok := fixtureCities[country]
	require.True(t, ok, "no fixture city for country %q", country)

	builder := &entity.BuilderProfile{
		ID:          id,
		CompanyName: name,
		Slug:        "slug-" + id,
		Headquarters: entity.Location{
			City:           city,
			Country:        country,
			IsHeadquarters: true,
		},
		ContactInfo: entity.ContactInfo{
			PrimaryEmail: id + "@example.com",
		},
		Rating:            rating,
		ProjectsCompleted: 50,
		Verified:          verified,
		PremiumMember:     premium,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), builder))

	return builder
}

func TestBuilderService_GetBuilder(t *testing.T) {
	fixtures := createTestBuilderService(t)
	ctx := context.Background()

	storedBuilder(t, fixtures.repo, "builder-1", "Smart Expo Solutions", "United States", true, false, 4.5)

	found, err := fixtures.service.GetBuilder(ctx, "builder-1")
	require.NoError(t, err)
	assert.Equal(t, "Smart Expo Solutions", found.CompanyName)

	_, err = fixtures.service.GetBuilder(ctx, "builder-missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBuilderNotFound)
}

func TestBuilderService_GetBuilderBySlug(t *testing.T) {
	fixtures := createTestBuilderService(t)
	ctx := context.Background()

	storedBuilder(t, fixtures.repo, "builder-1", "Smart Expo Solutions", "United States", true, false, 4.5)

	found, err := fixtures.service.GetBuilderBySlug(ctx, "slug-builder-1")
	require.NoError(t, err)
	assert.Equal(t, "builder-1", found.ID)

	_, err = fixtures.service.GetBuilderBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, domainerrors.ErrBuilderNotFound)
}

func TestBuilderService_ListBuilders(t *testing.T) {
	fixtures := createTestBuilderService(t)
	ctx := context.Background()

	storedBuilder(t, fixtures.repo, "builder-1", "Smart Expo Solutions", "United States", true, false, 4.5)
	storedBuilder(t, fixtures.repo, "builder-2", "Berlin Design Studios", "Germany", false, true, 4.9)

	all, err := fixtures.service.ListBuilders(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	verified := true
	filtered, err := fixtures.service.ListBuilders(ctx, &usecase.ListBuildersInput{
		Country:  "United States",
		Verified: &verified,
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "builder-1", filtered[0].ID)

	byQuery, err := fixtures.service.ListBuilders(ctx, &usecase.ListBuildersInput{Query: "berlin"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "builder-2", byQuery[0].ID)
}

func TestBuilderService_UpdateBuilder(t *testing.T) {
	fixtures := createTestBuilderService(t)
	ctx := context.Background()

	created := storedBuilder(t, fixtures.repo, "builder-1", "Smart Expo Solutions", "United States", false, false, 4.5)

	verified := true
	description := "Updated description"
	updated, err := fixtures.service.UpdateBuilder(ctx, "builder-1", &usecase.UpdateBuilderInput{
		Verified:           &verified,
		CompanyDescription: &description,
	})

	require.NoError(t, err)
	assert.True(t, updated.Verified)
	assert.Equal(t, "Updated description", updated.CompanyDescription)
	assert.False(t, updated.PremiumMember)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt) || updated.UpdatedAt.Equal(created.CreatedAt))

	stored, err := fixtures.service.GetBuilder(ctx, "builder-1")
	require.NoError(t, err)
	assert.True(t, stored.Verified)

	_, err = fixtures.service.UpdateBuilder(ctx, "builder-missing", &usecase.UpdateBuilderInput{Verified: &verified})
	assert.ErrorIs(t, err, domainerrors.ErrBuilderNotFound)
}

func TestBuilderService_DeleteBuilder(t *testing.T) {
	fixtures := createTestBuilderService(t)
	ctx := context.Background()

	storedBuilder(t, fixtures.repo, "builder-1", "Smart Expo Solutions", "United States", true, false, 4.5)

	require.NoError(t, fixtures.service.DeleteBuilder(ctx, "builder-1"))

	_, err := fixtures.service.GetBuilder(ctx, "builder-1")
	assert.ErrorIs(t, err, domainerrors.ErrBuilderNotFound)

	assert.ErrorIs(t, fixtures.service.DeleteBuilder(ctx, "builder-1"), domainerrors.ErrBuilderNotFound)
}

func TestBuilderService_GetStats(t *testing.T) {
	fixtures := createTestBuilderService(t)
	ctx := context.Background()

	storedBuilder(t, fixtures.repo, "builder-1", "Smart Expo Solutions", "United States", true, false, 4.4)
	storedBuilder(t, fixtures.repo, "builder-2", "Berlin Design Studios", "Germany", true, true, 4.8)
	storedBuilder(t, fixtures.repo, "builder-3", "Modular Pro France", "France", false, false, 4.0)

	stats, err := fixtures.service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalBuilders)
	assert.Equal(t, 2, stats.VerifiedBuilders)
	assert.Equal(t, 1, stats.PremiumMembers)
	assert.Equal(t, 150, stats.TotalProjects)
	assert.InDelta(t, 4.4, stats.AverageRating, 0.001)
	assert.Equal(t, map[string]int{
		"United States": 1,
		"Germany":       1,
		"France":        1,
	}, stats.ByCountry)
}

func TestBuilderService_GetStats_EmptyDirectory(t *testing.T) {
	fixtures := createTestBuilderService(t)

	stats, err := fixtures.service.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalBuilders)
	assert.Zero(t, stats.AverageRating)
}

func TestBuilderService_ProfileQR(t *testing.T) {
	fixtures := createTestBuilderService(t)
	ctx := context.Background()

	storedBuilder(t, fixtures.repo, "builder-1", "Smart Expo Solutions", "United States", true, false, 4.5)

	expected := []byte{0x89, 'P', 'N', 'G'}
	fixtures.qr.On("GenerateProfileQR", "slug-builder-1").Return(expected, nil)

	png, err := fixtures.service.ProfileQR(ctx, "builder-1")

	require.NoError(t, err)
	assert.Equal(t, expected, png)
}

func TestBuilderService_ProfileQR_NotFound(t *testing.T) {
	fixtures := createTestBuilderService(t)

	_, err := fixtures.service.ProfileQR(context.Background(), "builder-missing")

	assert.ErrorIs(t, err, domainerrors.ErrBuilderNotFound)
}
