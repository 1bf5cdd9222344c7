package memory

import (
	"context"
	"testing"

	"standmatch/internal/domain/entity"
	"standmatch/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuilder(id, name, email string) *entity.BuilderProfile {
	return &entity.BuilderProfile{
		ID:          id,
		CompanyName: name,
		Slug:        "slug-" + id,
		Headquarters: entity.Location{
			City:           "Berlin",
			Country:        "Germany",
			CountryCode:    "DE",
			IsHeadquarters: true,
		},
		ContactInfo: entity.ContactInfo{
			PrimaryEmail: email,
		},
		Verified: true,
	}
}

func TestBuilderRepository_CreateAndFind(t *testing.T) {
	repo := NewBuilderRepository()
	ctx := context.Background()

	builder := sampleBuilder("builder-1", "Berlin Design Studios", "contact@berlindesign.de")
	require.NoError(t, repo.Create(ctx, builder))

	found, err := repo.FindByID(ctx, "builder-1")
	require.NoError(t, err)
	assert.Equal(t, "Berlin Design Studios", found.CompanyName)

	bySlug, err := repo.FindBySlug(ctx, "slug-builder-1")
	require.NoError(t, err)
	assert.Equal(t, builder.ID, bySlug.ID)

	_, err = repo.FindByID(ctx, "builder-missing")
	assert.ErrorIs(t, err, repository.ErrBuilderNotFound)
}

func TestBuilderRepository_FindByEmail_CaseInsensitive(t *testing.T) {
	repo := NewBuilderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleBuilder("builder-1", "Smart Expo", "Info@SmartExpo.com")))

	found, err := repo.FindByEmail(ctx, "info@smartexpo.com")
	require.NoError(t, err)
	assert.Equal(t, "builder-1", found.ID)

	_, err = repo.FindByEmail(ctx, "other@smartexpo.com")
	assert.ErrorIs(t, err, repository.ErrBuilderNotFound)
}

func TestBuilderRepository_Create_DuplicateID(t *testing.T) {
	repo := NewBuilderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleBuilder("builder-1", "A", "a@example.com")))
	assert.Error(t, repo.Create(ctx, sampleBuilder("builder-1", "B", "b@example.com")))
}

func TestBuilderRepository_UpdateAndDelete(t *testing.T) {
	repo := NewBuilderRepository()
	ctx := context.Background()

	builder := sampleBuilder("builder-1", "Before", "a@example.com")
	require.NoError(t, repo.Create(ctx, builder))

	builder.CompanyName = "After"
	require.NoError(t, repo.Update(ctx, builder))

	found, err := repo.FindByID(ctx, "builder-1")
	require.NoError(t, err)
	assert.Equal(t, "After", found.CompanyName)

	require.NoError(t, repo.Delete(ctx, "builder-1"))
	_, err = repo.FindByID(ctx, "builder-1")
	assert.ErrorIs(t, err, repository.ErrBuilderNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "builder-1"), repository.ErrBuilderNotFound)
	assert.ErrorIs(t, repo.Update(ctx, builder), repository.ErrBuilderNotFound)
}

func TestBuilderRepository_List_Filters(t *testing.T) {
	repo := NewBuilderRepository()
	ctx := context.Background()

	berlin := sampleBuilder("builder-1", "Berlin Design Studios", "contact@berlindesign.de")
	tokyo := sampleBuilder("builder-2", "Tokyo Exhibition Co", "info@tokyoexhibition.jp")
	tokyo.Headquarters.Country = "Japan"
	tokyo.Headquarters.City = "Tokyo"
	tokyo.Verified = false

	require.NoError(t, repo.Create(ctx, berlin))
	require.NoError(t, repo.Create(ctx, tokyo))

	all, err := repo.List(ctx, repository.BuilderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "builder-1", all[0].ID)
	assert.Equal(t, "builder-2", all[1].ID)

	germany, err := repo.List(ctx, repository.BuilderFilter{Country: "Germany"})
	require.NoError(t, err)
	require.Len(t, germany, 1)
	assert.Equal(t, "builder-1", germany[0].ID)

	verified := true
	verifiedOnly, err := repo.List(ctx, repository.BuilderFilter{Verified: &verified})
	require.NoError(t, err)
	require.Len(t, verifiedOnly, 1)

	byQuery, err := repo.List(ctx, repository.BuilderFilter{Query: "tokyo"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "builder-2", byQuery[0].ID)
}

func TestBuilderRepository_ReturnsCopies(t *testing.T) {
	repo := NewBuilderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleBuilder("builder-1", "Original", "a@example.com")))

	found, err := repo.FindByID(ctx, "builder-1")
	require.NoError(t, err)
	found.CompanyName = "Mutated"

	again, err := repo.FindByID(ctx, "builder-1")
	require.NoError(t, err)
	assert.Equal(t, "Original", again.CompanyName)
}
