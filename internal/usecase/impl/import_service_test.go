package impl

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"standmatch/config"
	"standmatch/internal/domain/entity"
	domainerrors "standmatch/internal/domain/errors"
	"standmatch/internal/domain/repository"
	"standmatch/internal/domain/service"
	"standmatch/internal/importer"
	"standmatch/internal/infra/persistence/memory"
	mockRepo "standmatch/internal/mocks/repository"
	mockService "standmatch/internal/mocks/service"
	"standmatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []service.BuilderImportedEvent
}

func (p *recordingPublisher) PublishBuilderImported(_ context.Context, event *service.BuilderImportedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// importServiceFixtures holds all test dependencies for import service tests.
type importServiceFixtures struct {
	service   usecase.ImportUsecase
	repo      *memory.BuilderRepository
	publisher *recordingPublisher
}

func createTestImportService(t *testing.T, maxRows int) importServiceFixtures {
	t.Helper()

	repo := memory.NewBuilderRepository()
	publisher := &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	transformer := importer.NewTransformer(rand.New(rand.NewSource(42)))
	svc := NewImportService(repo, transformer, publisher, &config.ImportConfig{MaxRows: maxRows}, logger)

	return importServiceFixtures{
		service:   svc,
		repo:      repo,
		publisher: publisher,
	}
}

func templateInput() *usecase.ImportCSVInput {
	return &usecase.ImportCSVInput{
		Filename: importer.TemplateFilename,
		Content:  importer.TemplateCSV(),
	}
}

// csvWithRows builds an upload with the canonical header line and raw data lines.
func csvWithRows(dataLines ...string) string {
	header := strings.Join([]string{
		importer.ColCompanyName, importer.ColEmail, importer.ColPhoneNumber,
		importer.ColContactPerson, importer.ColCountry, importer.ColCities,
		importer.ColServicesProvided, importer.ColBusinessDescription,
		importer.ColWebsite, importer.ColType, importer.ColImageURL,
		importer.ColPortfolioImages,
	}, ",")

	return header + "\n" + strings.Join(dataLines, "\n") + "\n"
}

func TestImportService_ImportCSV_TemplateSamples(t *testing.T) {
	fixtures := createTestImportService(t, 0)
	ctx := context.Background()

	result, err := fixtures.service.ImportCSV(ctx, templateInput())

	require.NoError(t, err)
	assert.Equal(t, 5, result.Created)
	assert.Equal(t, 0, result.Duplicates)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Builders, 5)

	stored, err := fixtures.repo.List(ctx, repository.BuilderFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 5)

	first := result.Builders[0]
	assert.Equal(t, "Smart Expo Solutions", first.CompanyName)
	assert.Equal(t, "smart-expo-solutions", first.Slug)
	assert.True(t, first.Headquarters.IsHeadquarters)

	require.Len(t, fixtures.publisher.events, 5)
	assert.Equal(t, first.ID, fixtures.publisher.events[0].BuilderID)
	assert.Equal(t, "United States", fixtures.publisher.events[0].Country)
	assert.Equal(t, 1, fixtures.publisher.events[0].CityCount)
	for _, event := range fixtures.publisher.events {
		assert.Equal(t, fixtures.publisher.events[0].RequestID, event.RequestID)
	}
}

func TestImportService_ImportCSV_ReimportCountsDuplicates(t *testing.T) {
	fixtures := createTestImportService(t, 0)
	ctx := context.Background()

	first, err := fixtures.service.ImportCSV(ctx, templateInput())
	require.NoError(t, err)
	require.Equal(t, 5, first.Created)

	second, err := fixtures.service.ImportCSV(ctx, templateInput())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 5, second.Duplicates)
	assert.Empty(t, second.Builders)

	stored, err := fixtures.repo.List(ctx, repository.BuilderFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 5)

	// No events for duplicate rows.
	assert.Len(t, fixtures.publisher.events, 5)
}

func TestImportService_ImportCSV_DuplicateEmailDifferentCase(t *testing.T) {
	fixtures := createTestImportService(t, 0)
	ctx := context.Background()

	_, err := fixtures.service.ImportCSV(ctx, &usecase.ImportCSVInput{
		Filename: "a.csv",
		Content: csvWithRows(
			`"Acme Stands","info@acme.example","+1 555 000 1111","Jane Doe","Germany","Berlin","Design","Great stands","https://acme.example","custom","",""`,
		),
	})
	require.NoError(t, err)

	result, err := fixtures.service.ImportCSV(ctx, &usecase.ImportCSVInput{
		Filename: "b.csv",
		Content: csvWithRows(
			`"Acme Stands GmbH","INFO@ACME.EXAMPLE","+49 30 000 2222","John Roe","Germany","Munich","Design","Also great","https://acme.example","modular","",""`,
		),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Duplicates)
}

func TestImportService_ImportCSV_ValidationFailure(t *testing.T) {
	fixtures := createTestImportService(t, 0)
	ctx := context.Background()

	result, err := fixtures.service.ImportCSV(ctx, &usecase.ImportCSVInput{
		Filename: "broken.csv",
		Content: csvWithRows(
			`"Acme Stands","","+1 555 000 1111","Jane Doe","Germany","Berlin","Design","Great stands","https://acme.example","custom","",""`,
		),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrImportValidationFailed)
	require.NotNil(t, result)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, importer.FieldError{Row: 2, Field: "Email", Message: "Email is required"}, result.Errors[0])

	// Nothing is persisted or published when any row fails validation.
	stored, listErr := fixtures.repo.List(ctx, repository.BuilderFilter{})
	require.NoError(t, listErr)
	assert.Empty(t, stored)
	assert.Empty(t, fixtures.publisher.events)
}

func TestImportService_ImportCSV_RowLimit(t *testing.T) {
	fixtures := createTestImportService(t, 2)
	ctx := context.Background()

	result, err := fixtures.service.ImportCSV(ctx, templateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrImportTooManyRows)
	assert.Nil(t, result)
}

func TestImportService_ImportCSV_EmptyFile(t *testing.T) {
	fixtures := createTestImportService(t, 0)
	ctx := context.Background()

	for _, content := range []string{"", "\n\n", "Company Name,Email\n"} {
		result, err := fixtures.service.ImportCSV(ctx, &usecase.ImportCSVInput{
			Filename: "empty.csv",
			Content:  content,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 0, result.Duplicates)
	}
}

func TestImportService_ImportCSV_PublishFailureDoesNotFailImport(t *testing.T) {
	repo := memory.NewBuilderRepository()
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	transformer := importer.NewTransformer(rand.New(rand.NewSource(42)))
	svc := NewImportService(repo, transformer, publisher, &config.ImportConfig{}, logger)

	publisher.On("PublishBuilderImported", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	result, err := svc.ImportCSV(context.Background(), templateInput())

	require.NoError(t, err)
	assert.Equal(t, 5, result.Created)
}

func TestImportService_ImportCSV_RepositoryLookupFailure(t *testing.T) {
	repo := mockRepo.NewMockBuilderRepository(t)
	publisher := &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	transformer := importer.NewTransformer(rand.New(rand.NewSource(42)))
	svc := NewImportService(repo, transformer, publisher, &config.ImportConfig{}, logger)

	repo.On("FindByEmail", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	result, err := svc.ImportCSV(context.Background(), templateInput())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to check for existing builder")
	assert.Empty(t, publisher.events)
}

func TestImportService_Persist_DedupesWithinBatch(t *testing.T) {
	fixtures := createTestImportService(t, 0)
	svc := fixtures.service.(*importService)
	ctx := context.Background()

	candidate := func(id, email string) *entity.BuilderProfile {
		return &entity.BuilderProfile{
			ID:          id,
			CompanyName: "Smart Expo Solutions",
			Slug:        "smart-expo-solutions",
			ContactInfo: entity.ContactInfo{PrimaryEmail: email},
		}
	}

	// The second candidate repeats the first email with different casing.
	result, err := svc.persist(ctx, "req-1", []*entity.BuilderProfile{
		candidate("builder-1", "info@smartexpo.com"),
		candidate("builder-2", "INFO@SMARTEXPO.COM"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Duplicates)
	require.Len(t, result.Builders, 1)
	assert.Equal(t, "builder-1", result.Builders[0].ID)
	assert.Len(t, fixtures.publisher.events, 1)

	// A later batch carrying the same email only adds a duplicate.
	again, err := svc.persist(ctx, "req-2", []*entity.BuilderProfile{
		candidate("builder-3", "info@smartexpo.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, again.Created)
	assert.Equal(t, 1, again.Duplicates)
	assert.Len(t, fixtures.publisher.events, 1)
}

func TestImportService_Template(t *testing.T) {
	fixtures := createTestImportService(t, 0)

	filename, content := fixtures.service.Template()

	assert.Equal(t, importer.TemplateFilename, filename)
	assert.Equal(t, importer.TemplateCSV(), content)
}
