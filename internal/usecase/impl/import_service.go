// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"standmatch/config"
	"standmatch/internal/domain/entity"
	domainerrors "standmatch/internal/domain/errors"
	"standmatch/internal/domain/repository"
	"standmatch/internal/domain/service"
	"standmatch/internal/importer"
	"standmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// importService implements the ImportUsecase interface.
type importService struct {
	fx.In

	builderRepo repository.BuilderRepository
	transformer *importer.Transformer
	publisher   service.EventPublisher
	cfg         *config.ImportConfig
	logger      *slog.Logger
}

// NewImportService is the constructor for importService.
func NewImportService(
	builderRepo repository.BuilderRepository,
	transformer *importer.Transformer,
	publisher service.EventPublisher,
	cfg *config.ImportConfig,
	logger *slog.Logger,
) usecase.ImportUsecase {
	return &importService{
		builderRepo: builderRepo,
		transformer: transformer,
		publisher:   publisher,
		cfg:         cfg,
		logger:      logger,
	}
}

// ImportCSV runs parse, validate, transform and persist on one uploaded file.
func (srv *importService) ImportCSV(ctx context.Context, input *usecase.ImportCSVInput) (*usecase.ImportResult, error) {
	start := time.Now()
	requestID := uuid.New().String()

	srv.logger.Info("starting csv import",
		"requestID", requestID,
		"filename", input.Filename,
		"bytes", len(input.Content))

	rows := importer.Parse(input.Content)
	if len(rows) == 0 {
		srv.logger.Info("csv import finished with no data rows",
			"requestID", requestID,
			"filename", input.Filename)

		return &usecase.ImportResult{}, nil
	}

	if srv.cfg.MaxRows > 0 && len(rows) > srv.cfg.MaxRows {
		return nil, errors.Wrapf(domainerrors.ErrImportTooManyRows,
			"file has %d data rows, limit is %d", len(rows), srv.cfg.MaxRows)
	}

	if fieldErrors := importer.Validate(rows, importer.FirstDataRow); len(fieldErrors) > 0 {
		srv.logger.Info("csv import rejected by validation",
			"requestID", requestID,
			"filename", input.Filename,
			"rows", len(rows),
			"errorCount", len(fieldErrors))

		return &usecase.ImportResult{Errors: fieldErrors},
			errors.Wrap(domainerrors.ErrImportValidationFailed, "csv validation failed")
	}

	builders := make([]*entity.BuilderProfile, 0, len(rows))
	for _, row := range rows {
		builders = append(builders, srv.transformer.Transform(row))
	}

	result, err := srv.persist(ctx, requestID, builders)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("csv import completed",
		"requestID", requestID,
		"filename", input.Filename,
		"rows", len(rows),
		"created", result.Created,
		"duplicates", result.Duplicates,
		"duration", time.Since(start))

	return result, nil
}

// persist inserts each profile unless its email is already registered.
// Emails are compared case-insensitively against the store.
func (srv *importService) persist(ctx context.Context, requestID string, builders []*entity.BuilderProfile) (*usecase.ImportResult, error) {
	result := &usecase.ImportResult{}

	for _, builder := range builders {
		_, err := srv.builderRepo.FindByEmail(ctx, builder.ContactInfo.PrimaryEmail)
		switch {
		case err == nil:
			result.Duplicates++

			continue
		case !errors.Is(err, repository.ErrBuilderNotFound):
			return nil, errors.Wrap(err, "failed to check for existing builder")
		}

		if err := srv.builderRepo.Create(ctx, builder); err != nil {
			return nil, errors.Wrapf(domainerrors.ErrBuilderCreationFailed,
				"failed to create builder %s: %v", builder.CompanyName, err)
		}

		result.Created++
		result.Builders = append(result.Builders, builder)

		srv.publishImported(ctx, requestID, builder)
	}

	return result, nil
}

// publishImported emits the builder.imported event. Publishing is best
// effort, a failure never rolls back the import.
func (srv *importService) publishImported(ctx context.Context, requestID string, builder *entity.BuilderProfile) {
	event := &service.BuilderImportedEvent{
		RequestID:   requestID,
		BuilderID:   builder.ID,
		Slug:        builder.Slug,
		CompanyName: builder.CompanyName,
		Country:     builder.Headquarters.Country,
		CityCount:   len(builder.ServiceLocations),
	}

	if err := srv.publisher.PublishBuilderImported(ctx, event); err != nil {
		srv.logger.Warn("failed to publish builder.imported event",
			"requestID", requestID,
			"builderID", builder.ID,
			"error", err)
	}
}

// Template returns the downloadable CSV template with sample rows.
func (srv *importService) Template() (string, string) {
	return importer.TemplateFilename, importer.TemplateCSV()
}
