package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"standmatch/internal/domain/entity"
	domainerrors "standmatch/internal/domain/errors"
	"standmatch/internal/domain/repository"
	"standmatch/internal/domain/service"
	"standmatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// builderService implements the BuilderUsecase interface.
type builderService struct {
	fx.In

	builderRepo repository.BuilderRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// NewBuilderService is the constructor for builderService.
func NewBuilderService(
	builderRepo repository.BuilderRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.BuilderUsecase {
	return &builderService{
		builderRepo: builderRepo,
		qrService:   qrService,
		logger:      logger,
	}
}

// ListBuilders returns directory entries matching the filter.
func (srv *builderService) ListBuilders(ctx context.Context, input *usecase.ListBuildersInput) ([]*entity.BuilderProfile, error) {
	filter := repository.BuilderFilter{}
	if input != nil {
		filter.Country = input.Country
		filter.Verified = input.Verified
		filter.Query = input.Query
	}

	builders, err := srv.builderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list builders")
	}

	return builders, nil
}

// GetBuilder retrieves one profile by ID.
func (srv *builderService) GetBuilder(ctx context.Context, id string) (*entity.BuilderProfile, error) {
	builder, err := srv.builderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBuilderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBuilderNotFound, "builder not found")
		}

		return nil, errors.Wrap(err, "failed to find builder")
	}

	return builder, nil
}

// GetBuilderBySlug retrieves one profile by its URL slug.
func (srv *builderService) GetBuilderBySlug(ctx context.Context, slug string) (*entity.BuilderProfile, error) {
	builder, err := srv.builderRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrBuilderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBuilderNotFound, "builder not found")
		}

		return nil, errors.Wrap(err, "failed to find builder by slug")
	}

	return builder, nil
}

// UpdateBuilder applies the admin-editable fields and saves the profile.
func (srv *builderService) UpdateBuilder(ctx context.Context, id string, input *usecase.UpdateBuilderInput) (*entity.BuilderProfile, error) {
	srv.logger.Info("updating builder profile", "builderID", id)

	builder, err := srv.GetBuilder(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Verified != nil {
		builder.Verified = *input.Verified
	}
	if input.PremiumMember != nil {
		builder.PremiumMember = *input.PremiumMember
	}
	if input.CompanyDescription != nil {
		builder.CompanyDescription = *input.CompanyDescription
	}
	if input.ResponseTime != nil {
		builder.ResponseTime = *input.ResponseTime
	}
	builder.UpdatedAt = time.Now()

	if err := srv.builderRepo.Update(ctx, builder); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrBuilderUpdateFailed, "failed to update builder %s: %v", id, err)
	}

	return builder, nil
}

// DeleteBuilder removes one profile from the directory.
func (srv *builderService) DeleteBuilder(ctx context.Context, id string) error {
	srv.logger.Info("deleting builder profile", "builderID", id)

	if err := srv.builderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBuilderNotFound) {
			return errors.Wrap(domainerrors.ErrBuilderNotFound, "builder not found")
		}

		return errors.Wrap(err, "failed to delete builder")
	}

	return nil
}

// GetStats aggregates the whole directory for the admin dashboard.
func (srv *builderService) GetStats(ctx context.Context) (*usecase.BuilderStats, error) {
	builders, err := srv.builderRepo.List(ctx, repository.BuilderFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load builders for stats")
	}

	stats := &usecase.BuilderStats{
		TotalBuilders: len(builders),
		ByCountry:     make(map[string]int),
	}

	var ratingSum float64
	for _, builder := range builders {
		if builder.Verified {
			stats.VerifiedBuilders++
		}
		if builder.PremiumMember {
			stats.PremiumMembers++
		}
		stats.ByCountry[builder.Headquarters.Country]++
		stats.TotalProjects += builder.ProjectsCompleted
		ratingSum += builder.Rating
	}

	if len(builders) > 0 {
		// Round to one decimal, matching the dashboard display.
		stats.AverageRating = math.Round(ratingSum/float64(len(builders))*10) / 10
	}

	return stats, nil
}

// ProfileQR renders a PNG QR code for the builder's public profile page.
func (srv *builderService) ProfileQR(ctx context.Context, id string) ([]byte, error) {
	builder, err := srv.GetBuilder(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProfileQR(builder.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile qr code")
	}

	return png, nil
}
