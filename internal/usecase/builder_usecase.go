package usecase

import (
	"context"

	"standmatch/internal/domain/entity"
)

// BuilderUsecase defines the interface for builder-directory operations.
type BuilderUsecase interface {
	ListBuilders(ctx context.Context, input *ListBuildersInput) ([]*entity.BuilderProfile, error)
	GetBuilder(ctx context.Context, id string) (*entity.BuilderProfile, error)
	GetBuilderBySlug(ctx context.Context, slug string) (*entity.BuilderProfile, error)
	UpdateBuilder(ctx context.Context, id string, input *UpdateBuilderInput) (*entity.BuilderProfile, error)
	DeleteBuilder(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*BuilderStats, error)

	// ProfileQR renders a PNG QR code pointing at the builder's public
	// profile page.
	ProfileQR(ctx context.Context, id string) ([]byte, error)
}

// --- Input DTOs ---

// ListBuildersInput narrows the directory listing. Zero values mean "all".
type ListBuildersInput struct {
	Country  string `json:"country,omitempty"`
	Verified *bool  `json:"verified,omitempty"`
	Query    string `json:"query,omitempty"`
}

// UpdateBuilderInput defines the admin-editable profile fields.
type UpdateBuilderInput struct {
	Verified           *bool   `json:"verified,omitempty"`
	PremiumMember      *bool   `json:"premium_member,omitempty"`
	CompanyDescription *string `json:"company_description,omitempty"`
	ResponseTime       *string `json:"response_time,omitempty"`
}

// --- Output DTOs ---

// BuilderStats aggregates the directory for the admin dashboard.
type BuilderStats struct {
	TotalBuilders    int            `json:"total_builders"`
	VerifiedBuilders int            `json:"verified_builders"`
	PremiumMembers   int            `json:"premium_members"`
	TotalProjects    int            `json:"total_projects"`
	AverageRating    float64        `json:"average_rating"`
	ByCountry        map[string]int `json:"by_country"`
}
