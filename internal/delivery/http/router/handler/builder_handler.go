package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"standmatch/internal/delivery/http/response"
	"standmatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BuilderHandler holds dependencies for the builder-directory handlers.
type BuilderHandler struct {
	uc     usecase.BuilderUsecase
	logger *slog.Logger
}

// NewBuilderHandler is the constructor for BuilderHandler, injected by Fx.
func NewBuilderHandler(uc usecase.BuilderUsecase, logger *slog.Logger) *BuilderHandler {
	return &BuilderHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the directory listing with optional country, verified and q filters.
func (h *BuilderHandler) List(c echo.Context) error {
	input := &usecase.ListBuildersInput{
		Country: c.QueryParam("country"),
		Query:   c.QueryParam("q"),
	}

	if raw := c.QueryParam("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "verified must be true or false")
		}
		input.Verified = &verified
	}

	builders, err := h.uc.ListBuilders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, builders, "Builders retrieved successfully")
}

// Get handles fetching one builder profile by ID.
func (h *BuilderHandler) Get(c echo.Context) error {
	builder, err := h.uc.GetBuilder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, builder, "Builder retrieved successfully")
}

// GetBySlug handles fetching one builder profile by URL slug.
func (h *BuilderHandler) GetBySlug(c echo.Context) error {
	builder, err := h.uc.GetBuilderBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, builder, "Builder retrieved successfully")
}

// Update handles the admin profile update request.
func (h *BuilderHandler) Update(c echo.Context) error {
	var input *usecase.UpdateBuilderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid builder update input")
	}

	builder, err := h.uc.UpdateBuilder(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, builder, "Builder updated successfully")
}

// Delete handles the admin profile delete request.
func (h *BuilderHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteBuilder(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Builder deleted successfully")
}

// Stats handles the admin dashboard aggregate request.
func (h *BuilderHandler) Stats(c echo.Context) error {
	stats, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Builder stats retrieved successfully")
}

// ProfileQR serves the PNG QR code for one builder's public profile.
func (h *BuilderHandler) ProfileQR(c echo.Context) error {
	png, err := h.uc.ProfileQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
