// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"standmatch/internal/delivery/http/response"
	domainerrors "standmatch/internal/domain/errors"
	"standmatch/internal/importer"
	"standmatch/internal/usecase"
	"standmatch/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ImportHandler holds dependencies for the bulk-import handlers.
type ImportHandler struct {
	uc     usecase.ImportUsecase
	logger *slog.Logger
}

// NewImportHandler is the constructor for ImportHandler, injected by Fx.
func NewImportHandler(uc usecase.ImportUsecase, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		uc:     uc,
		logger: logger,
	}
}

// fileError is the synthetic error returned when the upload itself cannot be
// read, before any row-level validation happens.
var fileError = importer.FieldError{
	Row:     0,
	Field:   "File",
	Message: "Failed to process file. Please check format.",
}

// Import handles the CSV bulk-upload request. The file is expected as
// multipart form field "file".
func (h *ImportHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return h.fileUnreadable(c, err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return h.fileUnreadable(c, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return h.fileUnreadable(c, err)
	}

	// Audit trail for every upload, processed or not.
	h.logger.Info("received import upload",
		"filename", fileHeader.Filename,
		"size", util.FormatBytes(fileHeader.Size),
		"checksum", util.CalculateStringChecksum(string(content)),
	)

	start := time.Now()
	result, err := h.uc.ImportCSV(c.Request().Context(), &usecase.ImportCSVInput{
		Filename: fileHeader.Filename,
		Content:  string(content),
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrImportValidationFailed) && result != nil {
			return c.JSON(http.StatusUnprocessableEntity, response.Response{
				Success: false,
				Code:    http.StatusUnprocessableEntity,
				Message: "The uploaded file contains validation errors",
				Data:    map[string]any{"errors": result.Errors},
				Error: &response.ErrorInfo{
					Code:    "IMPORT_VALIDATION_FAILED",
					Details: fmt.Sprintf("%d validation errors", len(result.Errors)),
				},
			})
		}

		return errors.WithStack(err)
	}

	h.logger.Info("import upload processed",
		"filename", fileHeader.Filename,
		"created", result.Created,
		"duplicates", result.Duplicates,
		"duration", util.FormatDuration(time.Since(start)),
	)

	message := fmt.Sprintf("Successfully imported %d builders! %d duplicates were skipped.",
		result.Created, result.Duplicates)

	return response.Success(c, http.StatusOK, result, message)
}

// fileUnreadable answers uploads that cannot be parsed at the file level.
func (h *ImportHandler) fileUnreadable(c echo.Context, err error) error {
	h.logger.Warn("failed to read import upload", "error", err)

	return c.JSON(http.StatusBadRequest, response.Response{
		Success: false,
		Code:    http.StatusBadRequest,
		Message: fileError.Message,
		Data:    map[string]any{"errors": []importer.FieldError{fileError}},
		Error: &response.ErrorInfo{
			Code:    "IMPORT_FILE_UNREADABLE",
			Details: fileError.Message,
		},
	})
}

// Template serves the downloadable CSV template with sample rows.
func (h *ImportHandler) Template(c echo.Context) error {
	filename, content := h.uc.Template()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
