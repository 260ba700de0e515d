// Package api exposes the normalizer over HTTP for one-off conversions.
// The endpoint wraps the strict single-document contract; batch processing
// stays a CLI concern.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-normalizer/internal/models"
	"github.com/insightdelivered/statement-normalizer/internal/processor"
	"github.com/insightdelivered/statement-normalizer/internal/writer"
)

// NormalizeResponse is the JSON reply from /api/normalize.
type NormalizeResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	TotalDebit   string               `json:"totalDebit"`
	TotalCredit  string               `json:"totalCredit"`
	CSV          string               `json:"csv,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Proc *processor.Processor
	Log  zerolog.Logger
}

// Register sets up the HTTP routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/normalize", h.handleNormalize)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

func (h *Handler) handleNormalize(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}

	// The dispatcher routes by suffix, so the temp copy must keep the
	// uploaded file's extension.
	ext := strings.ToLower(filepath.Ext(file.Filename))
	tmp, err := os.CreateTemp("", "statement-*"+ext)
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "could not create temp file")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(file, tmpPath); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "could not save upload")
	}

	table, err := h.Proc.ProcessStatement(tmpPath)
	if err != nil {
		h.Log.Warn().Err(err).Str("file", file.Filename).Msg("normalize failed")
		return writeError(c, statusFor(err), err.Error())
	}

	var csvBuf bytes.Buffer
	if err := writer.Write(&csvBuf, table); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("csv rendering failed: %v", err))
	}

	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, txn := range table {
		switch txn.Type {
		case models.TypeDebit:
			totalDebit = totalDebit.Add(txn.Amount)
		case models.TypeCredit:
			totalCredit = totalCredit.Add(txn.Amount)
		}
	}

	if table == nil {
		table = models.Table{}
	}
	return c.JSON(NormalizeResponse{
		Success:      true,
		Transactions: table,
		Count:        len(table),
		TotalDebit:   totalDebit.StringFixed(2),
		TotalCredit:  totalCredit.StringFixed(2),
		CSV:          csvBuf.String(),
	})
}

// statusFor maps the processing error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrUnsupportedFormat):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrExtractionFailed),
		errors.Is(err, models.ErrUnrecodableFile),
		errors.Is(err, models.ErrMissingColumns):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(NormalizeResponse{
		Success: false,
		Error:   msg,
	})
}
