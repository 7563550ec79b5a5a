package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

func (s *Server) uploadClinicalNotes(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, []fieldViolation{{
			Loc:  []string{"body", "file"},
			Msg:  "file is required",
			Type: "value_error.missing",
		}})
	}

	constraints := s.cfg.Constraints()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !constraints.Allows(ext) {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"error":         "Invalid file type",
			"message":       fmt.Sprintf("Only %s files are allowed", strings.Join(constraints.Extensions, ", ")),
			"allowed_types": constraints.Extensions,
		})
	}

	if constraints.MaxBytes > 0 && fileHeader.Size > constraints.MaxBytes {
		maxMB := float64(constraints.MaxBytes) / (1 << 20)
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, echo.Map{
			"error":       "File too large",
			"message":     fmt.Sprintf("File size exceeds %.1fMB limit", maxMB),
			"max_size_mb": maxMB,
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return s.saveFailure(err)
	}
	defer src.Close()

	// Basename only: client-supplied names never pick the directory.
	original := filepath.Base(fileHeader.Filename)
	stored := strings.ReplaceAll(s.newRef().String(), "-", "") + "_" + original

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return s.saveFailure(err)
	}
	dst, err := os.Create(filepath.Join(s.cfg.UploadDir, stored))
	if err != nil {
		return s.saveFailure(err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return s.saveFailure(err)
	}

	u := s.identify(c)
	s.logger.Info().
		Str("filename", stored).
		Int64("size", written).
		Str("uploaded_by", u.Username).
		Msg("clinical notes stored")

	return c.JSON(http.StatusCreated, echo.Map{
		"status":            "success",
		"filename":          stored,
		"original_filename": fileHeader.Filename,
		"file_size_bytes":   written,
		"uploaded_by":       u.Username,
		"message":           "Clinical notes uploaded successfully",
	})
}

// saveFailure hides storage errors behind the API's generic upload refusal.
func (s *Server) saveFailure(err error) error {
	s.logger.Error().Err(err).Msg("clinical notes save failed")
	return echo.NewHTTPError(http.StatusInternalServerError, echo.Map{
		"error":   "File upload failed",
		"message": "An error occurred while saving the file",
	})
}
