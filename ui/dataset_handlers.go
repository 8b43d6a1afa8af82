package ui

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tajir/adapters/excel"
	"tajir/domain/core"
	"tajir/domain/dataset"
	apperrors "tajir/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleUpload accepts a CSV or XLSX file, parses it into records and
// registers the dataset. The upload is kept on disk under the configured
// upload directory so it can be re-read later if needed.
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	if file.Size > s.cfg.Data.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".csv" && ext != ".xlsx" {
		appErr := apperrors.FileUnsupported(ext)
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}

	ds := dataset.NewDataset(filepath.Base(file.Filename), "upload")
	if name := c.PostForm("name"); name != "" {
		ds.DisplayName = name
	}

	if err := os.MkdirAll(s.cfg.Data.UploadDir, 0o755); err != nil {
		s.log.Error("creating upload dir: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
		return
	}
	dst := filepath.Join(s.cfg.Data.UploadDir, ds.ID.String()+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		s.log.Error("saving upload %s: %v", file.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}

	records, columns, err := excel.NewDataReader(dst).Read()
	if err != nil {
		ds.Status = dataset.StatusFailed
		ds.ErrorMessage = err.Error()
		ds.UpdatedAt = core.Now()
		if saveErr := s.datasets.Save(c.Request.Context(), ds, nil); saveErr != nil {
			s.log.Error("saving failed dataset %s: %v", ds.ID, saveErr)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "dataset": ds})
		return
	}

	ds.Columns = columns
	ds.RecordCount = len(records)
	ds.Status = dataset.StatusReady
	ds.UpdatedAt = core.Now()

	if err := s.datasets.Save(c.Request.Context(), ds, records); err != nil {
		s.log.Error("saving dataset %s: %v", ds.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save dataset"})
		return
	}

	s.log.Info("dataset %s registered: %s (%d records, %d columns)",
		ds.ID, ds.GetDisplayName(), ds.RecordCount, len(ds.Columns))
	c.JSON(http.StatusCreated, ds)
}

func (s *Server) handleListDatasets(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	list, err := s.datasets.List(c.Request.Context(), limit)
	if err != nil {
		s.log.Error("listing datasets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list datasets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": list, "count": len(list)})
}

func (s *Server) handleGetDataset(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dataset id"})
		return
	}

	ds, _, err := s.datasets.Get(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
			return
		}
		s.log.Error("fetching dataset %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dataset"})
		return
	}
	c.JSON(http.StatusOK, ds)
}

func (s *Server) handleDeleteDataset(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dataset id"})
		return
	}

	if err := s.datasets.Delete(c.Request.Context(), id); err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
			return
		}
		s.log.Error("deleting dataset %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete dataset"})
		return
	}
	c.Status(http.StatusNoContent)
}
