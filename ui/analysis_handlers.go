package ui

import (
	"net/http"

	"tajir/app"
	"tajir/domain/analysis"
	"tajir/domain/core"
	"tajir/domain/record"
	"tajir/domain/roles"
	"tajir/internal/report"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Kind analysis.Kind `json:"kind" binding:"required"`
	// Hints maps a role name to a column header, overriding detection.
	Hints       map[string]string `json:"hints"`
	HorizonDays int               `json:"horizonDays"`
}

type dashboardRequest struct {
	Kinds []analysis.Kind   `json:"kinds"`
	Hints map[string]string `json:"hints"`
}

func roleHints(raw map[string]string) roles.ColumnRoleMap {
	if len(raw) == 0 {
		return nil
	}
	hints := make(roles.ColumnRoleMap, len(raw))
	for role, column := range raw {
		hints[roles.Role(role)] = column
	}
	return hints
}

func appRequest(req analyzeRequest, columns []string, records []record.Record) app.Request {
	return app.Request{
		Kind:        req.Kind,
		Records:     records,
		Columns:     columns,
		Hints:       roleHints(req.Hints),
		HorizonDays: req.HorizonDays,
	}
}

// handleAnalyze runs a single analysis over a stored dataset and persists
// the result. Engine-level failures (missing columns, short history) come
// back with status 200; the failure lives inside the result body.
func (s *Server) handleAnalyze(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dataset id"})
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if !req.Kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown analysis kind: " + string(req.Kind)})
		return
	}

	ds, records, err := s.datasets.Get(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
			return
		}
		s.log.Error("fetching dataset %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dataset"})
		return
	}
	if !ds.IsReady() {
		c.JSON(http.StatusConflict, gin.H{"error": "dataset is not ready for analysis"})
		return
	}

	result := s.service.Run(c.Request.Context(), appRequest(req, ds.Columns, records))
	result.DatasetID = ds.ID

	if err := s.results.Save(c.Request.Context(), ds.ID, result); err != nil {
		s.log.Error("saving result %s: %v", result.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save result"})
		return
	}

	s.log.Info("analysis %s on dataset %s: kind=%s failed=%t", result.ID, ds.ID, req.Kind, result.Failed())
	c.JSON(http.StatusOK, result)
}

// handleDashboard runs a batch of analyses concurrently over one dataset.
// With no explicit kinds the full suite runs.
func (s *Server) handleDashboard(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dataset id"})
		return
	}

	var req dashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	kinds := req.Kinds
	if len(kinds) == 0 {
		kinds = analysis.AllKinds
	}
	for _, kind := range kinds {
		if !kind.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown analysis kind: " + string(kind)})
			return
		}
	}

	ds, records, err := s.datasets.Get(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
			return
		}
		s.log.Error("fetching dataset %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dataset"})
		return
	}
	if !ds.IsReady() {
		c.JSON(http.StatusConflict, gin.H{"error": "dataset is not ready for analysis"})
		return
	}

	results := s.service.RunDashboard(c.Request.Context(), records, ds.Columns, roleHints(req.Hints), kinds)
	for i := range results {
		results[i].DatasetID = ds.ID
		if err := s.results.Save(c.Request.Context(), ds.ID, results[i]); err != nil {
			s.log.Error("saving result %s: %v", results[i].ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save results"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

func (s *Server) handleListAnalyses(c *gin.Context) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dataset id"})
		return
	}

	list, err := s.results.ListByDataset(c.Request.Context(), id)
	if err != nil {
		s.log.Error("listing results for dataset %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list results"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": list, "count": len(list)})
}

func (s *Server) handleGetAnalysis(c *gin.Context) {
	id, err := core.ParseAnalysisID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid analysis id"})
		return
	}

	result, err := s.results.Get(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		s.log.Error("fetching analysis %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch analysis"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleAnalysisReport renders a stored result as a standalone HTML digest.
func (s *Server) handleAnalysisReport(c *gin.Context) {
	id, err := core.ParseAnalysisID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid analysis id"})
		return
	}

	result, err := s.results.Get(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		s.log.Error("fetching analysis %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch analysis"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(report.HTML(*result)))
}
