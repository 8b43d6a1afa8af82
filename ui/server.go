package ui

import (
	"tajir/app"
	"tajir/internal"
	"tajir/internal/config"
	"tajir/ports"

	"github.com/gin-gonic/gin"
)

// Server exposes the analytics engine over HTTP. Uploads land in the
// dataset repository; analyses run on demand and persist their results.
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	log      *internal.Logger
	datasets ports.DatasetRepository
	results  ports.ResultRepository
	service  *app.AnalysisService
}

// NewServer creates a web server instance over the given repositories
func NewServer(cfg *config.Config, log *internal.Logger, datasets ports.DatasetRepository, results ports.ResultRepository, service *app.AnalysisService) *Server {
	gin.SetMode(cfg.Server.GinMode)
	s := &Server{
		router:   gin.Default(),
		cfg:      cfg,
		log:      log.With("http"),
		datasets: datasets,
		results:  results,
		service:  service,
	}
	s.router.MaxMultipartMemory = cfg.Data.MaxUploadBytes
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")

	api.POST("/datasets", s.handleUpload)
	api.GET("/datasets", s.handleListDatasets)
	api.GET("/datasets/:id", s.handleGetDataset)
	api.DELETE("/datasets/:id", s.handleDeleteDataset)

	api.POST("/datasets/:id/analyses", s.handleAnalyze)
	api.POST("/datasets/:id/dashboard", s.handleDashboard)
	api.GET("/datasets/:id/analyses", s.handleListAnalyses)

	api.GET("/analyses/:id", s.handleGetAnalysis)
	api.GET("/analyses/:id/report", s.handleAnalysisReport)

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// Start runs the server on the configured port, blocking until shutdown
func (s *Server) Start() error {
	addr := ":" + s.cfg.Server.Port
	s.log.Info("listening on %s", addr)
	return s.router.Run(addr)
}
