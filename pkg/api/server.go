// Package api exposes the debate lifecycle over HTTP: create/list/search,
// transcript retrieval, live control of running debates, interventions, a
// WebSocket event stream, and health.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/database"
	"github.com/debatelab/agora/pkg/events"
	"github.com/debatelab/agora/pkg/queue"
	"github.com/debatelab/agora/pkg/services"
)

// Server is the HTTP surface. Control endpoints route to the orchestrator of
// a debate running on this replica through the worker pool registry.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	service     *services.DebateService
	workerPool  *queue.WorkerPool
	connManager *events.ConnectionManager

	httpServer *http.Server
}

// NewServer wires the API server and its routes.
func NewServer(cfg *config.Config, dbClient *database.Client, service *services.DebateService, workerPool *queue.WorkerPool, connManager *events.ConnectionManager) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		service:     service,
		workerPool:  workerPool,
		connManager: connManager,
	}
	s.httpServer = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// routes builds the gin engine with all endpoints registered.
func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/debates", s.createDebateHandler)
		v1.GET("/debates", s.listDebatesHandler)
		v1.GET("/debates/search", s.searchDebatesHandler)
		v1.GET("/debates/:id", s.getDebateHandler)
		v1.GET("/debates/:id/transcript", s.getTranscriptHandler)

		v1.POST("/debates/:id/pause", s.pauseDebateHandler)
		v1.POST("/debates/:id/resume", s.resumeDebateHandler)
		v1.POST("/debates/:id/stop", s.stopDebateHandler)
		v1.POST("/debates/:id/continue", s.continueDebateHandler)
		v1.POST("/debates/:id/reassign", s.reassignModelHandler)

		v1.POST("/debates/:id/interventions", s.createInterventionHandler)
		v1.GET("/debates/:id/interventions", s.listInterventionsHandler)
		v1.GET("/debates/:id/interventions/:intervention_id", s.getInterventionHandler)
	}

	return r
}

// Start listens on addr and serves until Shutdown. Blocks.
func (s *Server) Start(addr string) error {
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
