// Package api provides the HTTP API for the generation orchestrator and
// the storage entities.
package api

import (
	"context"
	"net"
	"net/http"

	"github.com/amiantos/ursceal/pkg/provider"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/amiantos/ursceal/pkg/chub"
	"github.com/amiantos/ursceal/pkg/config"
	"github.com/amiantos/ursceal/pkg/generation"
	"github.com/amiantos/ursceal/pkg/services"
)

// Generator dispatches a generation request onto a provider stream. The
// orchestrator implements it; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (<-chan provider.StreamEvent, error)
}

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *config.Config

	stories      *services.StoryService
	characters   *services.CharacterService
	lorebooks    *services.LorebookService
	presets      *services.PresetService
	settings     *services.SettingsService
	history      *services.HistoryService
	orchestrator Generator
	importer     *chub.Importer
}

// NewServer creates a new API server with Echo v5.
func NewServer(
	cfg *config.Config,
	stories *services.StoryService,
	characters *services.CharacterService,
	lorebooks *services.LorebookService,
	presets *services.PresetService,
	settings *services.SettingsService,
	history *services.HistoryService,
	orchestrator Generator,
) *Server {
	e := echo.New()

	s := &Server{
		echo:         e,
		cfg:          cfg,
		stories:      stories,
		characters:   characters,
		lorebooks:    lorebooks,
		presets:      presets,
		settings:     settings,
		history:      history,
		orchestrator: orchestrator,
		importer:     chub.NewImporter(),
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// SetImporter replaces the chub importer, used by tests.
func (s *Server) SetImporter(imp *chub.Importer) { s.importer = imp }

func (s *Server) setupMiddleware() {
	// Card uploads are the largest request body; cap everything at 16 MB.
	s.echo.Use(middleware.BodyLimit(16 * 1024 * 1024))

	if len(s.cfg.Security.CORS.Origins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.cfg.Security.CORS.Origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		}))
	}

	// Streaming responses must not pass through compression; the gzip
	// middleware buffers output and defeats real-time token display.
	s.echo.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: func(c *echo.Context) bool {
			return isStreamingPath(c.Request().URL.Path)
		},
	}))
}

func isStreamingPath(path string) bool {
	switch path {
	case "/api/generate", "/api/continue", "/api/continue-with-instruction", "/api/rewrite-third-person":
		return true
	}
	return false
}

// setupRoutes registers all API routes.
func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler)

	api := s.echo.Group("/api")

	// Stories and their membership, content, and history.
	api.POST("/stories", s.createStoryHandler)
	api.GET("/stories", s.listStoriesHandler)
	api.GET("/stories/:id", s.getStoryHandler)
	api.PUT("/stories/:id", s.updateStoryHandler)
	api.DELETE("/stories/:id", s.deleteStoryHandler)
	api.PUT("/stories/:id/content", s.updateContentHandler)
	api.GET("/stories/:id/history", s.historyStatusHandler)
	api.POST("/stories/:id/undo", s.undoHandler)
	api.POST("/stories/:id/redo", s.redoHandler)
	api.POST("/stories/:id/characters", s.addStoryCharacterHandler)
	api.DELETE("/stories/:id/characters/:characterId", s.removeStoryCharacterHandler)
	api.GET("/stories/:id/characters", s.listStoryCharactersHandler)
	api.POST("/stories/:id/lorebooks", s.addStoryLorebookHandler)
	api.DELETE("/stories/:id/lorebooks/:lorebookId", s.removeStoryLorebookHandler)
	api.GET("/stories/:id/lorebooks", s.listStoryLorebooksHandler)

	// Characters.
	api.POST("/characters", s.createCharacterHandler)
	api.GET("/characters", s.listCharactersHandler)
	api.GET("/characters/:id", s.getCharacterHandler)
	api.PUT("/characters/:id", s.updateCharacterHandler)
	api.DELETE("/characters/:id", s.deleteCharacterHandler)
	api.POST("/characters/upload", s.uploadCardHandler)

	// Lorebooks.
	api.POST("/lorebooks", s.createLorebookHandler)
	api.GET("/lorebooks", s.listLorebooksHandler)
	api.GET("/lorebooks/:id", s.getLorebookHandler)
	api.PUT("/lorebooks/:id", s.updateLorebookHandler)
	api.DELETE("/lorebooks/:id", s.deleteLorebookHandler)
	api.GET("/lorebooks/:id/entries", s.listEntriesHandler)
	api.PUT("/lorebooks/:id/entries", s.saveEntriesHandler)
	api.POST("/lorebooks/import", s.importLorebookHandler)

	// Presets.
	api.POST("/presets", s.createPresetHandler)
	api.GET("/presets", s.listPresetsHandler)
	api.GET("/presets/:id", s.getPresetHandler)
	api.PUT("/presets/:id", s.updatePresetHandler)
	api.DELETE("/presets/:id", s.deletePresetHandler)
	api.POST("/presets/:id/default", s.setDefaultPresetHandler)
	api.GET("/presets/:id/capabilities", s.presetCapabilitiesHandler)
	api.GET("/presets/:id/models", s.presetModelsHandler)

	// Settings.
	api.GET("/settings", s.getSettingsHandler)
	api.PUT("/settings", s.updateSettingsHandler)

	// Generation: the unified endpoint plus its thin named aliases.
	api.POST("/generate", s.generateHandler)
	api.POST("/continue", s.aliasHandler("continue"))
	api.POST("/continue-with-instruction", s.aliasHandler("custom"))
	api.POST("/rewrite-third-person", s.aliasHandler("rewrite-third-person"))

	// External import.
	api.POST("/import/chub", s.chubImportHandler)
}

// Start starts the HTTP server on the configured address (blocking).
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener starts the HTTP server on a pre-created listener.
// Used by test infrastructure to serve on a random OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.echo}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the HTTP handler for tests.
func (s *Server) Handler() http.Handler { return s.echo }
