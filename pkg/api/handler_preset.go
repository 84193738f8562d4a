package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/amiantos/ursceal/pkg/provider"
	"github.com/amiantos/ursceal/pkg/services"
)

func presetInput(req PresetRequest) services.PresetInput {
	return services.PresetInput{
		Name:               req.Name,
		Provider:           req.Provider,
		APIConfig:          req.APIConfig,
		GenerationSettings: req.GenerationSettings,
		LorebookSettings:   req.LorebookSettings,
		PromptTemplates:    req.PromptTemplates,
	}
}

// createPresetHandler handles POST /api/presets.
func (s *Server) createPresetHandler(c *echo.Context) error {
	var req PresetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := s.presets.CreatePreset(c.Request().Context(), presetInput(req))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

// listPresetsHandler handles GET /api/presets.
func (s *Server) listPresetsHandler(c *echo.Context) error {
	presets, err := s.presets.ListPresets(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, presets)
}

// getPresetHandler handles GET /api/presets/:id.
func (s *Server) getPresetHandler(c *echo.Context) error {
	p, err := s.presets.GetPreset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// updatePresetHandler handles PUT /api/presets/:id.
func (s *Server) updatePresetHandler(c *echo.Context) error {
	var req PresetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := s.presets.UpdatePreset(c.Request().Context(), c.Param("id"), presetInput(req))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// deletePresetHandler handles DELETE /api/presets/:id.
func (s *Server) deletePresetHandler(c *echo.Context) error {
	if err := s.presets.DeletePreset(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// presetCapabilitiesHandler handles GET /api/presets/:id/capabilities,
// reporting what the preset's back-end can do.
func (s *Server) presetCapabilitiesHandler(c *echo.Context) error {
	p, err := s.presets.GetPreset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	prov, err := provider.ForPreset(string(p.Provider), p.APIConfig)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, prov.Capabilities())
}

// presetModelsHandler handles GET /api/presets/:id/models for back-ends
// that can enumerate models (currently the horde).
func (s *Server) presetModelsHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	p, err := s.presets.GetPreset(ctx, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	prov, err := provider.ForPreset(string(p.Provider), p.APIConfig)
	if err != nil {
		return mapServiceError(err)
	}
	lister, ok := prov.(provider.ModelLister)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest,
			"provider does not support model listing")
	}
	models, err := lister.ListModels(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models)
}

// setDefaultPresetHandler handles POST /api/presets/:id/default.
func (s *Server) setDefaultPresetHandler(c *echo.Context) error {
	if err := s.presets.SetDefaultPreset(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
