package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/amiantos/ursceal/pkg/services"
)

// getSettingsHandler handles GET /api/settings, seeding the singleton row
// on first access.
func (s *Server) getSettingsHandler(c *echo.Context) error {
	row, err := s.settings.GetSettings(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}

// updateSettingsHandler handles PUT /api/settings.
func (s *Server) updateSettingsHandler(c *echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	row, err := s.settings.UpdateSettings(c.Request().Context(), services.UpdateSettingsInput{
		ShowReasoning:           req.ShowReasoning,
		AutoSave:                req.AutoSave,
		ShowPrompt:              req.ShowPrompt,
		ThirdPerson:             req.ThirdPerson,
		FilterAsterisks:         req.FilterAsterisks,
		IncludeDialogueExamples: req.IncludeDialogueExamples,
		LorebookScanDepth:       req.LorebookScanDepth,
		LorebookTokenBudget:     req.LorebookTokenBudget,
		LorebookRecursionDepth:  req.LorebookRecursionDepth,
		LorebookEnableRecursion: req.LorebookEnableRecursion,
		DefaultPersonaID:        req.DefaultPersonaID,
		DefaultPresetID:         req.DefaultPresetID,
		OnboardingCompleted:     req.OnboardingCompleted,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, row)
}
