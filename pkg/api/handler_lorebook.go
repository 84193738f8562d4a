package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/amiantos/ursceal/pkg/services"
)

// createLorebookHandler handles POST /api/lorebooks.
func (s *Server) createLorebookHandler(c *echo.Context) error {
	var req CreateLorebookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lb, err := s.lorebooks.CreateLorebook(c.Request().Context(), services.CreateLorebookInput{
		Name:              req.Name,
		Description:       req.Description,
		ScanDepth:         req.ScanDepth,
		TokenBudget:       req.TokenBudget,
		RecursiveScanning: req.RecursiveScanning,
		Extensions:        req.Extensions,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, lb)
}

// listLorebooksHandler handles GET /api/lorebooks.
func (s *Server) listLorebooksHandler(c *echo.Context) error {
	lbs, err := s.lorebooks.ListLorebooks(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, lbs)
}

// getLorebookHandler handles GET /api/lorebooks/:id.
func (s *Server) getLorebookHandler(c *echo.Context) error {
	lb, err := s.lorebooks.GetLorebook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, lb)
}

// updateLorebookHandler handles PUT /api/lorebooks/:id.
func (s *Server) updateLorebookHandler(c *echo.Context) error {
	var req UpdateLorebookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lb, err := s.lorebooks.UpdateLorebook(c.Request().Context(), c.Param("id"), services.UpdateLorebookInput{
		Name:              req.Name,
		Description:       req.Description,
		ScanDepth:         req.ScanDepth,
		ClearScanDepth:    req.ClearScanDepth,
		TokenBudget:       req.TokenBudget,
		ClearTokenBudget:  req.ClearTokenBudget,
		RecursiveScanning: req.RecursiveScanning,
		Extensions:        req.Extensions,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, lb)
}

// deleteLorebookHandler handles DELETE /api/lorebooks/:id.
func (s *Server) deleteLorebookHandler(c *echo.Context) error {
	if err := s.lorebooks.DeleteLorebook(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listEntriesHandler handles GET /api/lorebooks/:id/entries.
func (s *Server) listEntriesHandler(c *echo.Context) error {
	entries, err := s.lorebooks.GetEntries(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// saveEntriesHandler handles PUT /api/lorebooks/:id/entries. The save
// replaces all entries and reassigns their ids; the response carries the
// fresh rows so clients can re-key.
func (s *Server) saveEntriesHandler(c *echo.Context) error {
	var req []services.EntryInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entries, err := s.lorebooks.SaveEntries(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// importLorebookHandler handles POST /api/lorebooks/import.
func (s *Server) importLorebookHandler(c *echo.Context) error {
	var req ImportLorebookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Document == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "document is required")
	}

	lb, err := s.lorebooks.ImportLorebook(c.Request().Context(), req.Name, []byte(req.Document))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, lb)
}
