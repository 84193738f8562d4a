package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/amiantos/ursceal/ent"
	"github.com/amiantos/ursceal/pkg/services"
)

// createStoryHandler handles POST /api/stories.
func (s *Server) createStoryHandler(c *echo.Context) error {
	var req CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.stories.CreateStory(c.Request().Context(), services.CreateStoryInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, st)
}

// listStoriesHandler handles GET /api/stories.
func (s *Server) listStoriesHandler(c *echo.Context) error {
	stories, err := s.stories.ListStories(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, stories)
}

// getStoryHandler handles GET /api/stories/:id.
func (s *Server) getStoryHandler(c *echo.Context) error {
	st, err := s.stories.GetStory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, st)
}

// updateStoryHandler handles PUT /api/stories/:id.
func (s *Server) updateStoryHandler(c *echo.Context) error {
	var req UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.stories.UpdateStory(c.Request().Context(), c.Param("id"), services.UpdateStoryInput{
		Title:          req.Title,
		Description:    req.Description,
		PersonaID:      req.PersonaID,
		ConfigPresetID: req.ConfigPresetID,
		NeedsRewrite:   req.NeedsRewrite,
		AvatarWindows:  req.AvatarWindows,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, st)
}

// deleteStoryHandler handles DELETE /api/stories/:id.
func (s *Server) deleteStoryHandler(c *echo.Context) error {
	if err := s.stories.DeleteStory(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// updateContentHandler handles PUT /api/stories/:id/content, answering
// with the post-write undo/redo status.
func (s *Server) updateContentHandler(c *echo.Context) error {
	var req UpdateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := s.stories.UpdateStoryContent(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// historyStatusHandler handles GET /api/stories/:id/history.
func (s *Server) historyStatusHandler(c *echo.Context) error {
	status, err := s.history.GetHistoryStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// undoRedoResponse reports the applied snapshot plus fresh availability.
type undoRedoResponse struct {
	Content *string                 `json:"content"`
	Status  *services.HistoryStatus `json:"status"`
}

// undoHandler handles POST /api/stories/:id/undo.
func (s *Server) undoHandler(c *echo.Context) error {
	return s.stepHistory(c, s.history.Undo)
}

// redoHandler handles POST /api/stories/:id/redo.
func (s *Server) redoHandler(c *echo.Context) error {
	return s.stepHistory(c, s.history.Redo)
}

func (s *Server) stepHistory(c *echo.Context, step func(ctx context.Context, storyID string) (*ent.HistoryEntry, error)) error {
	ctx := c.Request().Context()
	storyID := c.Param("id")

	entry, err := step(ctx, storyID)
	if err != nil {
		return mapServiceError(err)
	}

	status, err := s.history.GetHistoryStatus(ctx, storyID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := undoRedoResponse{Status: status}
	if entry != nil {
		resp.Content = &entry.Content
	}
	return c.JSON(http.StatusOK, resp)
}

// addStoryCharacterHandler handles POST /api/stories/:id/characters.
func (s *Server) addStoryCharacterHandler(c *echo.Context) error {
	var req MembershipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.CharacterID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "characterId is required")
	}
	if err := s.stories.AddCharacter(c.Request().Context(), c.Param("id"), req.CharacterID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// removeStoryCharacterHandler handles DELETE /api/stories/:id/characters/:characterId.
func (s *Server) removeStoryCharacterHandler(c *echo.Context) error {
	if err := s.stories.RemoveCharacter(c.Request().Context(), c.Param("id"), c.Param("characterId")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listStoryCharactersHandler handles GET /api/stories/:id/characters.
func (s *Server) listStoryCharactersHandler(c *echo.Context) error {
	chars, err := s.stories.StoryCharacters(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, chars)
}

// addStoryLorebookHandler handles POST /api/stories/:id/lorebooks.
func (s *Server) addStoryLorebookHandler(c *echo.Context) error {
	var req MembershipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.LorebookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lorebookId is required")
	}
	if err := s.stories.AddLorebook(c.Request().Context(), c.Param("id"), req.LorebookID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// removeStoryLorebookHandler handles DELETE /api/stories/:id/lorebooks/:lorebookId.
func (s *Server) removeStoryLorebookHandler(c *echo.Context) error {
	if err := s.stories.RemoveLorebook(c.Request().Context(), c.Param("id"), c.Param("lorebookId")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listStoryLorebooksHandler handles GET /api/stories/:id/lorebooks.
func (s *Server) listStoryLorebooksHandler(c *echo.Context) error {
	lbs, err := s.stories.StoryLorebooks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, lbs)
}
