package api

import (
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/amiantos/ursceal/pkg/cardparser"
	"github.com/amiantos/ursceal/pkg/services"
)

// createCharacterHandler handles POST /api/characters.
func (s *Server) createCharacterHandler(c *echo.Context) error {
	var req CreateCharacterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	char, err := s.characters.CreateCharacter(c.Request().Context(), services.CreateCharacterInput{
		Name:                    req.Name,
		Description:             req.Description,
		Personality:             req.Personality,
		Scenario:                req.Scenario,
		FirstMes:                req.FirstMes,
		MesExample:              req.MesExample,
		SystemPrompt:            req.SystemPrompt,
		PostHistoryInstructions: req.PostHistoryInstructions,
		AlternateGreetings:      req.AlternateGreetings,
		Tags:                    req.Tags,
		Creator:                 req.Creator,
		CharacterVersion:        req.CharacterVersion,
		Extensions:              req.Extensions,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, char)
}

// listCharactersHandler handles GET /api/characters.
func (s *Server) listCharactersHandler(c *echo.Context) error {
	chars, err := s.characters.ListCharacters(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, chars)
}

// getCharacterHandler handles GET /api/characters/:id.
func (s *Server) getCharacterHandler(c *echo.Context) error {
	char, err := s.characters.GetCharacter(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, char)
}

// updateCharacterHandler handles PUT /api/characters/:id.
func (s *Server) updateCharacterHandler(c *echo.Context) error {
	var req UpdateCharacterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	char, err := s.characters.UpdateCharacter(c.Request().Context(), c.Param("id"), services.UpdateCharacterInput{
		Name:                    req.Name,
		Description:             req.Description,
		Personality:             req.Personality,
		Scenario:                req.Scenario,
		FirstMes:                req.FirstMes,
		MesExample:              req.MesExample,
		SystemPrompt:            req.SystemPrompt,
		PostHistoryInstructions: req.PostHistoryInstructions,
		AlternateGreetings:      req.AlternateGreetings,
		Tags:                    req.Tags,
		Extensions:              req.Extensions,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, char)
}

// deleteCharacterHandler handles DELETE /api/characters/:id.
func (s *Server) deleteCharacterHandler(c *echo.Context) error {
	if err := s.characters.DeleteCharacter(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// uploadCardHandler handles POST /api/characters/upload. The body is the
// raw card PNG; an embedded character_book is saved as its own lorebook.
func (s *Server) uploadCardHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	image, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	card, err := cardparser.Parse(image)
	if err != nil {
		return mapServiceError(err)
	}

	lorebookID := ""
	if !card.Data.CharacterBook.IsEmpty() {
		lb, err := s.lorebooks.CreateFromCharacterBook(ctx, card.Data.Name, card.Data.CharacterBook)
		if err != nil {
			return mapServiceError(err)
		}
		lorebookID = lb.ID
	}

	char, err := s.characters.CreateFromCard(ctx, card, lorebookID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &ImportResponse{
		CharacterID: char.ID,
		Name:        char.Name,
		LorebookID:  lorebookID,
	})
}
