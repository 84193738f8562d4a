package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// chubImportHandler handles POST /api/import/chub: fetch the card archive,
// save the character, and save any bundled lorebook.
func (s *Server) chubImportHandler(c *echo.Context) error {
	var req ChubImportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url is required")
	}

	ctx := c.Request().Context()
	card, _, err := s.importer.Import(ctx, req.URL)
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
