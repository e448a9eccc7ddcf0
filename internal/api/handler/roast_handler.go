package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roastify/roast-api/internal/api/metrics"
	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

// apologyRoast ships when even the fallback path blows up. Generation must
// always produce output; this is the last resort.
const apologyRoast = "Sorry, I couldn't generate a roast right now. Your beauty is so overwhelming it crashed my system!"

// RoastHandler handles roast generation and history endpoints.
type RoastHandler struct {
	generator ports.GeneratorService
	roasts    ports.RoastService
}

func NewRoastHandler(generator ports.GeneratorService, roasts ports.RoastService) *RoastHandler {
	return &RoastHandler{generator: generator, roasts: roasts}
}

type generateRequest struct {
	Input    string `json:"input" validate:"required"`
	Style    string `json:"style" validate:"required"`
	Language string `json:"language" validate:"required"`
}

type generateResponse struct {
	Roast  string `json:"roast"`
	Source string `json:"source"`
}

type saveRoastRequest struct {
	Content   string `json:"content" validate:"required"`
	Style     string `json:"style" validate:"required"`
	Language  string `json:"language" validate:"required"`
	ImageURL  string `json:"imageUrl"`
	UserInput string `json:"userInput"`
}

type roastResponse struct {
	Message string        `json:"message,omitempty"`
	Roast   *domain.Roast `json:"roast"`
}

type roastListResponse struct {
	Roasts []domain.Roast `json:"roasts"`
}

type reactionRequest struct {
	ReactionType string `json:"reactionType" validate:"required"`
}

type ratingRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// Generate produces a roast for the given input, style and language. This
// endpoint never fails past validation: any generation failure resolves to a
// canned apology tagged "error".
//
// @Summary      Generate a roast
// @Tags         roasts
// @Accept       json
// @Produce      json
// @Param        body  body      generateRequest  true  "Generation parameters"
// @Success      200   {object}  generateResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /roast/generate [post]
func (h *RoastHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Input == "" || req.Style == "" || req.Language == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required fields: input, style, language")
	}

	roast, source := h.safeGenerate(c, req)
	metrics.RoastsGeneratedTotal.WithLabelValues(string(source), req.Style).Inc()

	return c.JSON(http.StatusOK, generateResponse{Roast: roast, Source: string(source)})
}

// safeGenerate keeps a panic anywhere under generation from breaking the
// endpoint: the product promise is that it always returns a roast.
func (h *RoastHandler) safeGenerate(c echo.Context, req generateRequest) (roast string, source domain.Source) {
	defer func() {
		if recover() != nil {
			roast, source = apologyRoast, domain.SourceError
		}
	}()
	return h.generator.Generate(c.Request().Context(), req.Input, req.Style, req.Language)
}

// Save stores a generated roast in the caller's history.
//
// @Summary      Save a roast
// @Tags         roasts
// @Accept       json
// @Produce      json
// @Param        body  body      saveRoastRequest  true  "Roast to save"
// @Success      200   {object}  roastResponse
// @Failure      400   {object}  map[string]string
// @Router       /roasts [post]
func (h *RoastHandler) Save(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req saveRoastRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	roast, err := h.roasts.Save(c.Request().Context(), ports.SaveRoastInput{
		UserID:    userID,
		Content:   req.Content,
		Style:     req.Style,
		Language:  req.Language,
		ImageURL:  req.ImageURL,
		UserInput: req.UserInput,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, roastResponse{Message: "Roast saved successfully", Roast: roast})
}

// List returns the caller's roast history, newest first.
//
// @Summary      List the current user's roasts
// @Tags         roasts
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of roasts (default 10)"
// @Success      200    {object}  roastListResponse
// @Router       /roasts [get]
func (h *RoastHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	roasts, err := h.roasts.ListByUser(c.Request().Context(), userID, limit)
	if err != nil {
		return err
	}
	if roasts == nil {
		// Empty history serializes as [], not null.
		roasts = []domain.Roast{}
	}
	return c.JSON(http.StatusOK, roastListResponse{Roasts: roasts})
}

// React increments one of a roast's reaction counters.
//
// @Summary      React to a roast
// @Tags         roasts
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Roast ID"
// @Param        body  body      reactionRequest  true  "Reaction type: fire, laugh, or cry"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /roasts/{id}/reaction [post]
func (h *RoastHandler) React(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req reactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	reaction := domain.ReactionType(req.ReactionType)
	if err := h.roasts.React(c.Request().Context(), c.Param("id"), reaction); err != nil {
		return err
	}

	metrics.ReactionsTotal.WithLabelValues(string(reaction)).Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Reaction updated successfully"})
}

// Rate sets a roast's rating (1-5).
//
// @Summary      Rate a roast
// @Tags         roasts
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Roast ID"
// @Param        body  body      ratingRequest  true  "Rating between 1 and 5"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /roasts/{id}/rating [put]
func (h *RoastHandler) Rate(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.roasts.Rate(c.Request().Context(), c.Param("id"), req.Rating); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Rating updated successfully"})
}

// Delete removes one of the caller's own roasts.
//
// @Summary      Delete a roast
// @Tags         roasts
// @Produce      json
// @Param        id  path  string  true  "Roast ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /roasts/{id} [delete]
func (h *RoastHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.roasts.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Roast deleted successfully"})
}
