package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"wardrobe/internal/delivery/http/response"
	"wardrobe/internal/domain/entity"
	"wardrobe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecommendationHandler holds dependencies for outfit recommendation handlers.
type RecommendationHandler struct {
	uc      usecase.RecommendationUsecase
	profile usecase.ProfileUsecase
	logger  *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, profile usecase.ProfileUsecase, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		uc:      uc,
		profile: profile,
		logger:  logger,
	}
}

// City and gender are optional, blank fields fall back to the profile.
type generateRecommendationRequest struct {
	City   string `json:"city"`
	Gender string `json:"gender" validate:"omitempty,oneof=male female other"`
}

// An omitted isActive leaves the stored flag untouched.
type updateRecommendationRequest struct {
	IsActive *bool `json:"isActive"`
}

// Generate builds and stores a fresh outfit recommendation for the caller.
func (h *RecommendationHandler) Generate(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req generateRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Blank fields fall back to the caller's stored profile defaults.
	if req.City == "" || req.Gender == "" {
		user, err := h.profile.GetProfile(c.Request().Context(), userID)
		if err != nil {
			return errors.WithStack(err)
		}
		if req.City == "" {
			req.City = user.City
		}
		if req.Gender == "" {
			req.Gender = string(user.Gender)
		}
	}

	rec, err := h.uc.Generate(c.Request().Context(), userID, &usecase.GenerateRecommendationInput{
		City:   req.City,
		Gender: entity.Gender(req.Gender),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRecommendationView(rec), "Recommendation generated successfully")
}

// List returns one page of the caller's recommendation history.
func (h *RecommendationHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := &usecase.ListRecommendationsInput{
		Page:  queryInt(c, "page", 0),
		Limit: queryInt(c, "limit", 0),
	}
	if raw := c.QueryParam("active"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			input.ActiveOnly = v
		}
	}

	page, err := h.uc.List(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pageView{
		Items:      toRecommendationViews(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}, "Recommendations retrieved successfully")
}

// Get returns one of the caller's recommendations by ID.
func (h *RecommendationHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recommendation ID")
	}

	rec, err := h.uc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecommendationView(rec), "Recommendation retrieved successfully")
}

// Update toggles the active flag on one of the caller's recommendations.
func (h *RecommendationHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recommendation ID")
	}

	var req updateRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation input")
	}

	rec, err := h.uc.Update(c.Request().Context(), userID, id, &usecase.UpdateRecommendationInput{
		IsActive: req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecommendationView(rec), "Recommendation updated successfully")
}

// Delete removes one of the caller's recommendations.
func (h *RecommendationHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recommendation ID")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Recommendation deleted"}, "Recommendation deleted successfully")
}

// Regenerate rebuilds a stored recommendation against today's weather,
// reusing the original city and gender.
func (h *RecommendationHandler) Regenerate(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recommendation ID")
	}

	rec, err := h.uc.Regenerate(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRecommendationView(rec), "Recommendation regenerated successfully")
}
