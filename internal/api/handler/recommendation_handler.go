package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

// RecommendationHandler serves role recommendations for a submitted assessment.
type RecommendationHandler struct {
	service ports.RecommendationService
}

func NewRecommendationHandler(service ports.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

type recommendationResponse struct {
	Success         bool                        `json:"success"`
	Outcome         domain.Outcome              `json:"outcome"`
	Recommendations []domain.RoleRecommendation `json:"recommendations,omitempty"`
	Assessment      *domain.Assessment          `json:"assessment,omitempty"`
	Demo            bool                        `json:"demo,omitempty"`
	Error           string                      `json:"error,omitempty"`
}

// Recommend handles POST /recommendations.
// A body that cannot be decoded is treated like an invalid assessment and
// yields the degraded fallback set.
//
// @Summary      Recommend career roles
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body  body      domain.AssessmentInput  true  "Assessment"
// @Success      200   {object}  recommendationResponse
// @Failure      500   {object}  recommendationResponse
// @Router       /recommendations [post]
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var in domain.AssessmentInput
	if err := c.Bind(&in); err != nil {
		in = domain.AssessmentInput{}
	}

	res := h.service.Recommend(c.Request().Context(), in)

	switch res.Outcome {
	case domain.OutcomeOK:
		return c.JSON(http.StatusOK, recommendationResponse{
			Success:         true,
			Outcome:         res.Outcome,
			Recommendations: res.Recommendations,
			Assessment:      res.Assessment,
			Demo:            true,
		})
	case domain.OutcomeDegraded:
		return c.JSON(http.StatusOK, recommendationResponse{
			Success:         true,
			Outcome:         res.Outcome,
			Recommendations: res.Recommendations,
			Demo:            true,
			Error:           res.Reason,
		})
	default:
		return c.JSON(http.StatusInternalServerError, recommendationResponse{
			Outcome: domain.OutcomeFailed,
			Error:   res.Reason,
		})
	}
}
