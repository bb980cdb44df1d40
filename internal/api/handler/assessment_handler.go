package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

// AssessmentHandler stores and returns the session's wizard answers.
type AssessmentHandler struct {
	service ports.AssessmentService
}

func NewAssessmentHandler(service ports.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// Submit handles POST /v1/assessment.
//
// @Summary      Save the career assessment
// @Tags         assessment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.AssessmentInput  true  "Assessment"
// @Success      201   {object}  domain.Assessment
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/assessment [post]
func (h *AssessmentHandler) Submit(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	var in domain.AssessmentInput
	if err := c.Bind(&in); err != nil {
		return invalidPayload(c)
	}

	a, err := h.service.Submit(c.Request().Context(), ns, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// Get handles GET /v1/assessment.
//
// @Summary      Get the saved assessment
// @Tags         assessment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Assessment
// @Failure      404  {object}  map[string]string
// @Router       /v1/assessment [get]
func (h *AssessmentHandler) Get(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	a, err := h.service.Current(c.Request().Context(), ns)
	if err != nil {
		return err
	}
	if a == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "assessment not found"})
	}
	return c.JSON(http.StatusOK, a)
}
