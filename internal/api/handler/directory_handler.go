package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

// DirectoryHandler serves the role catalog and the mentor directory.
type DirectoryHandler struct {
	service ports.DirectoryService
}

func NewDirectoryHandler(service ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// Roles handles GET /v1/roles.
//
// @Summary      Browse career roles
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.RoleCard
// @Router       /v1/roles [get]
func (h *DirectoryHandler) Roles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Roles(c.Request().Context()))
}

// Mentors handles GET /v1/mentors.
//
// @Summary      Find mentors
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        expertise  query     string  false  "Expertise substring, case-insensitive"
// @Param        max_rate   query     int     false  "Maximum hourly rate"
// @Success      200        {array}   domain.Mentor
// @Failure      422        {object}  map[string]string
// @Router       /v1/mentors [get]
func (h *DirectoryHandler) Mentors(c echo.Context) error {
	filter := domain.MentorFilter{Expertise: c.QueryParam("expertise")}
	if raw := c.QueryParam("max_rate"); raw != "" {
		rate, err := strconv.Atoi(raw)
		if err != nil || rate < 0 {
			return &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "max_rate", Message: "max_rate must be a non-negative integer"},
			}}
		}
		filter.MaxHourlyRate = rate
	}
	return c.JSON(http.StatusOK, h.service.Mentors(c.Request().Context(), filter))
}

// Connect handles POST /v1/mentors/:id/connect.
//
// @Summary      Connect with a mentor
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Mentor id"
// @Success      200  {array}   domain.Mentor
// @Failure      404  {object}  map[string]string
// @Router       /v1/mentors/{id}/connect [post]
func (h *DirectoryHandler) Connect(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.service.Connect(ctx, ns, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Connected(ctx, ns))
}

// Connected handles GET /v1/mentors/connected.
//
// @Summary      Connected mentors
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Mentor
// @Router       /v1/mentors/connected [get]
func (h *DirectoryHandler) Connected(c echo.Context) error {
	ns, err := ctxNamespace(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.Connected(c.Request().Context(), ns))
}
