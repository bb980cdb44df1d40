package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/futureproof/careerguide/internal/api/handler"
	"github.com/futureproof/careerguide/internal/api/middleware"
	"github.com/futureproof/careerguide/internal/core/ports"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Sessions        ports.SessionService
	Assessments     ports.AssessmentService
	Recommendations ports.RecommendationService
	Roadmaps        ports.RoadmapService
	Progress        ports.ProgressService
	Portfolio       ports.PortfolioService
	Dashboard       ports.DashboardService
	Directory       ports.DirectoryService
	Chat            ports.ChatService
	// Dependencies is checked by the readiness probe, keyed by name.
	Dependencies map[string]handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("careerguide_http"))

	// --- Handlers ---
	chatHandler := handler.NewChatHandler(svc.Chat, log)
	recommendationHandler := handler.NewRecommendationHandler(svc.Recommendations)
	sessionHandler := handler.NewSessionHandler(svc.Sessions)
	assessmentHandler := handler.NewAssessmentHandler(svc.Assessments)
	roadmapHandler := handler.NewRoadmapHandler(svc.Roadmaps)
	progressHandler := handler.NewProgressHandler(svc.Progress)
	portfolioHandler := handler.NewPortfolioHandler(svc.Portfolio)
	dashboardHandler := handler.NewDashboardHandler(svc.Dashboard)
	directoryHandler := handler.NewDirectoryHandler(svc.Directory)
	sessionMiddleware := middleware.Session(svc.Sessions)

	// --- Public routes ---
	e.POST("/chat", chatHandler.Ask)
	e.POST("/recommendations", recommendationHandler.Recommend)

	// --- Session-scoped routes ---
	v1 := e.Group("/v1")
	v1.POST("/sessions", sessionHandler.Create)

	s := v1.Group("", sessionMiddleware)
	s.POST("/assessment", assessmentHandler.Submit)
	s.GET("/assessment", assessmentHandler.Get)

	s.GET("/roles", directoryHandler.Roles)
	s.GET("/roadmaps/:role", roadmapHandler.Get)
	s.GET("/roadmaps/:role/view", roadmapHandler.View)
	s.POST("/roadmaps/:role/milestones/:milestone/toggle", roadmapHandler.ToggleMilestone)
	s.PUT("/roadmaps/:role/stage", roadmapHandler.SetStage)

	s.GET("/progress", progressHandler.List)
	s.GET("/progress/:role", progressHandler.Get)
	s.POST("/progress/:role/milestones", progressHandler.SaveMilestone)
	s.POST("/sessions/log", progressHandler.LogSession)
	s.GET("/hours", progressHandler.Hours)

	s.GET("/portfolio", portfolioHandler.List)
	s.POST("/portfolio", portfolioHandler.Create)
	s.GET("/portfolio/stats", portfolioHandler.Stats)
	s.PUT("/portfolio/:id", portfolioHandler.Update)
	s.DELETE("/portfolio/:id", portfolioHandler.Delete)

	s.GET("/dashboard", dashboardHandler.Get)

	s.GET("/mentors", directoryHandler.Mentors)
	s.GET("/mentors/connected", directoryHandler.Connected)
	s.POST("/mentors/:id/connect", directoryHandler.Connect)

	// --- Operational (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(svc.Dependencies)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
