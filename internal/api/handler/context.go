package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/api/middleware"
)

// ctxNamespace extracts the storage namespace injected by the Session
// middleware. An empty value means the middleware did not run.
func ctxNamespace(c echo.Context) (string, error) {
	ns, _ := c.Get(middleware.NamespaceKey).(string)
	if ns == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return ns, nil
}

func invalidPayload(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
}
