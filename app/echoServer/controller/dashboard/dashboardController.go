package dashboard

import (
	"log/slog"
	"net/http"

	dashboardsvc "lendify/service/dashboard"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc dashboardsvc.Service
	Log *slog.Logger
}

// GET /v1/dashboard/summary
func (h *Controller) Summary(c echo.Context) error {
	sum, err := h.Svc.Summary(c.Request().Context())
	if err != nil {
		h.Log.Error("dashboard summary", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, sum)
}
