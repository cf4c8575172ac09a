package ginserver

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"propertree/internal/app/analytics"
	"propertree/internal/domain/shared/daterange"
)

type DashboardHTTP interface {
	LandlordDashboard(c *gin.Context)
	AdminDashboard(c *gin.Context)
}

// DashboardHandler serves the landlord and admin KPI dashboards.
type DashboardHandler struct {
	Assembler *analytics.Assembler
	Logger    *slog.Logger
}

func (h DashboardHandler) LandlordDashboard(c *gin.Context) {
	p, ok := requireRole(c, "landlord")
	if !ok {
		return
	}
	window, err := parseWindow(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := h.Assembler.LandlordDashboard(c.Request.Context(), p.ID, window)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("landlord dashboard failed", "landlord_id", p.ID, "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot build dashboard"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h DashboardHandler) AdminDashboard(c *gin.Context) {
	if _, ok := requireRole(c, "admin"); !ok {
		return
	}
	payload, err := h.Assembler.AdminDashboard(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("admin dashboard failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot build dashboard"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

// parseWindow reads the optional start_date/end_date query pair. Either bound
// may be omitted; the assembler fills defaults. A malformed date or an
// inverted pair aborts the request.
func parseWindow(startRaw, endRaw string) (*daterange.Range, error) {
	if startRaw == "" && endRaw == "" {
		return nil, nil
	}
	end := daterange.Day(time.Now())
	start := end.AddDate(0, 0, -30)
	var err error
	if startRaw != "" {
		if start, err = time.Parse(time.DateOnly, startRaw); err != nil {
			return nil, errors.New("invalid start_date, expected YYYY-MM-DD")
		}
	}
	if endRaw != "" {
		if end, err = time.Parse(time.DateOnly, endRaw); err != nil {
			return nil, errors.New("invalid end_date, expected YYYY-MM-DD")
		}
	}
	window, err := daterange.New(start, end)
	if err != nil {
		return nil, err
	}
	return &window, nil
}

var _ DashboardHTTP = (*DashboardHandler)(nil)
