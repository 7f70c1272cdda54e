package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/audit"

	"github.com/gin-gonic/gin"
)

// ColorSchemeHeader is the client hint carrying the OS color scheme
const ColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

type SettingsHandler struct {
	settingsUC domain.SettingsUsecase
	audit      *audit.Logger
}

type UpdateThemeRequest struct {
	DarkMode *bool `json:"dark_mode" binding:"required"`
}

func NewSettingsHandler(public *gin.RouterGroup, settingsUC domain.SettingsUsecase, auditLog *audit.Logger) {
	handler := &SettingsHandler{settingsUC: settingsUC, audit: auditLog}

	theme := public.Group("/settings/theme")
	{
		theme.GET("", handler.GetTheme)
		theme.PUT("", handler.UpdateTheme)
		theme.POST("/toggle", handler.ToggleTheme)
	}
}

// GetTheme godoc
// @Summary      Get theme preference
// @Description  Stored preference, else the Sec-CH-Prefers-Color-Scheme hint, else light
// @Tags         settings
// @Produce      json
// @Param        Sec-CH-Prefers-Color-Scheme  header    string  false  "dark | light"
// @Success      200  {object}  response.Response{data=domain.ThemeSettings}
// @Router       /settings/theme [get]
func (h *SettingsHandler) GetTheme(c *gin.Context) {
	settings, err := h.settingsUC.ResolveTheme(c.Request.Context(), middleware.GetVisitorID(c), colorScheme(c))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Theme retrieved", settings)
}

// UpdateTheme godoc
// @Summary      Set theme preference
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        theme  body      UpdateThemeRequest  true  "Theme"
// @Success      200    {object}  response.Response{data=domain.ThemeSettings}
// @Failure      400    {object}  response.Response
// @Router       /settings/theme [put]
func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("dark_mode is required"))
		return
	}

	settings, err := h.settingsUC.SetDarkMode(c.Request.Context(), middleware.GetVisitorID(c), *req.DarkMode)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	h.logUpdate(c, settings)
	response.Success(c, http.StatusOK, "Theme updated", settings)
}

// ToggleTheme godoc
// @Summary      Toggle theme preference
// @Tags         settings
// @Produce      json
// @Param        Sec-CH-Prefers-Color-Scheme  header    string  false  "dark | light"
// @Success      200  {object}  response.Response{data=domain.ThemeSettings}
// @Router       /settings/theme/toggle [post]
func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	settings, err := h.settingsUC.ToggleTheme(c.Request.Context(), middleware.GetVisitorID(c), colorScheme(c))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	h.logUpdate(c, settings)
	response.Success(c, http.StatusOK, "Theme updated", settings)
}

func (h *SettingsHandler) logUpdate(c *gin.Context, settings domain.ThemeSettings) {
	h.audit.Log(c.Request.Context(), audit.Event{
		Event:     audit.EventThemeUpdated,
		Subject:   audit.HashValue(middleware.GetVisitorID(c)),
		RequestID: middleware.GetRequestID(c),
		Details:   map[string]interface{}{"dark_mode": settings.DarkMode},
	})
}

func colorScheme(c *gin.Context) domain.ColorScheme {
	return domain.ParseColorScheme(c.GetHeader(ColorSchemeHeader))
}
