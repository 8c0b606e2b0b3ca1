package blogengine

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}

	password := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.Config.AdminPassword)) != 1 {
		a.loginLimiter.Record(ip)
		c.Logger().Warnf("failed admin login from %s", ip)
		return c.Redirect(http.StatusSeeOther, "/admin/login?error=1")
	}

	if err := setAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (a *App) handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
