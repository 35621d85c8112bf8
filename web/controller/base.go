// Package controller provides the HTTP request handlers of the prediction
// panel: landing, registration, login, the gated prediction form and the
// dashboard.
package controller

import (
	"net/http"

	"github.com/Jivang0/mlproject/logger"
	"github.com/Jivang0/mlproject/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers, including the login guard.
type BaseController struct{}

// checkLogin is a middleware that verifies user authentication. Anonymous
// requests are redirected to the login page and never reach protected handlers.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "pages.login.invalidCredentials"))
		} else {
			c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}

// I18nWeb retrieves a localized message for the web interface.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	anyfunc, funcExists := c.Get("I18n")
	if !funcExists {
		logger.Warning("I18n function not exists in gin context!")
		return ""
	}
	i18nFunc, _ := anyfunc.(func(key string, params ...string) string)
	return i18nFunc(name, params...)
}
