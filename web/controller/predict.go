package controller

import (
	"fmt"

	"github.com/Jivang0/mlproject/logger"
	"github.com/Jivang0/mlproject/web/service"
	"github.com/Jivang0/mlproject/web/session"

	"github.com/gin-gonic/gin"
)

// PredictController serves the session-gated prediction form and dashboard.
type PredictController struct {
	BaseController

	predictionService *service.PredictionService
	serverService     service.ServerService
}

// NewPredictController creates the controller and registers its guarded routes.
func NewPredictController(g *gin.RouterGroup, predictionService *service.PredictionService) *PredictController {
	a := &PredictController{predictionService: predictionService}
	a.initRouter(g)
	return a
}

func (a *PredictController) initRouter(g *gin.RouterGroup) {
	g = g.Group("")
	g.Use(a.checkLogin)

	g.GET("/predict", a.predictPage)
	g.POST("/predict", a.predict)
	g.GET("/dashboard", a.dashboard)
}

func (a *PredictController) predictPage(c *gin.Context) {
	html(c, "home.html", "pages.predict.title", nil)
}

// predict parses the seven form fields, invokes the pipeline once and
// renders the resulting score. Malformed scores reject the request.
// AJAX callers get the same outcomes as JSON.
func (a *PredictController) predict(c *gin.Context) {
	var form service.PredictionForm
	if err := c.ShouldBind(&form); err != nil {
		if isAjax(c) {
			jsonMsg(c, I18nWeb(c, "pages.predict.invalidScore"), err)
			return
		}
		html(c, "home.html", "pages.predict.title", gin.H{
			"message": I18nWeb(c, "pages.predict.invalidScore"),
		})
		return
	}

	features, err := a.predictionService.ParseFeatures(form)
	if err != nil {
		logger.Warning("parse prediction input err:", err)
		if isAjax(c) {
			jsonMsg(c, I18nWeb(c, "pages.predict.invalidScore"), err)
			return
		}
		html(c, "home.html", "pages.predict.title", gin.H{
			"message": I18nWeb(c, "pages.predict.invalidScore"),
		})
		return
	}

	result, err := a.predictionService.Predict(features)
	if err != nil {
		logger.Warning("predict err:", err)
		if isAjax(c) {
			jsonMsg(c, I18nWeb(c, "pages.predict.failed"), err)
			return
		}
		html(c, "home.html", "pages.predict.title", gin.H{
			"message": I18nWeb(c, "pages.predict.failed"),
		})
		return
	}

	if isAjax(c) {
		jsonMsgObj(c, I18nWeb(c, "pages.predict.result"), result, nil)
		return
	}
	html(c, "home.html", "pages.predict.title", gin.H{
		"results": fmt.Sprintf("%.2f", result),
	})
}

// dashboard shows the current identity plus a host status snapshot.
func (a *PredictController) dashboard(c *gin.Context) {
	user := session.GetLoginUser(c)
	html(c, "dashboard.html", "pages.dashboard.title", gin.H{
		"user":   user,
		"status": a.serverService.GetStatus(),
		"served": a.predictionService.Served(),
	})
}
