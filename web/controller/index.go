package controller

import (
	"errors"
	"net/http"

	"github.com/Jivang0/mlproject/logger"
	"github.com/Jivang0/mlproject/web/service"
	"github.com/Jivang0/mlproject/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the landing page and the account routes.
type IndexController struct {
	BaseController

	settingService service.SettingService
	userService    service.UserService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/logout", a.logout)

	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)

	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
}

// index renders the landing page; logged-in users go straight to the form.
func (a *IndexController) index(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"predict")
		return
	}
	html(c, "index.html", "pages.index.title", nil)
}

func (a *IndexController) registerPage(c *gin.Context) {
	html(c, "register.html", "pages.register.title", nil)
}

// register creates a new account. A duplicate email re-renders the form with
// a conflict message and leaves the store unchanged.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm

	if err := c.ShouldBind(&form); err != nil {
		html(c, "register.html", "pages.register.title", gin.H{
			"message": I18nWeb(c, "pages.register.emptyField"),
		})
		return
	}
	if form.Name == "" || form.Email == "" || form.Password == "" {
		html(c, "register.html", "pages.register.title", gin.H{
			"message": I18nWeb(c, "pages.register.emptyField"),
		})
		return
	}

	_, err := a.userService.Register(form.Name, form.Email, form.Password)
	if errors.Is(err, service.ErrUserExists) {
		html(c, "register.html", "pages.register.title", gin.H{
			"message": I18nWeb(c, "pages.register.userExists"),
		})
		return
	} else if err != nil {
		logger.Warning("register err:", err)
		html(c, "register.html", "pages.register.title", gin.H{
			"message": I18nWeb(c, "pages.register.failed"),
		})
		return
	}

	logger.Infof("%s registered successfully, IP: %s", form.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, c.GetString("base_path")+"login")
}

func (a *IndexController) loginPage(c *gin.Context) {
	html(c, "login.html", "pages.login.title", nil)
}

// login handles user authentication and session creation.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "pages.login.title", gin.H{
			"message": I18nWeb(c, "pages.login.emptyField"),
		})
		return
	}
	if form.Email == "" || form.Password == "" {
		html(c, "login.html", "pages.login.title", gin.H{
			"message": I18nWeb(c, "pages.login.emptyField"),
		})
		return
	}

	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		logger.Warningf("wrong credentials for %q, IP: %q", form.Email, getRemoteIp(c))
		html(c, "login.html", "pages.login.title", gin.H{
			"message": I18nWeb(c, "pages.login.invalidCredentials"),
		})
		return
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("Unable to get session's max age from DB")
	}
	if err := session.SetMaxAge(c, sessionMaxAge*60); err != nil {
		logger.Warning("Unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, c.GetString("base_path")+"predict")
}

// logout clears the session and redirects to the login page.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out successfully", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"login")
}
