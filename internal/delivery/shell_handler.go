package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const homeRoute = "/homepage"

type ShellHandler struct {
	render *renderer
}

func NewShellHandler(r *renderer) *ShellHandler {
	return &ShellHandler{render: r}
}

func (h *ShellHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, homeRoute)
	})
	router.GET(homeRoute, h.Home)
	router.NoRoute(h.NotFound)
}

func (h *ShellHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.gohtml", h.render.page(c, "Back-office"))
}

func (h *ShellHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.gohtml", h.render.page(c, "Page introuvable"))
}
