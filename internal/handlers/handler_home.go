package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// homeHandler godoc
// @Summary Service banner
// @Description Returns the service name, useful as a liveness probe target
// @Produce plain
// @Success 200 {string} string "agrm backend"
// @Router / [get]
func homeHandler(c *gin.Context) {
	c.String(http.StatusOK, "agrm backend")
}
