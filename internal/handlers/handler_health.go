package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/accounts_service/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type healthStatus struct {
	Status string `json:"status" xml:"status"`
}

func registerHealthRoutes(r *gin.Engine, health portssvc.HealthSvc) {
	r.GET("/health", func(c *gin.Context) {
		if err := health.CheckHealth(c.Request.Context()); err != nil {
			writeServiceError(c, err)
			return
		}
		respond(c, http.StatusOK, healthStatus{Status: "ok"})
	})
}
