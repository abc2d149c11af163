package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCTL(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
	})
}
