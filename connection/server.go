package connection

import (
	"recaptcharelay/controller"
	"recaptcharelay/controller/captcha"
	"recaptcharelay/middleware"
	"recaptcharelay/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(newClient services.ClientFactory) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorMiddleware())

	controller.HealthCTL(router)
	captcha.CaptchaController(router, newClient)

	return router
}

func StartServer() error {
	router := NewRouter(RecaptchaConnection(RecaptchaOptions()...))
	return router.Run()
}
