package captcha

import (
	"net/http"

	"recaptcharelay/dto"
	"recaptcharelay/model"
	"recaptcharelay/services"

	"github.com/gin-gonic/gin"
)

func CaptchaController(router *gin.Engine, newClient services.ClientFactory) {
	router.Any("/", func(c *gin.Context) {
		Assess(c, newClient)
	})
}

func Assess(c *gin.Context, newClient services.ClientFactory) {
	c.Header("Access-Control-Allow-Origin", "*")

	if c.Request.Method == http.MethodOptions {
		c.Header("Access-Control-Allow-Methods", "GET")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
		return
	}

	var query dto.AssessmentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		c.Abort()
		return
	}
	if err := validateQuery(query); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	score, err := services.CreateAssessment(c.Request.Context(), newClient, query.ProjectID, query.SiteKey, query.Token, query.Action)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, dto.ScoreResponse{Score: score})
}

// validateQuery reports the first missing parameter in a fixed order.
func validateQuery(query dto.AssessmentQuery) error {
	params := []struct {
		name  string
		value string
	}{
		{"projectId", query.ProjectID},
		{"siteKey", query.SiteKey},
		{"token", query.Token},
		{"action", query.Action},
	}
	for _, p := range params {
		if p.value == "" {
			return &model.MissingParameterError{Name: p.name}
		}
	}
	return nil
}
