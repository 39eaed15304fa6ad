package middleware

import (
	"bytes"
	"io"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// requests whose bodies carry credentials are logged without the body
func sensitiveBody(path string) bool {
	switch path {
	case "/api/auth/register", "/api/auth/login", "/api/profile/password":
		return true
	}
	return false
}

// AuditMiddleware records every authenticated API request as an
// AuditLog row. It runs after AuthMiddleware. Bodies of credential
// endpoints are never captured.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint
		if v, ok := c.Get("currentUser"); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}

		// keep the body readable for the handler
		var bodyBytes []byte
		if c.Request.Body != nil && !sensitiveBody(c.Request.URL.Path) {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		// only log requests made by a logged-in user
		if userID == 0 {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			action += " " + string(bodyBytes)
		}

		entry := models.AuditLog{
			UserID:    &userID,
			Path:      path,
			Method:    c.Request.Method,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&entry).Error
	}
}
