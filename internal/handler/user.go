package handler

import (
	"net/http"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the authenticated user from the request context,
// writing a 401 and returning nil if it is missing.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Not logged in")
		return nil
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Not logged in")
		return nil
	}
	return user
}

// GetMe returns the current user's profile and balance.
func GetMe(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"display_name": user.DisplayName,
			"balance":      util.FormatCents(user.BalanceCent),
			"created_at":   user.CreatedAt,
		},
	})
}
