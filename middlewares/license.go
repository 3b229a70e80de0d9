package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/foodtruck-order-app/services"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

// LicenseGate consults the authorization collaborator before any ordering
// request is accepted.
func LicenseGate(checker services.LicenseChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.Authorized() {
			utils.RespondError(c, http.StatusForbidden, errors.New("服務未授權，請聯繫管理員"))
			c.Abort()
			return
		}
		c.Next()
	}
}
