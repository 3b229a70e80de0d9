package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The ordering API always answers HTTP 200 with an "ok" boolean; clients
// branch on the payload, not the status code. Staff endpoints use RespondError
// with real status codes instead.

func RespondOK(c *gin.Context, payload gin.H) {
	body := gin.H{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func RespondFail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"ok": false, "msg": msg})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"ok": false, "msg": err.Error()})
}
