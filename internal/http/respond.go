package http

import "github.com/gin-gonic/gin"

// respondError emite la forma uniforme {status, detail}. Ningún texto de
// error interno sale por aquí.
func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"status": status, "detail": detail})
}
