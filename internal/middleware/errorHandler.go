package middleware

import (
	"net/http"

	"github.com/anhtri22303/uni-club-sub009/internal/errdef"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the Gin context into the JSON failure shape the
// front-end renders inline. Every failure body carries at least {success: false, error}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}
		if c.Writer.Written() {
			return
		}

		// nolint:gocritic
		if errdef.IsBadRequest(err) {
			abortWithError(c, http.StatusBadRequest, err)
		} else if errdef.IsNotFound(err) {
			abortWithError(c, http.StatusNotFound, err)
		} else if errdef.IsUnsupportedMediaType(err) {
			abortWithError(c, http.StatusUnsupportedMediaType, err)
		} else if errdef.IsServiceUnavailable(err) {
			abortWithError(c, http.StatusServiceUnavailable, err)
		} else {
			id, _ := GetCorrelationID(c.Request.Context())
			message := "something went wrong. We'll look into it if you send us the id " + id
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": message})
		}
	}
}

func abortWithError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
