package checkin

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, handler Handler) {
	router.POST("/checkin/token", handler.IssueToken)
	router.POST("/checkin/validate", handler.ValidateToken)
}
