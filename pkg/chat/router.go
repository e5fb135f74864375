package chat

import (
	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, handler Handler) {
	router.GET("/chat/messages", handler.GetMessages)
	router.POST("/chat/messages", handler.SendMessage)
	router.GET("/chat/poll", handler.Poll)
	router.POST("/chat/pin", handler.TogglePin)
	router.POST("/chat/reactions", handler.ToggleReaction)
}
