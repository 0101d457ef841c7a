package v1

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/support-api/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/message", handler.PostMessage)
	router.GET("/history", handler.GetHistory)
}

func registerFAQRoutes(router gin.IRoutes, handler *handlers.FAQHandler) {
	router.GET("/faq", handler.List)
}
