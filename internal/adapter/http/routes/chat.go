package routes

import (
	"laporan_zakat/internal/adapter/http/handlers"
	"laporan_zakat/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathChat      = "/chat"
	PathReports   = "/reports"
	PathOperators = "/operators"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, auth usecase.IAuthUseCase) {
	group := rg.Group(PathAuth)
	{
		group.POST("/login", authHandler.Login)
		group.POST("/logout", handlers.RequireSession(auth), authHandler.Logout)
	}
}

func addChatRoutes(rg *gin.RouterGroup, chatHandler *handlers.ChatHandler) {
	chat := rg.Group(PathChat)
	{
		chat.GET("/messages", chatHandler.GetMessages)
		chat.POST("/messages", chatHandler.SendMessage)
		chat.POST("/attachments", chatHandler.SubmitAttachment)
		chat.GET("/state", chatHandler.GetState)
	}
}

func addRecordRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	rg.GET(PathReports, reportHandler.ListReports)
	rg.GET(PathOperators, reportHandler.ListOperators)
}
