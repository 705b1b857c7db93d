package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luk14236/food-advice-agent/controllers"
	"github.com/luk14236/food-advice-agent/middlewares"
	"github.com/luk14236/food-advice-agent/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	llm := services.NewLLMService()
	answerSvc := services.NewAnswerService(llm)
	askSvc := services.NewAskService(llm)
	simulationSvc := services.NewSimulationService(db, answerSvc, askSvc)
	reportSvc := services.NewReportService(db)

	answerCtl := controllers.NewAnswerController(answerSvc)
	askCtl := controllers.NewAskController(askSvc)
	simulationCtl := controllers.NewSimulationController(simulationSvc)
	reportCtl := controllers.NewReportController(reportSvc)

	// Open liveness probe
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Protected data routes
	api := r.Group("/")
	api.Use(middlewares.APIKeyMiddleware())
	{
		api.POST("/answer", answerCtl.Answer)
		api.POST("/ask", askCtl.Ask)
		api.POST("/simulate", simulationCtl.Simulate)
		api.GET("/reports/stats", reportCtl.Stats)
	}

	return r
}
