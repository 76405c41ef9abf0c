package routes

import (
	"log"
	_ "mecanica_workflow/docs"
	"mecanica_workflow/internal/adapter/http/handlers"
	"mecanica_workflow/internal/infrastructure/config"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router exposes.
type Handlers struct {
	WorkOrders  *handlers.WorkOrderHandler
	Assignments *handlers.AssignmentHandler
	Quotations  *handlers.QuotationHandler
	Invoices    *handlers.InvoiceHandler
	WorkLogs    *handlers.WorkLogHandler
}

// Run will start the server
func Run(cfg config.Config) {
	router := NewRouter(buildHandlers(cfg))

	log.Printf("[routes] listening port=%s storage=%s", cfg.Port, cfg.StorageDriver)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, h.WorkOrders, h.Assignments, h.WorkLogs)
	addBillingRoutes(v1, h.Quotations, h.Invoices)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// Ping godoc
// @Summary		Liveness check
// @Tags			Health
// @Produce		json
// @Success		200	{object}	map[string]string
// @Router			/ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", ping)
}
