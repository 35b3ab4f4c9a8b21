package routes

import (
	"net/http"

	"salestracker/controllers"
	_ "salestracker/docs"
	"salestracker/metrics"
	"salestracker/response"
	"salestracker/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles what the handlers call into.
type Services struct {
	Revenue services.RevenueServiceInterface
	Users   services.UserServiceInterface
	Groups  services.GroupServiceInterface
	Sales   services.SaleServiceInterface
}

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, svc Services, m *metrics.Metrics) {
	revenueController := controllers.NewRevenueController(svc.Revenue)
	userController := controllers.NewUserController(svc.Users)
	groupController := controllers.NewGroupController(svc.Groups)
	saleController := controllers.NewSaleController(svc.Sales)
	healthController := controllers.NewHealthController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.GET("/revenue", revenueController.GetRevenue)
	v1.GET("/revenue/summary", revenueController.GetRevenueSummary)
	v1.GET("/revenue/users/:userId", revenueController.GetUserRevenue)

	v1.GET("/users", userController.GetUsers)
	v1.POST("/users", userController.CreateUser)
	v1.GET("/users/:userId", userController.GetUserByID)
	v1.PATCH("/users/:userId", userController.UpdateUser)
	v1.DELETE("/users/:userId", userController.DeleteUser)

	v1.GET("/groups", groupController.GetGroups)
	v1.POST("/groups", groupController.CreateGroup)
	v1.DELETE("/groups/:groupId", groupController.DeleteGroup)

	v1.POST("/sales", saleController.CreateSale)
	v1.GET("/sales/:saleId", saleController.GetSale)
	v1.DELETE("/sales/:saleId", saleController.DeleteSale)
	v1.GET("/sales/user/:userId", saleController.GetSalesByUser)

	router.GET("/health", healthController.Health)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(response.NotFound)
}
