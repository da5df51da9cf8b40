package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/karla-codes/rest-api/internal/delivery/http/controllers"
	"github.com/karla-codes/rest-api/internal/service"
	"github.com/karla-codes/rest-api/pkg/logger"
)

func InitRoutes(l logger.Log, u service.Collection, logErrors bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))

	r.Use(controllers.RequestIDMiddleware(), controllers.LoggingMiddleware(l))

	respond := controllers.NewErrorResponder(l, logErrors)
	accountController := controllers.NewAccountHandler(l, u.AccountService, respond)
	courseController := controllers.NewCourseHandler(l, u.CourseService, respond)

	r.GET("/", controllers.Welcome)

	users := r.Group("/users")
	{
		users.GET("", accountController.Authenticate, accountController.Me)
		users.POST("", accountController.Create)
	}

	courses := r.Group("/courses")
	{
		courses.GET("", courseController.List)
		courses.GET("/:id", courseController.ByID)
		courses.POST("", accountController.Authenticate, courseController.Create)
		courses.PUT("/:id", accountController.Authenticate, courseController.Update)
		courses.DELETE("/:id", accountController.Authenticate, courseController.Delete)
	}

	r.NoRoute(controllers.RouteNotFound)

	return r
}
