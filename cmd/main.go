package main

import (
	"github.com/gin-gonic/gin"

	"github.com/karla-codes/rest-api/internal/app"
	"github.com/karla-codes/rest-api/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}
