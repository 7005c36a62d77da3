package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fyyurhq/fyyur-api/internal/config"
	dbpkg "github.com/fyyurhq/fyyur-api/internal/db"
	"github.com/fyyurhq/fyyur-api/internal/logger"
	"github.com/fyyurhq/fyyur-api/internal/routes"
)

func main() {

	logger.Setup()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logrus.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
