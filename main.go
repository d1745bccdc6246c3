package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sayan01/groceri/config"
	"github.com/sayan01/groceri/database"
	"github.com/sayan01/groceri/routes"
)

func main() {
	logrus.Info("starting groceri")

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("failed to migrate schema")
	}
	if err := database.SeedAdmin(db); err != nil {
		logrus.WithError(err).Fatal("failed to seed admin account")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, &cfg.Server)

	logrus.WithField("port", cfg.Server.Port).Info("server listening")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
