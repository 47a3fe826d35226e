package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"coinwagon"
	"coinwagon/internal/app"
	"coinwagon/pkg/handler"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	if err := godotenv.Load(); err != nil {
		logrus.Infof("no .env file loaded: %s", err)
	}

	if err := app.InitConfig(); err != nil {
		logrus.Fatalf("failed to read config: %s", err)
	}

	services := app.BuildServices()
	handlers := handler.NewHandler(services)

	srv := new(coinwagon.Server)
	go func() {
		logrus.Infof("starting server on port %s", viper.GetString("server.port"))
		if err := srv.Run(viper.GetString("server.port"), handlers.InitRoutes()); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server stopped: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("shutdown failed: %s", err)
	}
}
