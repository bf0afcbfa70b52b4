package main

import (
	"errors"
	"io/fs"
	stdLog "log"
	"time"

	"github.com/Astemirdum/bookstore-storefront/storefront/app"
	"github.com/Astemirdum/bookstore-storefront/storefront/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional in containers where the environment is already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
