package main

import (
	"mountmix/config"
	"mountmix/di"
	"mountmix/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
