package main

import (
	"cabwise/config"
	"cabwise/di"
	"cabwise/shared/logger"
)

// @title Cabwise Booking API
// @version 1.0
// @description Cab booking backend: fare calculation, distance resolution and booking intake.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
