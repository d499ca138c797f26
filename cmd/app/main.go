package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"

	_ "frontdesk/docs"
)

// @title Front Desk API
// @version 1.0
// @description Booking, occupancy and guest management for a small property.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
