package main

import (
	"context"

	"github.com/luxloom/storefront-backend/cmd/server"
	"github.com/luxloom/storefront-backend/internal/auth"
	"github.com/luxloom/storefront-backend/internal/config"
	"github.com/luxloom/storefront-backend/internal/logger"
	"github.com/luxloom/storefront-backend/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	srvAddr                 = config.Env.ServerAddr
	postgresConnStr         = config.Env.PostgresConnStr
	adminUsername           = config.Env.AdminUsername
	adminPassword           = config.Env.AdminPassword
	accessTokenSecret       = config.Env.AccessTokenSecret
	accessTokenExpiryInSecs = config.Env.AccessTokenExpiryInSecs
	deliveryFeeStr          = config.Env.DeliveryFee
	logLevel                = config.Env.LogLevel
)

func main() {
	log := logger.New("storefront", logLevel)
	defer log.Sync()

	db, err := storage.NewPostgresDB(postgresConnStr)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := storage.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal("failed to ensure database schema", zap.Error(err))
	}

	deliveryFee, err := decimal.NewFromString(deliveryFeeStr)
	if err != nil {
		log.Fatal(
			"DELIVERY_FEE is not a valid decimal",
			zap.String("value", deliveryFeeStr),
			zap.Error(err),
		)
	}

	srv := server.NewServer(&server.ServerConfig{
		Addr: srvAddr,
		DB:   db,
		TokenManager: auth.NewTokenService(
			accessTokenSecret,
			accessTokenExpiryInSecs,
		),
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
		DeliveryFee:   deliveryFee,
		Log:           log,
	})
	srv.Run()
}
