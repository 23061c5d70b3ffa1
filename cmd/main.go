package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"gitlab.com/fcv-2025.net/client/internal/adapter/crypto"
	"gitlab.com/fcv-2025.net/client/internal/adapter/judgeclient"
	"gitlab.com/fcv-2025.net/client/internal/adapter/redis/credstore"
	"gitlab.com/fcv-2025.net/client/internal/config"
	"gitlab.com/fcv-2025.net/client/internal/core/services/history"
	"gitlab.com/fcv-2025.net/client/internal/core/services/session"
	logger2 "gitlab.com/fcv-2025.net/client/internal/global/logger"
	http2 "gitlab.com/fcv-2025.net/client/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting workspace client service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})

	// SECONDARY PORTS
	credentialStore := credstore.NewCredentialStore(redisClient, logger)
	judgeGateway := judgeclient.NewClient(sysCfg.JudgeConfig, logger)

	// PRIMARY PORTS
	claimDecoder := crypto.NewClaimDecoder()

	// services
	sessionSvc := session.NewSessionService(sysCfg.HttpConfig.ClientID, claimDecoder, credentialStore, judgeGateway, logger)
	historySvc := history.NewHistoryService(judgeGateway, sessionSvc, logger)

	ctxBg := context.Background()
	if err := sessionSvc.Init(ctxBg); err != nil {
		logger.Warn("Could not restore persisted session", "error", err)
	}

	// server
	serviceProvider := http2.NewServiceProvider(sessionSvc, historySvc, judgeGateway)
	httServer := http2.NewServer(sysCfg.HttpConfig.Port, "workspaceClient", *serviceProvider, logger)
	if err := httServer.Init(); err != nil {
		panic(err)
	}
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)
	_ = redisClient.Close()

	logger.Info("successfully shutdown server")
}

func InitReader() {
	environment := "local"
	if len(os.Args) >= 2 {
		environment = os.Args[1]
	}

	if err := godotenv.Load(environment + ".env"); err != nil {
		logger2.Warn("No env file loaded", "file", environment+".env")
	}
}
