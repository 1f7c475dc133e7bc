package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"yuancity-finance-portal/internal/client"
	"yuancity-finance-portal/internal/config"
	"yuancity-finance-portal/internal/notify"
	"yuancity-finance-portal/internal/repository"
	"yuancity-finance-portal/internal/server"
	"yuancity-finance-portal/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitDBClient(cfg.DatabaseURL, cfg.SQLitePath)
	redisClient := client.InitRedisClient(&cfg.Redis)
	smsClient := client.NewSMSClient(&cfg.SMS)
	publisher := notify.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	chatRepo := repository.NewChatRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	otpStore := repository.NewOTPStore(redisClient)

	authService := service.NewAuthService(cfg.JWT, cfg.OTP, userRepo, otpStore, smsClient)
	financeService := service.NewFinanceService(orderRepo, payoutRepo, userRepo, productRepo, chatRepo)
	adminService := service.NewAdminService(
		orderRepo,
		productRepo,
		reviewRepo,
		userRepo,
		chatRepo,
		notificationRepo,
		publisher,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(authService, financeService, adminService, userRepo)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := publisher.Close(); err != nil {
		log.Println("Kafka writer close error:", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
