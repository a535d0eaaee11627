package main

import (
	"context"
	"log"

	"canteen-service/internal/auth"
	"canteen-service/internal/config"
	httpctl "canteen-service/internal/controllers/http"
	"canteen-service/internal/infra"
	"canteen-service/internal/infra/mongodb"
	"canteen-service/internal/infra/rabbitmq"
	mongorepo "canteen-service/internal/repository/mongodb"
	"canteen-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("mongo: connect: %v", err)
	}

	orderRepo := mongorepo.NewOrderRepository(db)
	foodRepo := mongorepo.NewFoodRepository(db)
	cardRepo := mongorepo.NewCardRepository(db)
	accountRepo := mongorepo.NewAccountRepository(db)
	feedbackRepo := mongorepo.NewFeedbackRepository(db)

	paymentClient := infra.NewPaymentClient(cfg.Payment.BaseURL, cfg.Payment.SecretKey, cfg.Payment.Timeout)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	ledger := services.NewLedgerService(cardRepo, accountRepo)
	orders := services.NewOrderService(orderRepo, foodRepo, ledger, paymentClient, publisher)
	catalog := services.NewCatalogService(foodRepo)
	payments := services.NewPaymentService(paymentClient, orderRepo)
	feedback := services.NewFeedbackService(feedbackRepo)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, order numbers fall back to daily counts: %v", err)
	} else {
		orders.SetRedisClient(redisClient)
	}

	gate := auth.NewGate(cfg.JWT)
	if cfg.JWT.AllowDevAdminToken {
		log.Println("WARNING: dev admin token enabled; do not run this in production")
	}

	handler := httpctl.NewHandler(orders, catalog, ledger, payments, feedback, gate)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	log.Printf("Starting canteen service on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
