package app

import (
	"database/sql"
	"os"
	"strings"

	"github.com/ridwanlawson/sips-api/internal/masterdata"
	"github.com/ridwanlawson/sips-api/internal/messaging/kafka/producer"
	"github.com/ridwanlawson/sips-api/internal/middleware"
	"github.com/ridwanlawson/sips-api/internal/payrollexport"
	"github.com/ridwanlawson/sips-api/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	masterRepo := masterdata.NewRepository(gormDB, rdb)
	reportRepo := report.NewRepository(gormDB)
	exportRepo := payrollexport.NewRepository(gormDB)

	// --- Messaging ---
	var publisher payrollexport.EventPublisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher = producer.NewPublisher(strings.Split(brokers, ","), zap.L())
	}

	// --- Services ---
	reportService := report.NewService(reportRepo, masterRepo)
	exportService := payrollexport.NewService(db, exportRepo, masterRepo, publisher)

	// --- Handlers ---
	reportHandler := report.NewHandler(reportService)
	exportHandler := payrollexport.NewHandlerWithRedis(exportService, rdb)

	// --- Middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	var idempotency gin.HandlerFunc
	if rdb != nil {
		idempotency = middleware.Idempotency(rdb)
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		report.RegisterRoutes(api, reportHandler)
		payrollexport.RegisterRoutes(api, exportHandler, idempotency)
	}

	return nil
}
