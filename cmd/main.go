package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/shop-service/docs"
	"github.com/SergeyBogomolovv/shop-service/internal/app"
	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/internal/events"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	"github.com/SergeyBogomolovv/shop-service/internal/invoice"
	"github.com/SergeyBogomolovv/shop-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-service/internal/postgres"
	"github.com/SergeyBogomolovv/shop-service/internal/repo"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	"github.com/SergeyBogomolovv/shop-service/pkg/cache"
	"github.com/SergeyBogomolovv/shop-service/pkg/keymutex"
	"github.com/SergeyBogomolovv/shop-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// @title           Shop Service API
// @version         1.0
// @description     Документация HTTP API
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer <JWT>
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(db, conf.Postgres.MigrationsPath))

	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	panicIfErr("failed to connect to redis", rdb.Ping(ctx).Err())
	logger.Info("redis connected")

	archive, err := invoice.NewFileArchive(conf.Invoice.Dir)
	panicIfErr("failed to prepare invoice dir", err)

	handler.RegisterMetrics()

	pgRepo := repo.NewPostgresRepo(db)
	cartStore := repo.NewRedisCartStore(rdb, conf.Redis.CartTTL)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache("orders", conf.Cache.Capacity, conf.Cache.TTL)
	prometheus.MustRegister(orderCache)
	locks := keymutex.New()
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	productService := service.NewProductService(logger, pgRepo)
	cartService := service.NewCartService(logger, cartStore, productService, locks)
	orderService := service.NewOrderService(logger, txManager, pgRepo, productService, cartStore, locks, orderCache, publisher)
	invoiceService := service.NewInvoiceService(logger, orderService, archive, invoice.NewRenderer())

	auth := middleware.Auth(conf.Auth.JWTSecret)
	productHandler := handler.NewProductHandler(logger, productService)
	cartHandler := handler.NewCartHandler(logger, cartService, auth)
	orderHandler := handler.NewOrderHandler(logger, orderService, invoiceService, auth)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, invoiceService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(productHandler, cartHandler, orderHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{logger: logger, svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(publisher, rdb)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

// cacheWarmUpAdapter прогревает кэш заказов при старте. Ошибка прогрева не мешает запуску.
type cacheWarmUpAdapter struct {
	logger *slog.Logger
	svc    warmUpper
	count  int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	if err := a.svc.WarmUpCache(ctx, a.count); err != nil {
		a.logger.Warn("failed to warm up order cache", slog.Any("error", err))
	}
	return nil
}
