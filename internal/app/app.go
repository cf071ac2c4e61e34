package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/config"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/events"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/handler"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/middleware"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/notification"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/repository"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/repository/memory"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/router"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/scheduler"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type eventPublisher interface {
	ports.EventPublisher
	io.Closer
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  eventPublisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

type stores struct {
	tx       ports.TxManager
	courses  ports.CourseRepo
	members  ports.MemberRepo
	bookings ports.BookingRepo
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"GymBooking",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	var st stores
	switch cfg.Storage.Driver {
	case "memory":
		log.Warn("using in-memory storage, data is lost on restart")
		st = app.memoryStores()
	default:
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
		st = app.postgresStores()
	}

	if err = app.initPublisher(); err != nil {
		return nil, fmt.Errorf("init publisher: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) postgresStores() stores {
	return stores{
		tx:       repository.NewTxManager(a.db),
		courses:  repository.NewCourseRepo(a.db),
		members:  repository.NewMemberRepo(a.db),
		bookings: repository.NewBookingRepo(a.db),
	}
}

func (a *App) memoryStores() stores {
	s := memory.NewStore()
	return stores{
		tx:       s,
		courses:  s.Courses(),
		members:  s.Members(),
		bookings: s.Bookings(),
	}
}

func (a *App) initPublisher() error {
	if a.cfg.RabbitMQ.URL == "" {
		a.log.Warn("rabbitmq url is empty, booking events disabled")
		a.publisher = events.NopPublisher{}
		return nil
	}

	p, err := events.NewRabbitPublisher(
		a.cfg.RabbitMQ.URL,
		a.cfg.RabbitMQ.Exchange,
		a.cfg.RabbitMQ.PublishTimeout,
		a.log,
	)
	if err != nil {
		return err
	}

	a.publisher = p
	return nil
}

func (a *App) rateLimiter() ginext.HandlerFunc {
	if !a.cfg.RateLimit.Enabled {
		return nil
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := a.redis.Ping(context.Background()).Err(); err != nil {
		a.log.Warn("redis unavailable, rate limiter will let requests through",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
	}

	return middleware.RateLimit(a.redis, middleware.RateLimitOptions{
		Capacity:       a.cfg.RateLimit.Capacity,
		RefillTokens:   a.cfg.RateLimit.RefillTokens,
		RefillInterval: a.cfg.RateLimit.RefillInterval,
		TTL:            a.cfg.RateLimit.TTL,
		Prefix:         a.cfg.RateLimit.Prefix,
	}, a.log)
}

func (a *App) initServices(st stores) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	courseService := service.NewCourseService(st.courses, st.bookings)
	memberService := service.NewMemberService(st.members)
	bookingService := service.NewBookingService(st.tx, st.bookings, st.courses, n, a.publisher, a.log)

	if a.cfg.Booking.CancelStale {
		a.scheduler = scheduler.New(
			bookingService,
			a.cfg.Scheduler.Interval,
			a.log,
		)
	}

	h := handler.NewHandler(courseService, bookingService, memberService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		a.rateLimiter(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.Warn("close publisher", logger.String("error", err.Error()))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
