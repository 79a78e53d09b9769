package server

import (
	"fmt"
	"net/http"
	"time"

	"customer-portal/internal/config"
	"customer-portal/internal/database"
	custommiddleware "customer-portal/internal/middleware"
	"customer-portal/internal/repository"
	"customer-portal/internal/service"
	"customer-portal/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     database.Service
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service) *Server {
	router := chi.NewRouter()

	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.IsDevelopment(), cfg.Identity.Header))

	// 503 while the database is unreachable so load balancers can pull the instance.
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		dbHealth := db.Health(r.Context())

		status, code := "ok", http.StatusOK
		if dbHealth["status"] != "up" {
			status, code = "unavailable", http.StatusServiceUnavailable
		}

		w.Header().Set("Cache-Control", "no-store")
		custommiddleware.RespondWithJSON(w, code, map[string]any{
			"status":   status,
			"database": dbHealth,
		})
	})

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	parallel := cfg.Assembler.ParallelDependents
	categoryService := service.NewCategoryService(categoryRepo)
	newsService := service.NewNewsService(newsRepo)
	productService := service.NewProductService(productRepo, parallel)
	orderService := service.NewOrderService(orderRepo, parallel)
	userService := service.NewUserService(userRepo)
	contactService := service.NewContactService(logger)

	identityMiddleware := custommiddleware.IdentityMiddleware(cfg.Identity.Header, cfg.Identity.AllowRawFallback, logger)

	var redisClient *redis.Client
	var throttle func(http.Handler) http.Handler
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		throttle = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "portal_rl",
		}, logger)
		logger.Info("Rate limiting enabled for public endpoints",
			zap.String("redis_addr", cfg.Redis.Addr()),
			zap.Int("requests", cfg.RateLimit.Requests),
			zap.Duration("window", cfg.RateLimit.Window),
		)
	}

	transport.RegisterRoutes(router, transport.Handlers{
		Catalog: transport.NewCatalogHandler(categoryService, productService, logger),
		News:    transport.NewNewsHandler(newsService, logger),
		Orders:  transport.NewOrderHandler(orderService, logger),
		Users:   transport.NewUserHandler(userService, logger),
		Contact: transport.NewContactHandler(contactService, logger),
	}, identityMiddleware, throttle)

	// Set after the routes so every mounted subrouter picks them up.
	router.NotFound(custommiddleware.NotFoundHandler)
	router.MethodNotAllowed(custommiddleware.MethodNotAllowedHandler)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		s.db.Close()
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
		s.redis = nil
	}

	s.logger.Sync()
	return nil
}
