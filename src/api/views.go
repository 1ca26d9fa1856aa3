package api

import (
	"net/http"
	"time"

	"fundtracker/src/api/controllers"
	"fundtracker/src/api/handlers"
	"fundtracker/src/clients/eastmoney"
	"fundtracker/src/config"
	"fundtracker/src/database"
	"fundtracker/src/repositories"
	"fundtracker/src/services"
	"fundtracker/src/utils"
	redis_utils "fundtracker/src/utils/redis"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Logger  *logrus.Logger
}

func NewServer(cfg *config.Config) (*Server, error) {
	logger := utils.NewLogger(utils.ParseLogLevel(cfg.Service.LogLevel), false, "")

	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	userRepo := repositories.NewUserRepository(db)
	holdingRepo := repositories.NewHoldingRepository(db)
	quoteClient := eastmoney.NewClient(cfg)

	// Quote cache is a best-effort optimization; an unreachable Redis
	// downgrades to direct feed lookups instead of failing startup.
	var quoteCache *redis_utils.RedisHandler
	if cfg.Databases.Redis.Enabled {
		quoteCache, err = redis_utils.NewRedisHandler(cfg)
		if err != nil {
			logger.Warn("quote cache disabled: ", err)
			quoteCache = nil
		}
	}

	controller := controllers.NewController(
		services.NewAuthService(userRepo),
		services.NewLedgerService(holdingRepo, quoteClient),
		services.NewValuationService(holdingRepo, quoteClient, quoteCache,
			time.Duration(cfg.Databases.Redis.QuoteTTLSecs)*time.Second),
	)

	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(cfg, controller),
		Logger:  logger,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), s.Logger)))
	})
}

func (s *Server) InitRoutes() {
	h := s.Handler

	s.Router.Use(s.withLogger)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Post("/register", h.Register)
	s.Router.Post("/login", h.Login)
	s.Router.Post("/logout", h.Logout)

	s.Router.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(h.TokenAuth))
		r.Get("/me", h.Me)
	})

	s.Router.Route("/api", func(r chi.Router) {
		r.Use(jwtauth.Verifier(h.TokenAuth))
		r.Use(h.Authenticator)

		r.Post("/positions", h.OpenPosition)
		r.Post("/positions/{code}", h.AdjustPosition)
		r.Delete("/positions/{code}", h.ClosePosition)
		r.Get("/portfolio", h.GetPortfolio)
		r.Get("/history/{code}/{period}", h.GetHistory)
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
