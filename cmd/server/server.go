package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/luxloom/storefront-backend/internal/auth"
	"github.com/luxloom/storefront-backend/internal/eventengine"
	"github.com/luxloom/storefront-backend/internal/features/admin"
	"github.com/luxloom/storefront-backend/internal/features/catalog"
	"github.com/luxloom/storefront-backend/internal/features/metrics"
	"github.com/luxloom/storefront-backend/internal/features/order"
	"github.com/luxloom/storefront-backend/internal/middlewares"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ServerConfig struct {
	Addr          string
	DB            *sql.DB
	TokenManager  *auth.TokenService
	AdminUsername string
	AdminPassword string
	DeliveryFee   decimal.Decimal
	Log           *zap.Logger
}

type server struct {
	*ServerConfig

	doneCh        chan struct{}   // used to signal internal go routines to shutdown
	internalSrvWG *sync.WaitGroup // used to wait for all internal go routines to finish before shutting down the server.

	eventEngine eventengine.SubscribeRegisterPublisher
	srv         *http.Server
}

func NewServer(serverConfig *ServerConfig) *server {
	srv := &server{
		ServerConfig:  serverConfig,
		doneCh:        make(chan struct{}),
		internalSrvWG: &sync.WaitGroup{},
	}

	return srv
}

func (s *server) Run() {
	router := chi.NewRouter()

	// strip trailing slashes so /orders/1/ and /orders/1 hit the same route
	router.Use(chimiddleware.StripSlashes)

	s.prep()

	router.Mount("/api", s.apiRouter())
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.Addr),
		Handler: router,
	}

	// start server and listen for [os.Signal] signals to gracefully shutdown.
	s.listenAndServe()
}

func (s *server) listenAndServe() {
	shutdownCtx, shutdownCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer shutdownCancel()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	errGrp.Go(
		func() error {
			s.Log.Info(
				"server started and is listening",
				zap.String("port", s.Addr),
			)

			if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			return nil
		},
	)

	errGrp.Go(
		func() error {
			<-shutdownCtx.Done() // block and listen for shutdown signals

			s.Log.Info("server is gracefully shutting down")

			ctx, cancel := context.WithTimeout(
				context.Background(),
				(20 * time.Second),
			)
			defer cancel()

			s.Log.Info("waiting for all pending requests to finish")
			if err := s.srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server failed to shutdown gracefully: %w", err)
			}

			return nil
		},
	)

	if err := errGrp.Wait(); err != nil {
		s.Log.Fatal("server stopped with error", zap.Error(err))
	}
	s.Log.Info("all pending requests completed")

	s.Log.Info("waiting for all internal go routines")
	close(s.doneCh)
	s.internalSrvWG.Wait()
	s.Log.Info("all internal go routines are done")

	if err := s.DB.Close(); err != nil {
		s.Log.Error("server failed to close db for shutdown", zap.Error(err))
	}

	s.Log.Info("server has been gracefully shutdown")
	os.Exit(0)
}

// prep prepares server dependencies needed for the server to function
func (s *server) prep() {
	s.eventEngine = eventengine.NewEventEngine(
		&eventengine.EventEngineConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
			Log:           s.Log,
		},
	)
}

func (s *server) apiRouter() *chi.Mux {
	r := chi.NewRouter()

	// health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.DB.PingContext(r.Context()); err != nil {
			s.Log.Error("health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("unhealthy: database connection failed"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// middleware
	middleware := middlewares.NewMiddleware(
		s.TokenManager,
		s.Log,
	)

	// admin feature
	adminService := admin.NewService(
		s.AdminUsername,
		s.AdminPassword,
		s.TokenManager,
	)
	adminHandler := admin.NewHandler(adminService, middleware)
	adminHandler.RegisterRoutes(r)

	// catalog feature
	catalogStore := catalog.NewStore(s.DB)
	catalogService := catalog.NewService(catalogStore)
	catalogHandler := catalog.NewHandler(
		catalogService,
		middleware,
	)
	catalogHandler.RegisterRoutes(r)

	// order feature
	orderStore := order.NewStore(s.DB)
	orderService := order.NewService(
		orderStore,
		catalogService,
		s.eventEngine,
		s.DeliveryFee,
	)
	orderHandler := order.NewHandler(
		orderService,
		middleware,
	)
	orderHandler.RegisterRoutes(r)

	// metrics feature subscribes to the order events published above
	metrics.NewHandlerEvents(
		&metrics.HandlerEventsConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
			EventEngine:   s.eventEngine,
			Log:           s.Log,
		},
	)

	return r
}
