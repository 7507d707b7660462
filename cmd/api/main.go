package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/config"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/handlers"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/middleware"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/services"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/store"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:          "cloudcare",
		Short:        "Cloud Care Connect hospital management API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the unique and lookup indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			if err := env.store.EnsureIndexes(cmd.Context()); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}
			env.log.Info().Msg("indexes are up to date")
			return nil
		},
	}
}

// app holds the pieces every subcommand needs.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *mongo.Client
	store  *store.Store
}

func newLogger(dev bool) zerolog.Logger {
	if dev {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func connect(ctx context.Context) (*app, error) {
	cfg, err := config.Load(newLogger(true))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := newLogger(cfg.IsDev())

	connectCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetTimeout(cfg.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	s := store.New(client.Database(cfg.MongoDatabase))
	if err := s.Ping(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	log.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")

	return &app{cfg: cfg, log: log, client: client, store: s}, nil
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.client.Disconnect(ctx); err != nil {
		a.log.Error().Err(err).Msg("disconnect from MongoDB")
	}
}

// repositories adapts the store to the service-side interfaces.
func (a *app) repositories() services.Repositories {
	return services.Repositories{
		Users:        a.store.Users,
		Patients:     a.store.Patients,
		Doctors:      a.store.Doctors,
		Departments:  a.store.Departments,
		Appointments: a.store.Appointments,
	}
}

func runServer(ctx context.Context) error {
	env, err := connect(ctx)
	if err != nil {
		return err
	}
	defer env.close()
	cfg, logger := env.cfg, env.log

	if err := env.store.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	tokens, err := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	repos := env.repositories()
	departments := services.NewDepartmentService(repos)
	h := handlers.NewHandler(handlers.Services{
		Patients:     services.NewPatientService(repos),
		Doctors:      services.NewDoctorService(repos),
		Departments:  departments,
		Appointments: services.NewAppointmentService(repos, departments, services.NewNotifier(cfg.TextbeltAPIKey, logger)),
		Auth:         services.NewAuthService(repos, tokens),
		Dashboard:    services.NewDashboardService(repos),
	}, env.store, logger)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	h.Routes(r, middleware.Auth(tokens), cfg.AuthRequired)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info().Str("addr", srv.Addr).Bool("auth_required", cfg.AuthRequired).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
