// Package cmd wires the application together: config, logger, database,
// event dispatcher, repositories, services and the HTTP server.
package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/api"
	customerctl "storefront/api/customer"
	"storefront/api/health"
	orderctl "storefront/api/order"
	productctl "storefront/api/product"
	customerapp "storefront/application/customer"
	orderapp "storefront/application/order"
	productapp "storefront/application/product"
	"storefront/config"
	"storefront/domain/customer"
	"storefront/domain/shared"
	"storefront/infrastructure/persistence/gormdb"
	"storefront/pkg/logger"

	"go.uber.org/zap"
)

type App struct {
	cfg    *config.Config
	router *api.Router
}

// NewApp builds the whole object graph. The event dispatcher is
// constructed exactly once here and handed by reference to everything
// that publishes or subscribes; handler registration happens at startup
// and stays for the process lifetime.
func NewApp(cfg *config.Config) (*App, error) {
	dbCfg := gormdb.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := dbCfg.Connect()
	if err != nil {
		return nil, err
	}
	if err := gormdb.Migrate(db); err != nil {
		return nil, err
	}

	dispatcher := shared.NewEventDispatcher()
	registerEventHandlers(dispatcher)

	customerRepo := gormdb.NewCustomerRepository(db)
	productRepo := gormdb.NewProductRepository(db)
	orderRepo := gormdb.NewOrderRepository(db)

	customerService := customerapp.NewApplicationService(customerRepo, dispatcher)
	productService := productapp.NewApplicationService(productRepo)
	orderService := orderapp.NewApplicationService(orderRepo, customerRepo, productRepo)

	router := api.NewRouter(
		cfg,
		health.NewController(),
		customerctl.NewController(customerService),
		productctl.NewController(productService),
		orderctl.NewController(orderService),
	)
	router.SetupRoutes()

	return &App{cfg: cfg, router: router}, nil
}

func registerEventHandlers(dispatcher *shared.EventDispatcher) {
	log := logger.Get()
	_ = dispatcher.Register(customer.CustomerCreatedEventName, customer.NewWelcomeNotifier(log))
	_ = dispatcher.Register(customer.CustomerCreatedEventName, customer.NewCRMSyncNotifier(log))
	_ = dispatcher.Register(customer.CustomerAddressChangedEventName, customer.NewAddressChangedNotifier(log))
}

// Run serves HTTP until SIGINT/SIGTERM, then shuts down gracefully
// within the configured timeout.
func (a *App) Run() error {
	server := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      a.router.Engine(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", a.cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
