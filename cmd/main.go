package main

import (
	"net/http"
	"os"

	"backoffice/config"
	"backoffice/internal/clients"
	"backoffice/internal/delivery"
	"backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	if logLevel < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting back-office...")
	logger.Infof("Catalog API target: %s", cfg.APIURL)

	api := clients.NewAPIClient(cfg.APIURL, cfg.APITimeout, logger)
	categoryRepo := clients.NewCategoryClient(api, logger)
	productRepo := clients.NewProductClient(api, logger)
	userRepo := clients.NewUserClient(api, logger)
	orderRepo := clients.NewOrderClient(api, logger)

	useCases := delivery.UseCases{
		Categories: usecase.NewCategoryUseCase(categoryRepo, logger),
		Products:   usecase.NewProductUseCase(productRepo, categoryRepo, cfg.ProductsPageLimit, logger),
		Users:      usecase.NewUserUseCase(userRepo, logger),
		Orders:     usecase.NewOrderUseCase(orderRepo, logger),
	}

	router, err := delivery.NewRouter(useCases, delivery.RouterOptions{
		RedirectDelay: cfg.RedirectDelay,
		SessionCookie: cfg.SessionCookie,
		SessionSecret: cfg.SessionSecret,
	}, logger)
	if err != nil {
		logger.Fatalf("Failed to build router: %v", err)
	}

	logger.Infof("Back-office listening on port %s", cfg.Port)
	if err := http.ListenAndServe(cfg.Port, servertiming.Middleware(router, nil)); err != nil {
		logger.Errorf("Failed to start back-office: %v", err)
		os.Exit(1)
	}
}
