package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"weather-checker/configs"
	"weather-checker/internal/application/controller"
	"weather-checker/internal/application/middleware"
	"weather-checker/internal/application/view"
	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/gateway/api"
	"weather-checker/internal/domain/usecase/health"
	"weather-checker/internal/domain/usecase/weather"
	"weather-checker/internal/infra/assets"
	"weather-checker/pkg/http"
	"weather-checker/pkg/log"
	"weather-checker/pkg/msg"
	"weather-checker/pkg/resource"
)

func main() {
	if err := resource.Init(resource.Path()); err != nil {
		log.Fatalf("Failed to load properties: %v", err)
	}
	if err := msg.Init(msg.Path()); err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}
	config := configs.Load()
	log.SetApplicationName(config.ApplicationName)

	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.NewRenderer()
	e.Use(echomw.Recover())
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	group := e.Group(config.Server.ContextPath)

	// Init Gateways
	weatherGateway, err := api.NewWeatherGateway(api.OpenWeatherOptions{
		BaseURL: config.OpenWeather.BaseURL,
		Path:    config.OpenWeather.Path,
		APIKey:  config.OpenWeather.APIKey,
		Units:   config.OpenWeather.Units,
	}, http.ClientOptions{
		ConnectionTimeout: config.OpenWeather.ConnectionTimeout,
		ReadTimeout:       config.OpenWeather.ReadTimeout,
		Logger:            http.NewZapLogger(log.Named("openweather")),
	})
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-error", err.Error()))
	}
	animations := assets.LoadAnimations(config.Animations)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(config.OpenWeather.CountryCode, entity.NewPlaceCatalog(config.Places), weatherGateway)
	healthUseCase := health.NewHealthUseCase(weatherGateway, animations)

	// Init Controller
	weatherController := controller.NewWeatherController(group, config.Server.ContextPath, weatherUseCase, animations)
	healthController := controller.NewHealthController(group, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info(msg.GetMessage("app.started", config.Server.Port))
		if err := e.Start(":" + config.Server.Port); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
	}
}
