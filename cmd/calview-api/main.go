package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/calview/calview-api/api/swagger"
	"github.com/calview/calview-api/internal/handler"
	appMiddleware "github.com/calview/calview-api/internal/middleware"
	"github.com/calview/calview-api/internal/models"
	"github.com/calview/calview-api/internal/seed"
	"github.com/calview/calview-api/internal/service"
	"github.com/calview/calview-api/internal/store"
	"github.com/calview/calview-api/pkg/config"
	"github.com/calview/calview-api/pkg/logger"
	corsmiddleware "github.com/calview/calview-api/pkg/middleware/cors"
	reqidmiddleware "github.com/calview/calview-api/pkg/middleware/requestid"
)

// @title Calview API
// @version 0.1.0
// @description Single-user in-memory calendar state service
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	events, err := seedEvents(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to seed events", "error", err)
	}

	calendarStore := store.New(models.CalendarState{Events: events}, store.Deps{}, logr)

	metricsSvc := service.NewMetricsService()
	metricsSvc.SetEventCount(len(events))
	calendarStore.Subscribe(func(state models.CalendarState) {
		metricsSvc.SetEventCount(len(state.Events))
	})

	validate := validator.New()
	calendarSvc := service.NewCalendarService(calendarStore, validate, logr, metricsSvc, cfg.Calendar)
	exportSvc := service.NewExportService(calendarStore, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(appMiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	api.GET("/calendar/state", calendarHandler.GetState)
	api.PUT("/calendar/view", calendarHandler.SetView)
	api.PUT("/calendar/date", calendarHandler.SetDate)
	api.POST("/calendar/navigate", calendarHandler.Navigate)
	api.GET("/calendar/grid/month", calendarHandler.MonthGrid)
	api.GET("/calendar/grid/week", calendarHandler.WeekGrid)
	api.GET("/calendar/days/:date/events", calendarHandler.DayEvents)

	eventHandler := handler.NewEventHandler(calendarSvc)
	api.POST("/events", eventHandler.Create)
	api.PUT("/events/:id", eventHandler.Update)
	api.DELETE("/events/:id", eventHandler.Delete)
	api.POST("/calendar/selection", eventHandler.Select)
	api.PUT("/calendar/modal", eventHandler.ToggleModal)

	if cfg.Exports.Enabled {
		exportHandler := handler.NewExportHandler(exportSvc)
		api.GET("/export/ics", exportHandler.ICS)
		api.GET("/export/csv", exportHandler.CSV)
		api.GET("/export/pdf", exportHandler.PDF)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "events", len(events))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func seedEvents(cfg *config.Config, logr *zap.Logger) ([]models.Event, error) {
	if cfg.Calendar.SeedEventsFile != "" {
		events, err := seed.Load(cfg.Calendar.SeedEventsFile)
		if err != nil {
			return nil, err
		}
		logr.Sugar().Infow("seed events loaded", "file", cfg.Calendar.SeedEventsFile, "count", len(events))
		return events, nil
	}
	if cfg.Calendar.SeedDemoData && cfg.Env != config.EnvProduction {
		return seed.DemoEvents(), nil
	}
	return nil, nil
}
