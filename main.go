package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/todo-tracker/config"
	"github.com/example/todo-tracker/modules/activity"
	"github.com/example/todo-tracker/modules/api"
	"github.com/example/todo-tracker/modules/category"
	"github.com/example/todo-tracker/modules/task"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file (falls back to env)")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	level := mono.LogLevelInfo
	if strings.EqualFold(cfg.LogLevel, "error") {
		level = mono.LogLevelError
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(level),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	logger := app.Logger()

	// Stores are process state owned here and handed to the modules.
	categoryStore := category.NewStore()
	taskStore := task.NewStore()

	categoryModule := category.NewModule(categoryStore, logger.WithModule("category"))
	taskModule := task.NewModule(taskStore, categoryStore, logger.WithModule("task"))

	apiModule := api.NewModule(api.Config{
		AppName:            cfg.AppName,
		Port:               cfg.HTTPPort,
		RequestTimeout:     cfg.RequestTimeout,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}, logger.WithModule("api"))

	// Order: independent modules first, then modules with dependencies.
	app.Register(activity.NewModule(cfg.ActivityCapacity, logger.WithModule("activity"))) // Event consumer
	app.Register(categoryModule)                                                          // Emits category events
	app.Register(taskModule)                                                              // Emits task events, consumes CategoryDeleted
	app.Register(apiModule)                                                               // Driving adapter (depends on task, category, activity)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	if cfg.SeedDemoData {
		categoryModule.SeedDefaults()
	}

	logger.Info("Application started",
		"app", cfg.AppName,
		"port", cfg.HTTPPort,
		"api", "/api/v1",
		"seeded", cfg.SeedDemoData)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				logger.Info("Graceful shutdown initiated")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}
