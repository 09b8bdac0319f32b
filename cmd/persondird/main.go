package main

import (
	"context"
	"flag"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"persondir"
	"persondir/db"
	"persondir/fixture"
	"persondir/internal/config"
	"persondir/internal/present/rest"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	useFixtures := flag.Bool("fixtures", false, "serve from fixture documents instead of the database")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	var client persondir.Client
	if *useFixtures {
		client = fixture.New(cfg.Fixtures.Roots...)
	} else {
		dsn := db.DSN(
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Hostname,
			cfg.Database.Port,
			cfg.Database.DBName,
		)
		client, err = db.Open(dsn, db.Options{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			panic(err)
		}
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	if cfg.Server.EnableTrace {
		cleanup, err := setupTraceProvider(cfg.Server.TraceEndpoint)
		if err != nil {
			panic(err)
		}
		defer cleanup()
		e.Use(otelecho.Middleware("persondird"))
	}

	rest.NewHandler(client).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(cfg.Server.Listen))
}

func setupTraceProvider(endpoint string) (func(), error) {
	ctx := context.Background()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "persondird"),
		)),
	)
	otel.SetTracerProvider(tp)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		tp.Shutdown(ctx)
	}
	return cleanup, nil
}
