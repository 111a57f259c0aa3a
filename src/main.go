package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"go.uber.org/zap"

	"github.com/BielosX/wombat/poke-browser/src/browser"
	"github.com/BielosX/wombat/poke-browser/src/config"
	"github.com/BielosX/wombat/poke-browser/src/export"
	"github.com/BielosX/wombat/poke-browser/src/pokeapi"
	"github.com/BielosX/wombat/poke-browser/src/s3"
	"github.com/BielosX/wombat/poke-browser/src/web"
)

var sugar *zap.SugaredLogger

func newLogger(format string) (*zap.Logger, error) {
	if format == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment(zap.AddStacktrace(zap.FatalLevel))
}

func syncLogger() {
	_ = sugar.Sync()
}

func main() {
	bootstrap, _ := zap.NewDevelopment(zap.AddStacktrace(zap.FatalLevel))
	if err := config.LoadDotEnv(".env"); err != nil {
		bootstrap.Sugar().Fatalf("Failed to load .env: %s", err)
	}
	cfg, err := config.Parse()
	if err != nil {
		bootstrap.Sugar().Fatalf("Invalid configuration: %s", err)
	}
	logger, err := newLogger(cfg.LogFormat)
	if err != nil {
		bootstrap.Sugar().Fatalf("Failed to create logger: %s", err)
	}
	sugar = logger.Sugar()
	defer syncLogger()

	client := pokeapi.NewClient(sugar,
		pokeapi.WithBaseUrl(cfg.PokeApiUrl),
		pokeapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))

	switch cfg.Handler {
	case config.HandlerServer:
		runServer(cfg, client)
	case config.HandlerScraper:
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
		if err != nil {
			sugar.Fatalf("Failed to load SDK config: %s", err)
		}
		exporter := export.NewExporter(client, s3.NewClient(awsCfg), cfg.BucketName, sugar)
		lambda.Start(exporter.Scrape)
	case config.HandlerScheduler:
		lambda.Start(func(request export.ScheduleRequest) ([]export.Schedule, error) {
			return export.ScheduleTasks(sugar, request)
		})
	default:
		sugar.Fatalf("Unknown Handler %s", cfg.Handler)
	}
}

func runServer(cfg config.Config, client *pokeapi.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	sessions := web.NewSessions(func() *browser.Browser {
		return browser.New(client, sugar,
			browser.WithPageSize(cfg.PageSize),
			browser.WithSearchLimit(cfg.SearchLimit))
	}, cfg.SessionTTL)
	server := web.NewServer(sessions, client, sugar)
	if err := server.Run(ctx, cfg.ListenAddr); err != nil {
		sugar.Errorf("HTTP server failed: %s", err)
	}
}
