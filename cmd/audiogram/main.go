package main

import (
	"context"
	"os"
	"os/signal"

	appcontext "github.com/SeakMengs/audiogram/internal/app_context"
	"github.com/SeakMengs/audiogram/internal/config"
	"github.com/SeakMengs/audiogram/internal/env"
	filestorage "github.com/SeakMengs/audiogram/internal/file_storage"
	"github.com/SeakMengs/audiogram/internal/util"
	"github.com/SeakMengs/audiogram/pkg/audiogram"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.IsProduction())
	defer logger.Sync()
	logger.Debugf("Configuration: %+v \n", cfg)

	app := appcontext.Application{
		Config: &cfg,
		Logger: logger,
	}

	if cfg.Minio.Enabled() {
		s3, err := filestorage.NewMinioClient(&cfg.Minio)
		if err != nil {
			logger.Error("Error connecting to minio")
			logger.Panic(err)
		}
		app.S3 = s3
	}

	chart := audiogram.NewDefaultChart()
	if cfg.FontPath != "" {
		family, err := audiogram.FontFamilyName(cfg.FontPath)
		if err != nil {
			logger.Fatalf("Failed to read font %s: %v", cfg.FontPath, err)
		}
		// keep the defaults as fallback when the family is not installed
		chart.Style.FontFamily = family + ", " + chart.Style.FontFamily
		logger.Infof("Using font family %s", family)
	}

	converter, err := audiogram.NewConverter(cfg.Converter)
	if err != nil {
		logger.Fatal(err)
	}

	settings := audiogram.NewDefaultSettings()
	settings.QRURLPattern = cfg.QRURLPattern
	settings.Bundle = cfg.Bundle

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rg := audiogram.NewReportGenerator(cfg.Audiogram(), chart, converter, *settings, logger)
	report, err := rg.Generate(ctx)
	if err != nil {
		logger.Fatalf("Failed to generate audiogram: %v", err)
	}

	if app.S3 != nil {
		if err := publishReport(ctx, &app, report); err != nil {
			logger.Fatalf("Failed to publish audiogram: %v", err)
		}
	}

	logger.Infof("Audiogram %s generated in %s", report.ID, cfg.OutputDir)
}
