package appcontext

import (
	"github.com/SeakMengs/audiogram/internal/config"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Application contains core dependencies for the commands.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Nil when publishing is disabled.
	S3 *minio.Client
}
