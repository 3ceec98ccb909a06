package util

import "go.uber.org/zap"

// NewLogger returns a JSON logger at info level in production and a
// console logger at debug level otherwise.
func NewLogger(production bool) *zap.SugaredLogger {
	if production {
		return zap.Must(zap.NewProduction()).Sugar()
	}
	return zap.Must(zap.NewDevelopment()).Sugar()
}
