package logging

import (
	"go.uber.org/zap"
)

// Init builds the application logger. Development gets the
// human-readable console encoder; anything else gets production JSON.
func Init(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
