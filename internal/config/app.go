package config

import (
	"os"
	"strings"

	"github.com/labstack/gommon/log"
)

var (
	BasePath       string
	Variant        string
	HTTPSDetection string
	LogLevel       log.Lvl
)

func LoadAppConfig() error {
	BasePath = os.Getenv("WPENV_PATH")
	if BasePath == "" {
		BasePath = "."
	}

	Variant = os.Getenv("WPENV_VARIANT")
	if Variant == "" {
		Variant = "extended"
	}

	HTTPSDetection = os.Getenv("WPENV_HTTPS_DETECTION")
	if HTTPSDetection == "" {
		HTTPSDetection = "strict"
	}

	LogLevel = parseLogLevel(os.Getenv("WPENV_LOG_LEVEL"))

	return nil
}

func parseLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
