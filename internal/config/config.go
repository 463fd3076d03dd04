package config

import "os"

// Config описывает параметры калькулятора.
type Config struct {
	LogLevel  string
	LogFile   string
	PluginDir string
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFile:   "gocalc.log",
		PluginDir: "plugins",
	}
}

// FromEnv накладывает переменные окружения поверх значений по умолчанию.
func FromEnv() Config {
	cfg := Default()
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GOCALC_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("GOCALC_PLUGIN_DIR"); v != "" {
		cfg.PluginDir = v
	}
	return cfg
}
