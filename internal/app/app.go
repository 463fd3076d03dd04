package app

import (
	"log/slog"

	"gocalc/internal/config"
	"gocalc/internal/core"
	"gocalc/internal/modules/arith"
	"gocalc/internal/modules/mathx"
	"gocalc/internal/modules/sysinfo"
	"gocalc/internal/plugins"
)

// App агрегирует зависимости ядра.
type App struct {
	Registry *core.Registry
	Config   config.Config
}

// NewApp строит реестр: встроенные операции, затем слияние плагинов.
// Записи плагинов перезаписывают встроенные при совпадении имен.
func NewApp(cfg config.Config, log *slog.Logger) *App {
	r := core.NewRegistry()
	r.Merge(arith.Commands())

	builtin := plugins.NewStaticSource("builtin", mathx.Module{}, sysinfo.Module{})
	shared := plugins.NewSharedObjectSource(cfg.PluginDir)
	loader := plugins.NewLoader(log, builtin, shared)
	r.Merge(loader.Commands())

	return &App{Registry: r, Config: cfg}
}
