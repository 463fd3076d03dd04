package plugins

import (
	"errors"
	"log/slog"

	"gocalc/internal/core"
)

// ErrSourceNotFound сообщает, что источник плагинов отсутствует целиком.
var ErrSourceNotFound = errors.New("plugin source not found")

// Provider — обнаруживаемая единица источника, отдающая набор команд.
type Provider interface {
	Name() string
	Commands() map[string]core.Operation
}

// Source перечисляет провайдеров; при сбое допускается частичный результат
// из уже обработанных единиц вместе с ошибкой.
type Source interface {
	Name() string
	Providers() ([]Provider, error)
}

// Loader накапливает команды из источников. Сбои источников не фатальны:
// отсутствующий источник дает предупреждение, любой другой сбой — ошибку
// в журнале, уже слитые команды сохраняются.
type Loader struct {
	log      *slog.Logger
	commands map[string]core.Operation
}

// NewLoader создает loader и сразу загружает переданные источники.
func NewLoader(log *slog.Logger, sources ...Source) *Loader {
	l := &Loader{log: log, commands: make(map[string]core.Operation)}
	for _, src := range sources {
		l.Load(src)
	}
	return l
}

// Load сливает команды всех провайдеров источника в накопленный набор.
func (l *Loader) Load(src Source) {
	provs, err := src.Providers()
	for _, p := range provs {
		for name, op := range p.Commands() {
			l.commands[name] = op
		}
		l.log.Info("plugin loaded", "source", src.Name(), "provider", p.Name())
	}
	if err == nil {
		return
	}
	if errors.Is(err, ErrSourceNotFound) {
		l.log.Warn("plugin source not found", "source", src.Name())
		return
	}
	l.log.Error("plugin load failed", "source", src.Name(), "err", err)
}

// Commands возвращает накопленное отображение имени команды на операцию.
func (l *Loader) Commands() map[string]core.Operation { return l.commands }
