package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"sort"
	"strings"

	"gocalc/internal/core"
)

// SharedObjectSource сканирует каталог с собранными .so-плагинами.
// Каждый плагин обязан экспортировать Commands func() map[string]core.Operation.
type SharedObjectSource struct {
	dir string
}

// NewSharedObjectSource создает источник над каталогом dir.
func NewSharedObjectSource(dir string) *SharedObjectSource {
	return &SharedObjectSource{dir: dir}
}

func (s *SharedObjectSource) Name() string { return s.dir }

// Providers открывает каждый .so и забирает экспорт Commands.
// Сбой одного плагина прерывает обход; уже открытые плагины возвращаются
// вместе с ошибкой.
func (s *SharedObjectSource) Providers() ([]Provider, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", s.dir, ErrSourceNotFound)
		}
		return nil, fmt.Errorf("read plugin dir %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".so") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var provs []Provider
	for _, name := range names {
		path := filepath.Join(s.dir, name)
		p, err := plugin.Open(path)
		if err != nil {
			return provs, fmt.Errorf("open plugin %s: %w", path, err)
		}
		sym, err := p.Lookup("Commands")
		if err != nil {
			return provs, fmt.Errorf("plugin %s has no Commands export: %w", path, err)
		}
		fn, ok := sym.(func() map[string]core.Operation)
		if !ok {
			return provs, fmt.Errorf("plugin %s: Commands has unexpected type %T", path, sym)
		}
		provs = append(provs, &sharedObjectProvider{
			name:     strings.TrimSuffix(name, ".so"),
			commands: fn(),
		})
	}
	return provs, nil
}

type sharedObjectProvider struct {
	name     string
	commands map[string]core.Operation
}

func (p *sharedObjectProvider) Name() string { return p.name }

func (p *sharedObjectProvider) Commands() map[string]core.Operation { return p.commands }
