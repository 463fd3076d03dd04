package core

import "sort"

// Registry хранит отображение имени команды на операцию.
// Заполняется на старте процесса и после этого не меняется.
type Registry struct {
	ops map[string]Operation
}

// NewRegistry создает пустой реестр операций.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register добавляет операцию; совпадающее имя молча перезаписывается.
func (r *Registry) Register(name string, op Operation) {
	if name == "" || op == nil {
		return
	}
	r.ops[name] = op
}

// Merge добавляет весь набор операций; коллизии перезаписывают прежние записи.
func (r *Registry) Merge(cmds map[string]Operation) {
	for name, op := range cmds {
		r.Register(name, op)
	}
}

// Lookup возвращает операцию по точному имени; поиск чувствителен к регистру.
func (r *Registry) Lookup(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Names возвращает отсортированный список зарегистрированных имен.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len возвращает число зарегистрированных операций.
func (r *Registry) Len() int { return len(r.ops) }
