package plugins

// StaticSource — источник с явно зарегистрированными провайдерами.
// Приложение собирает его на старте вместо сканирования дерева модулей.
type StaticSource struct {
	name      string
	providers []Provider
}

// NewStaticSource создает источник с фиксированным набором провайдеров.
func NewStaticSource(name string, providers ...Provider) *StaticSource {
	return &StaticSource{name: name, providers: providers}
}

func (s *StaticSource) Name() string { return s.name }

// Providers возвращает зарегистрированных провайдеров.
func (s *StaticSource) Providers() ([]Provider, error) {
	return s.providers, nil
}
