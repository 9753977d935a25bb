package config

// Config is the top-level docsite configuration, corresponding to .docsite.yml.
type Config struct {
	ProjectName  string            `yaml:"project_name" koanf:"project_name"`
	SourceDir    string            `yaml:"source_dir" koanf:"source_dir"`
	OutputDir    string            `yaml:"output_dir" koanf:"output_dir"`
	BaseURL      string            `yaml:"base_url" koanf:"base_url"`
	SearchIndex  string            `yaml:"search_index" koanf:"search_index"`
	DataDir      string            `yaml:"data_dir" koanf:"data_dir"`
	Include      []string          `yaml:"include" koanf:"include"`
	Exclude      []string          `yaml:"exclude" koanf:"exclude"`
	DefaultTheme string            `yaml:"default_theme" koanf:"default_theme"`
	Collections  map[string]string `yaml:"collections" koanf:"collections"`
	Server       ServerConfig      `yaml:"server" koanf:"server"`
	Search       SearchConfig      `yaml:"search" koanf:"search"`
}

// ServerConfig holds settings for docsite serve.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// SearchConfig holds settings for the interactive search widget.
type SearchConfig struct {
	DebounceMS int `yaml:"debounce_ms" koanf:"debounce_ms"`
}
