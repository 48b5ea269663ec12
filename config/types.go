package config

// DataConfig locates the routes data file
type DataConfig struct {
	Path string `yaml:"path"`
}

// DisplayConfig selects the output format of display and select
type DisplayConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=table json"`
}

// MetricsConfig contains the Prometheus textfile export settings
type MetricsConfig struct {
	Textfile string `yaml:"textfile" validate:"omitempty,endswith=.prom"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
	Metrics MetricsConfig `yaml:"metrics"`
}
