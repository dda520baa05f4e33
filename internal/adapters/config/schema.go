package config

// Shiorifile represents the structure of the shiori.yaml configuration file.
type Shiorifile struct {
	Enabled        *bool    `yaml:"enabled"`
	CacheDir       string   `yaml:"cache_dir"`
	Backend        string   `yaml:"backend"`
	Redis          RedisDTO `yaml:"redis"`
	SampleInterval string   `yaml:"sample_interval"`
	Exclude        []string `yaml:"exclude"`
	MetricsFile    string   `yaml:"metrics_file"`
	Log            LogDTO   `yaml:"log"`
}

// RedisDTO represents the redis backend section.
type RedisDTO struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// LogDTO represents the logging section.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}
