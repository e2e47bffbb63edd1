package config

import "time"

type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Static StaticConfig `yaml:"static" mapstructure:"static"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	MaxConnections  int64         `yaml:"max_connections" mapstructure:"max_connections"`
	MaxRequestBytes int           `yaml:"max_request_bytes" mapstructure:"max_request_bytes"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

type StaticConfig struct {
	PublicPath string `yaml:"public_path" mapstructure:"public_path"`
	DataPath   string `yaml:"data_path" mapstructure:"data_path"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}
