package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const defaultConfigRelPath = "configs/conf.yml"

// Loader wraps the viper instance a Config was read from so it can be
// watched for changes.
type Loader struct {
	v *viper.Viper
}

// Load reads cfgPath, or the first configs/conf.yml found walking up from
// the working directory when cfgPath is empty. With no file at all the
// defaults and environment overrides still apply.
func Load(cfgPath string) (*Config, *Loader, error) {
	v := viper.New()
	setDefaults(v)

	if err := bindEnv(v); err != nil {
		return nil, nil, err
	}

	if cfgPath == "" {
		curDir, err := os.Getwd()
		if err != nil {
			return nil, nil, err
		}
		cfgPath = findConfigUpward(curDir)
	} else if !fileExist(cfgPath) {
		return nil, nil, fmt.Errorf("config file not exist, configPath=%v", cfgPath)
	}

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &conf, &Loader{v: v}, nil
}

// Watch calls fn with the re-read configuration whenever the file changes.
func (l *Loader) Watch(fn func(Config, error)) {
	if l.v.ConfigFileUsed() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		var conf Config
		err := l.v.Unmarshal(&conf)
		if err != nil {
			err = fmt.Errorf("reload %s: %w", e.Name, err)
		}
		fn(conf, err)
	})
	l.v.WatchConfig()
}

func (l *Loader) File() string {
	return l.v.ConfigFileUsed()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "localhost:3000")
	v.SetDefault("server.max_connections", 128)
	v.SetDefault("server.max_request_bytes", 1<<20)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("static.public_path", "public")
	v.SetDefault("static.data_path", "data")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
}

func bindEnv(v *viper.Viper) error {
	for key, env := range map[string]string{
		"server.addr":        "HTTP_ADDR",
		"static.public_path": "PUBLIC_PATH",
		"static.data_path":   "DATA_PATH",
		"log.level":          "LOG_LEVEL",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

func findConfigUpward(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
