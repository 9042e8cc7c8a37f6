package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultLooseDraws = 5
	defaultColumns    = 4
)

// Config 演示程序配置
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig 牌局配置
type GameConfig struct {
	Seed       uint64 `yaml:"seed"`        // 0 表示按时间播种
	LooseDraws int    `yaml:"loose_draws"` // 入手前单独发出的牌数
}

// DisplayConfig 输出配置
type DisplayConfig struct {
	Color   bool `yaml:"color"`
	Columns int  `yaml:"columns"` // 牌堆列表每行张数
}

// LogConfig 日志配置
type LogConfig struct {
	Dir string `yaml:"dir"` // 为空时只输出到 stderr
}

// Load 加载配置文件，环境变量优先
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Config{Display: DisplayConfig{Color: true}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{Display: DisplayConfig{Color: true}}
	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Game.LooseDraws <= 0 {
		cfg.Game.LooseDraws = defaultLooseDraws
	}
	if cfg.Display.Columns <= 0 {
		cfg.Display.Columns = defaultColumns
	}
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("DECK_SEED"); ok {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Game.Seed = seed
		}
	}
	if v, ok := os.LookupEnv("DECK_LOOSE_DRAWS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Game.LooseDraws = n
		}
	}
	if v, ok := os.LookupEnv("DISPLAY_COLOR"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Display.Color = b
		}
	}
	if v, ok := os.LookupEnv("LOG_DIR"); ok {
		cfg.Log.Dir = v
	}
}
