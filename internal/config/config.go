package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

// StorageConfig 选择任务列表的存储后端
type StorageConfig struct {
	// Backend 取值 sqlite、file、redis、memory
	Backend string       `yaml:"backend"`
	Slot    string       `yaml:"slot"`
	SQLite  SQLiteConfig `yaml:"sqlite"`
	File    FileConfig   `yaml:"file"`
	Redis   RedisConfig  `yaml:"redis"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type FileConfig struct {
	Dir string `yaml:"dir"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// 默认配置
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "Task Manager",
			Version:      "1.0.0",
			WindowWidth:  960,
			WindowHeight: 640,
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Slot:    "tasks",
			SQLite: SQLiteConfig{
				Path: "tasks.db",
			},
			File: FileConfig{
				Dir: "data",
			},
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "task-manager:",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

type Manager struct {
	config     *Config
	configPath string
}

func NewManager() (*Manager, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(filepath.Join(configDir, "config.yaml"))
}

// NewManagerAt 使用指定路径的配置文件，不存在或无法解析时写入默认配置
func NewManagerAt(configPath string) (*Manager, error) {
	manager := &Manager{
		configPath: configPath,
	}

	// 加载或创建配置
	if err := manager.loadConfig(); err != nil {
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	// 未出现在文件中的字段保留默认值
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	// 确保配置目录存在
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}

// ResolvePath 相对路径按配置文件所在目录解析
func (m *Manager) ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(m.configPath), p)
}

// 获取配置文件目录
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".task-manager"), nil
}

func (m *Manager) UpdateStorageConfig(config StorageConfig) error {
	m.config.Storage = config
	return m.SaveConfig()
}
