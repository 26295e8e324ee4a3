package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Staging  StagingConfig  `yaml:"staging"`
	Delivery DeliveryConfig `yaml:"delivery"`
	Google   GoogleConfig   `yaml:"google"`
	GitHub   GitHubConfig   `yaml:"github"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
	// BaseURL 用于拼接下载链接，如 https://qadocgen.example.com
	BaseURL string `yaml:"base_url"`
}

type StagingConfig struct {
	BaseDir      string        `yaml:"base_dir"`
	CleanupAfter time.Duration `yaml:"cleanup_after"`
}

type DeliveryConfig struct {
	// Provider 选择投递策略：local、google 或 github
	Provider string        `yaml:"provider"`
	Timeout  time.Duration `yaml:"timeout"`
}

type GoogleConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
}

type GitHubConfig struct {
	Token          string `yaml:"token"`
	Owner          string `yaml:"owner"`
	Repo           string `yaml:"repo"`
	Branch         string `yaml:"branch"`
	BasePath       string `yaml:"base_path"`
	AppID          int64  `yaml:"app_id"`
	InstallationID int64  `yaml:"installation_id"`
	PrivateKeyPath string `yaml:"private_key_path"`
}

func Load(configPath string) (*Config, error) {
	// 首先尝试从文件加载
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		config := defaults()
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		// 从环境变量覆盖敏感配置
		config.loadFromEnv()

		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		config.resolvePaths(filepath.Dir(absPath))

		return config, nil
	}

	// 如果文件不存在，从环境变量创建配置
	config := defaults()
	config.loadFromEnv()

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	config.resolvePaths(cwd)

	return config, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    8080,
			BaseURL: "http://localhost:8080",
		},
		Staging: StagingConfig{
			BaseDir:      ".tmp",
			CleanupAfter: 24 * time.Hour,
		},
		Delivery: DeliveryConfig{
			Provider: "local",
			Timeout:  20 * time.Second,
		},
		Google: GoogleConfig{
			CredentialsFile: "credentials.json",
		},
		GitHub: GitHubConfig{
			Branch:   "main",
			BasePath: "artifacts",
		},
	}
}

func (c *Config) loadFromEnv() {
	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			c.Server.Port = port
		}
	}
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		c.Server.BaseURL = baseURL
	}
	if dir := os.Getenv("STAGING_BASE_DIR"); dir != "" {
		c.Staging.BaseDir = dir
	}
	if provider := os.Getenv("DELIVERY_PROVIDER"); provider != "" {
		c.Delivery.Provider = provider
	}
	if timeoutStr := os.Getenv("DELIVERY_TIMEOUT"); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			c.Delivery.Timeout = timeout
		}
	}
	if file := os.Getenv("GOOGLE_CREDENTIALS_FILE"); file != "" {
		c.Google.CredentialsFile = file
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		c.GitHub.Token = token
	}
}

// resolvePaths 将相对路径解析为基于配置文件目录的绝对路径
func (c *Config) resolvePaths(baseDir string) {
	if c.Staging.BaseDir != "" && !filepath.IsAbs(c.Staging.BaseDir) {
		c.Staging.BaseDir = filepath.Join(baseDir, c.Staging.BaseDir)
	}
	if c.Google.CredentialsFile != "" && !filepath.IsAbs(c.Google.CredentialsFile) {
		c.Google.CredentialsFile = filepath.Join(baseDir, c.Google.CredentialsFile)
	}
	if c.GitHub.PrivateKeyPath != "" && !filepath.IsAbs(c.GitHub.PrivateKeyPath) {
		c.GitHub.PrivateKeyPath = filepath.Join(baseDir, c.GitHub.PrivateKeyPath)
	}
}
