package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds gdocmd settings. Everything has a usable default; the config
// file is optional.
type Config struct {
	Credentials string       `mapstructure:"credentials"` // OAuth client secrets JSON
	Token       string       `mapstructure:"token"`       // cached OAuth token
	Upload      UploadConfig `mapstructure:"upload"`
}

// UploadConfig sets defaults for the upload command.
type UploadConfig struct {
	Folder string `mapstructure:"folder"` // default Drive folder name
	Role   string `mapstructure:"role"`   // default share role
	Prefix string `mapstructure:"prefix"` // title prefix for uploaded docs
	Logo   string `mapstructure:"logo"`   // image inserted at the top of each doc
}

// Load reads configuration from config.yaml in the config dir (or the
// current directory), applies defaults, and resolves environment overrides.
func Load() (*Config, error) {
	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath(".")

	viper.SetDefault("credentials", filepath.Join(configPath, "credentials.json"))
	viper.SetDefault("token", filepath.Join(configPath, "token.json"))
	viper.SetDefault("upload.folder", "Uploads")
	viper.SetDefault("upload.role", "writer")

	// Config file is optional - only a malformed one is an error
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if env := os.Getenv("GDOCMD_CREDENTIALS"); env != "" {
		cfg.Credentials = env
	}
	if env := os.Getenv("GDOCMD_TOKEN"); env != "" {
		cfg.Token = env
	}

	cfg.Credentials = expandHome(cfg.Credentials)
	cfg.Token = expandHome(cfg.Token)
	cfg.Upload.Logo = expandHome(cfg.Upload.Logo)

	return &cfg, nil
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// GetConfigDir returns the gdocmd configuration directory, honoring
// XDG_CONFIG_HOME.
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "gdocmd"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "gdocmd"), nil
}

// GetConfigPath returns the full path of the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Exists reports whether a config file is present.
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := fmt.Sprintf(`# OAuth client secrets (Desktop app) from the Google Cloud console
credentials: %s

# Cached OAuth token (written automatically after the first authorization)
token: %s

upload:
  # Default Drive folder for uploads
  folder: %s
  # Default share role: reader or writer
  role: %s
  # prefix: ""
  # logo: ~/Pictures/logo.png
`, cfg.Credentials, cfg.Token, cfg.Upload.Folder, cfg.Upload.Role)

	return os.WriteFile(path, []byte(content), 0600)
}
