package global

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/nathanieltooley/pokedex/dex"
	"github.com/nathanieltooley/pokedex/pokeapi"
	"github.com/pelletier/go-toml/v2"
)

type APIConfig struct {
	BaseURL string `toml:"base_url"`
	// 0 leaves the transport default
	TimeoutSeconds int `toml:"timeout_seconds"`
	NameLimit      int `toml:"name_limit"`
}

type LogConfig struct {
	MaxSizeMB float64 `toml:"max_size_mb"`
	MaxFiles  int     `toml:"max_files"`
}

type GlobalConfig struct {
	API           APIConfig `toml:"api"`
	Log           LogConfig `toml:"log"`
	PrefsLocation string    `toml:"prefs_location"`
	Debug         bool      `toml:"debug"`
}

const (
	envAPIURL = "POKEDEX_API_URL"
	envDebug  = "POKEDEX_DEBUG"
)

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "pokedex")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.toml")
}

func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// NewClient creates an api client from the current options
func NewClient() *pokeapi.Client {
	client := pokeapi.NewClient(Opt.API.BaseURL, Opt.API.Timeout())
	client.NameLimit = Opt.API.NameLimit

	return client
}

// LoadConfig reads the config at path, writing a default one if it doesn't exist or is empty.
// Environment overrides (including a .env file in the working dir) are applied on top.
func LoadConfig(path string) (GlobalConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return populateConfig(GlobalConfig{}), err
	}

	var config GlobalConfig
	if len(contents) > 0 {
		if err := toml.Unmarshal(contents, &config); err != nil {
			return populateConfig(GlobalConfig{}), err
		}
		config = populateConfig(config)
	} else {
		config = populateConfig(GlobalConfig{})
		if err := SaveConfigTo(path, config); err != nil {
			return config, err
		}
	}

	// missing .env is fine
	_ = godotenv.Load()

	return applyEnv(config), nil
}

func SaveConfig(config GlobalConfig) error {
	return SaveConfigTo(DefaultConfigLocation(), config)
}

func SaveConfigTo(path string, config GlobalConfig) error {
	configBytes, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	return os.WriteFile(path, configBytes, 0644)
}

func applyEnv(config GlobalConfig) GlobalConfig {
	if url := os.Getenv(envAPIURL); url != "" {
		config.API.BaseURL = url
	}

	if debug, err := strconv.ParseBool(os.Getenv(envDebug)); err == nil {
		config.Debug = debug
	}

	return config
}

func populateConfig(config GlobalConfig) GlobalConfig {
	if config.API.BaseURL == "" {
		config.API.BaseURL = pokeapi.DefaultBaseURL
	}
	if config.API.NameLimit <= 0 {
		config.API.NameLimit = dex.NameListLimit
	}
	if config.API.TimeoutSeconds < 0 {
		config.API.TimeoutSeconds = 0
	}
	if config.Log.MaxSizeMB <= 0 {
		config.Log.MaxSizeMB = 2.5
	}
	if config.Log.MaxFiles <= 0 {
		config.Log.MaxFiles = 2
	}
	if config.PrefsLocation == "" {
		config.PrefsLocation = filepath.Join(DefaultConfigDir(), "prefs.json")
	}

	return config
}
