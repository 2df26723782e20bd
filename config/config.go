package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultAPIURL         = "http://localhost:8000"
	defaultPollInterval   = 5 * time.Minute
	defaultSettleDelay    = time.Second
	defaultBackendTimeout = 30 * time.Second
	defaultBridgePort     = 17321
	defaultStoragePath    = "auto.db"
	defaultToastDuration  = 3 * time.Second
	defaultTitle          = "AUTO Marketplace"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Backend BackendConfig `json:"backend" yaml:"backend"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Poller PollerConfig `json:"poller" yaml:"poller"`

	Bridge BridgeConfig `json:"bridge" yaml:"bridge"`

	// Notifier configuration for paid-order alerts
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	Page PageConfig `json:"page" yaml:"page"`

	Dashboard DashboardConfig `json:"dashboard" yaml:"dashboard"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines how the platform REST API is reached
type BackendConfig struct {
	// API URL offered at login when none has been stored yet
	DefaultAPIURL string        `json:"defaultApiUrl" yaml:"defaultApiUrl"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent     string        `json:"userAgent" yaml:"userAgent"`
}

// StorageConfig defines the local key/value store location
type StorageConfig struct {
	Path string `json:"path" yaml:"path"`
}

// PollerConfig defines the paid-order poller
type PollerConfig struct {
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Dedupe suppresses repeat alerts for orders already notified while they stay paid
	Dedupe bool `json:"dedupe" yaml:"dedupe"`

	NotificationTitle string `json:"notificationTitle" yaml:"notificationTitle"`
}

// BridgeConfig defines the local message bridge served by the agent
type BridgeConfig struct {
	Port     int `json:"port" yaml:"port"`
	Timeouts struct {
		ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
		WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout  time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

// NotifierConfig defines which notification channel raises paid-order alerts
type NotifierConfig struct {
	// Provider type: "desktop", "firebase" or "log"
	Provider string `json:"provider" yaml:"provider"`

	// IconPath is shown by desktop notifications
	IconPath string `json:"iconPath" yaml:"iconPath"`

	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// DeviceToken is the seller's registered FCM token
	DeviceToken string `json:"deviceToken" yaml:"deviceToken"`
}

// PageConfig defines the marketplace page integration
type PageConfig struct {
	SettleDelay time.Duration `json:"settleDelay" yaml:"settleDelay"`
	Headless    bool          `json:"headless" yaml:"headless"`
	ChromePath  string        `json:"chromePath" yaml:"chromePath"`
}

// DashboardConfig defines the terminal dashboard
type DashboardConfig struct {
	ToastDuration time.Duration `json:"toastDuration" yaml:"toastDuration"`
}

// BridgeURL returns the base URL the bridge listens on
func (c *Config) BridgeURL() string {
	return "http://127.0.0.1:" + strconv.Itoa(c.Bridge.Port)
}

// load reads <name>.yaml from the first of dirs that has one, then layers AUTO_ variables on top.
// A missing file is fine for a desktop agent; defaults and env still apply.
func load(name string, dirs []string) (*Config, error) {
	k := koanf.New(".")

	if path, ok := findFile(name+".yaml", dirs); ok {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
	}

	// AUTO_POLLER_INTERVAL -> poller.interval, spelled like the yaml key when one exists
	known := k.Raw()
	provider := env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(key, envPrefix), known), value
		},
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	return cfg, nil
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}

func findFile(name string, dirs []string) (string, bool) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

const envPrefix = "AUTO_"

// New loads config.yaml from $AUTO_CONFIG_DIR, the working directory or a config directory above it
func New() (*Config, error) {
	dirs := []string{".", "config", "../config", "../../config"}
	if dir := os.Getenv("AUTO_CONFIG_DIR"); dir != "" {
		dirs = append([]string{dir}, dirs...)
	}

	cfg, err := load("config", dirs)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Env.ServiceName) == "" {
		cfg.Env.ServiceName = "automarket"
	}
	if strings.TrimSpace(cfg.Env.Log.Level) == "" {
		cfg.Env.Log.Level = "info"
	}
	if strings.TrimSpace(cfg.Backend.DefaultAPIURL) == "" {
		cfg.Backend.DefaultAPIURL = defaultAPIURL
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}
	if strings.TrimSpace(cfg.Storage.Path) == "" {
		cfg.Storage.Path = defaultStoragePath
	}
	if cfg.Poller.Interval <= 0 {
		cfg.Poller.Interval = defaultPollInterval
	}
	if strings.TrimSpace(cfg.Poller.NotificationTitle) == "" {
		cfg.Poller.NotificationTitle = defaultTitle
	}
	if cfg.Bridge.Port == 0 {
		cfg.Bridge.Port = defaultBridgePort
	}
	if cfg.Page.SettleDelay <= 0 {
		cfg.Page.SettleDelay = defaultSettleDelay
	}
	if cfg.Dashboard.ToastDuration <= 0 {
		cfg.Dashboard.ToastDuration = defaultToastDuration
	}
}

