package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"pushkit/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultHTTPHost           = "127.0.0.1"
	defaultMaxRequestBodySize = "100KB"
	defaultBatchSize          = 100
	defaultMaxPending         = 10000
	defaultMinFlushInterval   = time.Hour
	defaultMaxFlushInterval   = 3 * time.Hour
	defaultSinkTimeout        = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		// Host the control API binds to; loopback unless the agent runs as a sidecar
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	App struct {
		// VersionCode of the host application; a change forces re-registration.
		VersionCode int `json:"versionCode" yaml:"versionCode"`
	} `json:"app" yaml:"app"`

	Registration *RegistrationConfig `json:"registration" yaml:"registration"`

	Analytics *AnalyticsConfig `json:"analytics" yaml:"analytics"`

	Flush *FlushConfig `json:"flush" yaml:"flush"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Messaging *MessagingConfig `json:"messaging" yaml:"messaging"`

	Sink *SinkConfig `json:"sink" yaml:"sink"`

	Push *PushConfig `json:"push" yaml:"push"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RegistrationConfig holds the default registration parameters and worker behavior
type RegistrationConfig struct {
	// RegisterOnStart submits a registration job with these parameters at startup
	RegisterOnStart bool `json:"registerOnStart" yaml:"registerOnStart"`

	PlatformSenderID string   `json:"platformSenderId" yaml:"platformSenderId"`
	VariantID        string   `json:"variantId" yaml:"variantId"`
	VariantSecret    string   `json:"variantSecret" yaml:"variantSecret"`
	DeviceAlias      string   `json:"deviceAlias" yaml:"deviceAlias"`
	ServiceBaseURL   string   `json:"serviceBaseUrl" yaml:"serviceBaseUrl"`
	Categories       []string `json:"categories" yaml:"categories"`
	OperatingSystem  string   `json:"operatingSystem" yaml:"operatingSystem"`
	OSVersion        string   `json:"osVersion" yaml:"osVersion"`
	DeviceType       string   `json:"deviceType" yaml:"deviceType"`

	// Timeout bounds every call to the backend registration API
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// Parameters converts the configured defaults to registration parameters.
func (c *RegistrationConfig) Parameters() *entity.RegistrationParameters {
	if c == nil {
		return nil
	}

	return &entity.RegistrationParameters{
		PlatformSenderID: c.PlatformSenderID,
		VariantID:        c.VariantID,
		VariantSecret:    c.VariantSecret,
		DeviceAlias:      c.DeviceAlias,
		ServiceBaseURL:   c.ServiceBaseURL,
		Categories:       c.Categories,
		OperatingSystem:  c.OperatingSystem,
		OSVersion:        c.OSVersion,
		DeviceType:       c.DeviceType,
	}
}

// AnalyticsConfig defines analytics collection defaults
type AnalyticsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// MaxPending caps queued events per stream; the oldest are dropped beyond it
	MaxPending int `json:"maxPending" yaml:"maxPending"`
}

// FlushConfig defines batch size and the jittered flush interval bounds
type FlushConfig struct {
	BatchSize   int           `json:"batchSize" yaml:"batchSize"`
	MinInterval time.Duration `json:"minInterval" yaml:"minInterval"`
	MaxInterval time.Duration `json:"maxInterval" yaml:"maxInterval"`
}

// StorageConfig selects the backing store for events and settings
type StorageConfig struct {
	// Provider type: "memory", "redis" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// AutoMigrate creates the postgres tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// RedisConfig defines the redis key-value store
type RedisConfig struct {
	URL       string `json:"url" yaml:"url"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// MessagingConfig selects the platform messaging provider
type MessagingConfig struct {
	// Provider type: "static" or "firebase"
	Provider string `json:"provider" yaml:"provider"`

	// Token is an initial platform token; the host can also hand it over at runtime
	Token string `json:"token" yaml:"token"`

	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

// FirebaseConfig defines Firebase configuration for token validation
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// SinkConfig selects where flushed batches are delivered
type SinkConfig struct {
	// Provider type: "http" for the backend events API, "google" for Google Pub/Sub or "nats" for JetStream
	Provider string `json:"provider" yaml:"provider"`

	// Timeout bounds a single batch submission
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic prefix; the resource subject is appended (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// NATS server URL (for nats provider)
	NatsURL string `json:"natsUrl" yaml:"natsUrl"`

	// JetStream subject prefix; the resource subject is appended (for nats provider)
	Subject string `json:"subject" yaml:"subject"`
}

// PushConfig controls the push receipt endpoint
type PushConfig struct {
	// VerifyAuth validates the Google-signed OIDC token sent with Pub/Sub push requests
	VerifyAuth bool `json:"verifyAuth" yaml:"verifyAuth"`

	// Audience expected in the token; defaults to the request URL
	Audience string `json:"audience" yaml:"audience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := "", false
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile, found = candidate, true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// FLUSH_BATCHSIZE -> flush.batchSize, aligned with the keys already present in YAML
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is fine; the process environment still applies.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.Host) == "" {
		cfg.HTTP.Host = defaultHTTPHost
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Registration == nil {
		cfg.Registration = &RegistrationConfig{}
	}
	if cfg.Analytics == nil {
		cfg.Analytics = &AnalyticsConfig{}
	}
	if cfg.Analytics.MaxPending <= 0 {
		cfg.Analytics.MaxPending = defaultMaxPending
	}
	if cfg.Flush == nil {
		cfg.Flush = &FlushConfig{}
	}
	if cfg.Flush.BatchSize <= 0 {
		cfg.Flush.BatchSize = defaultBatchSize
	}
	if cfg.Flush.MinInterval <= 0 {
		cfg.Flush.MinInterval = defaultMinFlushInterval
	}
	if cfg.Flush.MaxInterval <= 0 {
		cfg.Flush.MaxInterval = defaultMaxFlushInterval
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = "memory"
	}
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Messaging == nil {
		cfg.Messaging = &MessagingConfig{}
	}
	if cfg.Messaging.Provider == "" {
		cfg.Messaging.Provider = "static"
	}
	if cfg.Sink == nil {
		cfg.Sink = &SinkConfig{}
	}
	if cfg.Sink.Provider == "" {
		cfg.Sink.Provider = "http"
	}
	if cfg.Sink.Timeout <= 0 {
		cfg.Sink.Timeout = defaultSinkTimeout
	}
	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
}

func (c *Config) validate() error {
	if c.Flush.MinInterval > c.Flush.MaxInterval {
		return errors.Errorf("flush.minInterval %s exceeds flush.maxInterval %s", c.Flush.MinInterval, c.Flush.MaxInterval)
	}
	if c.Storage.Provider == "postgres" && c.Postgres == nil {
		return errors.New("storage provider postgres requires a postgres section")
	}
	if c.Storage.Provider == "redis" && c.Redis.URL == "" {
		return errors.New("storage provider redis requires redis.url")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
