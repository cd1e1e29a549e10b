package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"
)

// Defaults applied by New when the yaml leaves a value at zero.
const (
	defaultStoragePrecision  = 7
	defaultSearchPrecision   = 4
	defaultUpdateInterval    = 30 * time.Second
	defaultMaxClockSkew      = time.Minute
	defaultRateLimit         = 0.5
	defaultRateBurst         = 3
	defaultWatchInterval     = 15 * time.Second
	defaultStreamBufferSize  = 8
	defaultMaxMessageLength  = 2000
	defaultMaxUploadBytes    = 5 << 20
	defaultRedisKeyPrefix    = "buzzer"
	defaultFirestoreUsersKey = "users"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Geo controls geohash precisions and neighbour cell search
	Geo *GeoConfig `json:"geo" yaml:"geo"`

	// Proximity configures nearby queries and their live refresh
	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	// Location configures the location update pipeline
	Location *LocationConfig `json:"location" yaml:"location"`

	// Index selects the spatial index backend
	Index *IndexConfig `json:"index" yaml:"index"`

	// Stream configures live subscription queues
	Stream *StreamConfig `json:"stream" yaml:"stream"`

	Chat *ChatConfig `json:"chat" yaml:"chat"`

	// Media configures profile picture storage
	Media *MediaConfig `json:"media" yaml:"media"`

	// Firebase configuration for push notifications, ID tokens and Firestore
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig selects how bearer tokens are verified
type AuthConfig struct {
	// Provider is "jwt" (HS256 with SecretKey) or "firebase" (Firebase ID tokens)
	Provider  string `json:"provider" yaml:"provider"`
	SecretKey string `json:"secretKey" yaml:"secretKey"`
}

// GeoConfig defines geohash precisions
type GeoConfig struct {
	StoragePrecision int `json:"storagePrecision" yaml:"storagePrecision"`
	SearchPrecision  int `json:"searchPrecision" yaml:"searchPrecision"`

	// Query the 8 adjacent prefix cells as well, removing misses near cell edges
	NeighborSearch bool `json:"neighborSearch" yaml:"neighborSearch"`
}

// ProximityConfig defines nearby query limits
type ProximityConfig struct {
	// Maximum results per query, 0 = unlimited
	MaxResults int `json:"maxResults" yaml:"maxResults"`

	// Refresh interval of the live nearby stream
	WatchInterval time.Duration `json:"watchInterval" yaml:"watchInterval"`
}

// LocationConfig defines the location update pipeline
type LocationConfig struct {
	// Interval between recurring updates of an active session
	UpdateInterval time.Duration `json:"updateInterval" yaml:"updateInterval"`

	// Reports stamped further than this in the future are rejected
	MaxClockSkew time.Duration `json:"maxClockSkew" yaml:"maxClockSkew"`

	// Immediate reports per second allowed per user, and the burst on top of it
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	RateBurst int     `json:"rateBurst" yaml:"rateBurst"`
}

// IndexConfig selects the spatial index backend
type IndexConfig struct {
	// Backend is one of memory, postgres, redis, firestore
	Backend string `json:"backend" yaml:"backend"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firestore collection holding user documents
	FirestoreCollection string `json:"firestoreCollection" yaml:"firestoreCollection"`
}

// RedisConfig defines the redis connection for the redis index backend
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// StreamConfig defines live subscription queues
type StreamConfig struct {
	// Snapshots buffered per subscriber before the oldest is dropped
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`
}

// ChatConfig defines chat limits
type ChatConfig struct {
	MaxMessageLength int `json:"maxMessageLength" yaml:"maxMessageLength"`
}

// MediaConfig defines the media bucket
type MediaConfig struct {
	// gocloud.dev bucket URL, e.g. gs://bucket, file:///var/lib/buzzer/media, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Prefix of download URLs handed to clients
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section and zero value with its default.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = "jwt"
	}

	if cfg.Geo == nil {
		cfg.Geo = &GeoConfig{}
	}
	if cfg.Geo.StoragePrecision <= 0 {
		cfg.Geo.StoragePrecision = defaultStoragePrecision
	}
	if cfg.Geo.SearchPrecision <= 0 {
		cfg.Geo.SearchPrecision = defaultSearchPrecision
	}

	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
	if cfg.Proximity.WatchInterval <= 0 {
		cfg.Proximity.WatchInterval = defaultWatchInterval
	}

	if cfg.Location == nil {
		cfg.Location = &LocationConfig{}
	}
	if cfg.Location.UpdateInterval <= 0 {
		cfg.Location.UpdateInterval = defaultUpdateInterval
	}
	if cfg.Location.MaxClockSkew <= 0 {
		cfg.Location.MaxClockSkew = defaultMaxClockSkew
	}
	if cfg.Location.RateLimit <= 0 {
		cfg.Location.RateLimit = defaultRateLimit
	}
	if cfg.Location.RateBurst <= 0 {
		cfg.Location.RateBurst = defaultRateBurst
	}

	if cfg.Index == nil {
		cfg.Index = &IndexConfig{}
	}
	if cfg.Index.Backend == "" {
		cfg.Index.Backend = "memory"
	}
	if cfg.Index.FirestoreCollection == "" {
		cfg.Index.FirestoreCollection = defaultFirestoreUsersKey
	}
	if cfg.Index.Redis != nil && cfg.Index.Redis.KeyPrefix == "" {
		cfg.Index.Redis.KeyPrefix = defaultRedisKeyPrefix
	}

	if cfg.Stream == nil {
		cfg.Stream = &StreamConfig{}
	}
	if cfg.Stream.BufferSize <= 0 {
		cfg.Stream.BufferSize = defaultStreamBufferSize
	}

	if cfg.Chat == nil {
		cfg.Chat = &ChatConfig{}
	}
	if cfg.Chat.MaxMessageLength <= 0 {
		cfg.Chat.MaxMessageLength = defaultMaxMessageLength
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.BucketURL == "" {
		cfg.Media.BucketURL = "mem://"
	}
	if cfg.Media.MaxUploadBytes <= 0 {
		cfg.Media.MaxUploadBytes = defaultMaxUploadBytes
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
