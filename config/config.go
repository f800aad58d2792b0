package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"truefans/internal/domain/constants"

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
	defaultMaxRequestBodySize = "100KB"
	defaultStoreTimeout       = 5 * time.Second
	defaultNearbyRadiusMeters = 500.0
	defaultNearbyMaxRadius    = 5000.0
	defaultLogoSize           = 29
	defaultImageMaxBytes      = 5 << 20
	defaultImageFetchTimeout  = 10 * time.Second
	defaultImageKeyPrefix     = "logos"
	defaultPassDescription    = "Restaurant Loyalty Pass"
	defaultPassTypeIdentifier = "pass.com.truefans.loyalty"
	defaultPassOrganization   = "TrueFans"
	defaultDirectoryCacheTTL  = time.Minute
	defaultAMQPQueue          = "pass.events"
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

	// Store selects the pass record store backend
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for the Firestore backend
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Redis configuration for the restaurant directory cache (optional)
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Packager configuration for wallet pass bundles
	Packager *PackagerConfig `json:"packager" yaml:"packager"`

	// ImageSource configuration for logo retrieval
	ImageSource *ImageSourceConfig `json:"imageSource" yaml:"imageSource"`

	// Redemption configuration for counter accrual
	Redemption *RedemptionConfig `json:"redemption" yaml:"redemption"`

	// Nearby configuration for restaurant proximity search
	Nearby *NearbyConfig `json:"nearby" yaml:"nearby"`

	// QRCode configuration for pass QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines the pass record store backend
type StoreConfig struct {
	// Driver is one of "postgres", "firestore" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// Upper bound of every store operation
	OperationTimeout time.Duration `json:"operationTimeout" yaml:"operationTimeout"`

	// YAML file of restaurants and locations loaded by the memory driver (optional)
	SeedPath string `json:"seedPath" yaml:"seedPath"`
}

// FirebaseConfig defines Firebase configuration for the Firestore backend
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RedisConfig defines the directory cache connection
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// PackagerConfig defines wallet pass packaging
type PackagerConfig struct {
	PassTypeIdentifier string `json:"passTypeIdentifier" yaml:"passTypeIdentifier"`
	TeamIdentifier     string `json:"teamIdentifier" yaml:"teamIdentifier"`
	OrganizationName   string `json:"organizationName" yaml:"organizationName"`
	Description        string `json:"description" yaml:"description"`

	// Directory holding a base pass.json and images; built-in model when empty
	ModelDir string `json:"modelDir" yaml:"modelDir"`

	// Parent directory of per-call scratch directories; os.TempDir() when empty
	ScratchDir string `json:"scratchDir" yaml:"scratchDir"`

	// What to do when the logo cannot be fetched or normalized: "skip" or "fail"
	LogoFailurePolicy string `json:"logoFailurePolicy" yaml:"logoFailurePolicy"`

	// Edge length in pixels of the normalized square logo
	LogoSize int `json:"logoSize" yaml:"logoSize"`
}

// ImageSourceConfig defines where logo references resolve
type ImageSourceConfig struct {
	// gocloud.dev bucket URL, e.g. gs://bucket, file:///var/logos, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Key prefix prepended to the base name of non-URL references
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	HTTPTimeout time.Duration `json:"httpTimeout" yaml:"httpTimeout"`
	RetryMax    int           `json:"retryMax" yaml:"retryMax"`
	MaxBytes    int64         `json:"maxBytes" yaml:"maxBytes"`
}

// RedemptionConfig defines counter accrual per redemption
type RedemptionConfig struct {
	PointsPerVisit int64 `json:"pointsPerVisit" yaml:"pointsPerVisit"`
}

// NearbyConfig defines restaurant proximity search limits
type NearbyConfig struct {
	DefaultRadiusMeters float64 `json:"defaultRadiusMeters" yaml:"defaultRadiusMeters"`
	MaxRadiusMeters     float64 `json:"maxRadiusMeters" yaml:"maxRadiusMeters"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "amqp"; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// RabbitMQ connection URL and queue (for amqp provider)
	AMQPURL   string `json:"amqpUrl" yaml:"amqpUrl"`
	AMQPQueue string `json:"amqpQueue" yaml:"amqpQueue"`
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

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never deal with nil sections.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = constants.StoreDriverPostgres
	}
	if cfg.Store.OperationTimeout <= 0 {
		cfg.Store.OperationTimeout = defaultStoreTimeout
	}

	if cfg.Packager == nil {
		cfg.Packager = &PackagerConfig{}
	}
	if cfg.Packager.PassTypeIdentifier == "" {
		cfg.Packager.PassTypeIdentifier = defaultPassTypeIdentifier
	}
	if cfg.Packager.OrganizationName == "" {
		cfg.Packager.OrganizationName = defaultPassOrganization
	}
	if cfg.Packager.Description == "" {
		cfg.Packager.Description = defaultPassDescription
	}
	if cfg.Packager.LogoFailurePolicy == "" {
		cfg.Packager.LogoFailurePolicy = constants.LogoPolicySkip
	}
	if cfg.Packager.LogoSize <= 0 {
		cfg.Packager.LogoSize = defaultLogoSize
	}

	if cfg.ImageSource == nil {
		cfg.ImageSource = &ImageSourceConfig{}
	}
	if cfg.ImageSource.KeyPrefix == "" {
		cfg.ImageSource.KeyPrefix = defaultImageKeyPrefix
	}
	if cfg.ImageSource.HTTPTimeout <= 0 {
		cfg.ImageSource.HTTPTimeout = defaultImageFetchTimeout
	}
	if cfg.ImageSource.MaxBytes <= 0 {
		cfg.ImageSource.MaxBytes = defaultImageMaxBytes
	}

	if cfg.Redemption == nil {
		cfg.Redemption = &RedemptionConfig{}
	}

	if cfg.Nearby == nil {
		cfg.Nearby = &NearbyConfig{}
	}
	if cfg.Nearby.DefaultRadiusMeters <= 0 {
		cfg.Nearby.DefaultRadiusMeters = defaultNearbyRadiusMeters
	}
	if cfg.Nearby.MaxRadiusMeters <= 0 {
		cfg.Nearby.MaxRadiusMeters = defaultNearbyMaxRadius
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Redis != nil && cfg.Redis.TTL <= 0 {
		cfg.Redis.TTL = defaultDirectoryCacheTTL
	}

	if cfg.PubSub != nil && cfg.PubSub.AMQPQueue == "" {
		cfg.PubSub.AMQPQueue = defaultAMQPQueue
	}
}

func (cfg *Config) validate() error {
	switch cfg.Store.Driver {
	case constants.StoreDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres store driver")
		}
	case constants.StoreDriverFirestore:
		if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
			return errors.New("firebase.projectId is required for the firestore store driver")
		}
	case constants.StoreDriverMemory:
	default:
		return errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}

	switch cfg.Packager.LogoFailurePolicy {
	case constants.LogoPolicySkip, constants.LogoPolicyFail:
	default:
		return errors.Errorf("unknown logo failure policy: %s", cfg.Packager.LogoFailurePolicy)
	}

	if cfg.Nearby.DefaultRadiusMeters > cfg.Nearby.MaxRadiusMeters {
		return errors.New("nearby.defaultRadiusMeters must not exceed nearby.maxRadiusMeters")
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
