package config

import (
	"os"
	"path/filepath"
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
	defaultMaxRequestBodySize = "100KB"

	defaultFreeDeliveryThreshold = 500
	defaultDeliveryFee           = 50
	defaultOtpCodeLength         = 6
	defaultOtpTTL                = 5 * time.Minute
	defaultOtpResendCooldown     = 30 * time.Second
	defaultOtpMaxAttempts        = 5
	defaultRedirectDelay         = 3 * time.Second
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

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	// Checkout holds the pricing knobs used at order placement.
	// The admin console exposes editable fee settings of its own, but the
	// checkout pipeline reads only these values.
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Otp configures the phone verification challenge.
	Otp *OtpConfig `json:"otp" yaml:"otp"`

	// Sms configures the outbound SMS gateway. When nil, codes are logged
	// instead of dispatched (development mode).
	Sms *SmsConfig `json:"sms" yaml:"sms"`

	// Redis backs the challenge store. When nil, an in-memory store is used.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for order event publishing.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for order confirmation push notifications.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for order tracking QR codes.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CheckoutConfig defines the pricing parameters applied at order placement.
type CheckoutConfig struct {
	// Subtotal at or above which delivery is free, in whole currency units.
	FreeDeliveryThreshold int64 `json:"freeDeliveryThreshold" yaml:"freeDeliveryThreshold"`

	// Flat delivery fee charged below the threshold.
	DeliveryFee int64 `json:"deliveryFee" yaml:"deliveryFee"`

	// How long the confirmation view is shown before redirecting.
	RedirectDelay time.Duration `json:"redirectDelay" yaml:"redirectDelay"`
}

// OtpConfig defines the phone verification challenge parameters.
type OtpConfig struct {
	CodeLength     int           `json:"codeLength" yaml:"codeLength"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	ResendCooldown time.Duration `json:"resendCooldown" yaml:"resendCooldown"`
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
}

// SmsConfig defines the outbound SMS gateway connection.
type SmsConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	SenderID string `json:"senderId" yaml:"senderId"`
}

// RedisConfig defines the Redis connection for the challenge store.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PubSubConfig defines Pub/Sub configuration for order event publishing.
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

// FirebaseConfig defines Firebase configuration for push notifications.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	TrackingBaseURL      string `json:"trackingBaseUrl" yaml:"trackingBaseUrl"`
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
			// Example: CHECKOUT_DELIVERYFEE -> checkout.deliveryFee (not checkout.deliveryfee)
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyCheckoutDefaults(cfg)

	return cfg, nil
}

// applyCheckoutDefaults fills in the storefront defaults for any pricing or
// verification knob the config file leaves unset.
func applyCheckoutDefaults(cfg *Config) {
	// A missing checkout section gets the full storefront defaults. When the
	// section is present, explicit zeros are honored: fee 0 is free delivery
	// and threshold 0 makes every order qualify. Only negative values, which
	// no pricing rule can use, fall back to the defaults.
	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{
			FreeDeliveryThreshold: defaultFreeDeliveryThreshold,
			DeliveryFee:           defaultDeliveryFee,
			RedirectDelay:         defaultRedirectDelay,
		}
	}
	if cfg.Checkout.FreeDeliveryThreshold < 0 {
		cfg.Checkout.FreeDeliveryThreshold = defaultFreeDeliveryThreshold
	}
	if cfg.Checkout.DeliveryFee < 0 {
		cfg.Checkout.DeliveryFee = defaultDeliveryFee
	}
	if cfg.Checkout.RedirectDelay < 0 {
		cfg.Checkout.RedirectDelay = defaultRedirectDelay
	}

	if cfg.Otp == nil {
		cfg.Otp = &OtpConfig{}
	}
	if cfg.Otp.CodeLength <= 0 {
		cfg.Otp.CodeLength = defaultOtpCodeLength
	}
	if cfg.Otp.TTL <= 0 {
		cfg.Otp.TTL = defaultOtpTTL
	}
	if cfg.Otp.ResendCooldown <= 0 {
		cfg.Otp.ResendCooldown = defaultOtpResendCooldown
	}
	if cfg.Otp.MaxAttempts <= 0 {
		cfg.Otp.MaxAttempts = defaultOtpMaxAttempts
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
