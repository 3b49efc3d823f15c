package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	MailDriverLog    = "log"
	MailDriverResend = "resend"
	MailDriverKafka  = "kafka"
)

type Config struct {
	AppPort  string
	AppEnv   string
	BaseURL  string
	SiteName string
	LogLevel string

	DBDriver string
	DBHost   string
	DBPort   string
	DBName   string
	DBUser   string
	DBPass   string
	DBPath   string

	RedisAddr     string
	RedisDB       int
	RedisPassword string

	IdempTTLSecs int

	MailDriver      string
	MailFrom        string
	AdminEmail      string
	MailTimeoutSecs int
	ResendAPIKey    string
	ResendBaseURL   string
	KafkaBrokers    []string
	KafkaMailTopic  string

	AdminJWTSecret string
	AdminJWTIssuer string

	UploadDir string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_port", "8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_base_url", "http://localhost:3000")
	v.SetDefault("app_site_name", "EklFounder")
	v.SetDefault("log_level", "info")

	v.SetDefault("db_driver", DriverMySQL)
	v.SetDefault("db_host", "mysql")
	v.SetDefault("db_port", "3306")
	v.SetDefault("db_name", "fintech")
	v.SetDefault("db_user", "fintech")
	v.SetDefault("db_pass", "fintech")
	v.SetDefault("db_path", "fintech.db")

	v.SetDefault("redis_addr", "redis:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_password", "")
	v.SetDefault("idempotency_ttl_seconds", 300)

	v.SetDefault("mail_driver", MailDriverLog)
	v.SetDefault("mail_from", "noreply@eklfounder.com")
	v.SetDefault("admin_email", "admin@eklfounder.com")
	v.SetDefault("mail_timeout_seconds", 10)
	v.SetDefault("resend_api_key", "")
	v.SetDefault("resend_base_url", "https://api.resend.com")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_mail_topic", "outbound-email")

	v.SetDefault("admin_jwt_secret", "")
	v.SetDefault("admin_jwt_issuer", "")

	v.SetDefault("upload_dir", "uploads")
}

// Load reads defaults, then an optional config.yaml (./configs or .), then the environment.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	// REDIS_ADDR= and similar must override a non-empty default
	v.AllowEmptyEnv(true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppPort:  v.GetString("app_port"),
		AppEnv:   v.GetString("app_env"),
		BaseURL:  strings.TrimRight(v.GetString("app_base_url"), "/"),
		SiteName: v.GetString("app_site_name"),
		LogLevel: v.GetString("log_level"),

		DBDriver: strings.ToLower(v.GetString("db_driver")),
		DBHost:   v.GetString("db_host"),
		DBPort:   v.GetString("db_port"),
		DBName:   v.GetString("db_name"),
		DBUser:   v.GetString("db_user"),
		DBPass:   v.GetString("db_pass"),
		DBPath:   v.GetString("db_path"),

		RedisAddr:     v.GetString("redis_addr"),
		RedisDB:       v.GetInt("redis_db"),
		RedisPassword: v.GetString("redis_password"),
		IdempTTLSecs:  v.GetInt("idempotency_ttl_seconds"),

		MailDriver:      strings.ToLower(v.GetString("mail_driver")),
		MailFrom:        v.GetString("mail_from"),
		AdminEmail:      v.GetString("admin_email"),
		MailTimeoutSecs: v.GetInt("mail_timeout_seconds"),
		ResendAPIKey:    v.GetString("resend_api_key"),
		ResendBaseURL:   v.GetString("resend_base_url"),
		KafkaBrokers:    splitList(v.GetString("kafka_brokers")),
		KafkaMailTopic:  v.GetString("kafka_mail_topic"),

		AdminJWTSecret: v.GetString("admin_jwt_secret"),
		AdminJWTIssuer: v.GetString("admin_jwt_issuer"),

		UploadDir: v.GetString("upload_dir"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres:
		if c.DBHost == "" || c.DBPort == "" || c.DBName == "" || c.DBUser == "" {
			return fmt.Errorf("missing %s config (DB_HOST/PORT/NAME/USER)", c.DBDriver)
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.DBPort); err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", c.DBPort, err)
		}
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("missing DB_PATH for sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.MailDriver {
	case MailDriverLog:
	case MailDriverResend:
		if c.ResendAPIKey == "" {
			return errors.New("MAIL_DRIVER=resend requires RESEND_API_KEY")
		}
	case MailDriverKafka:
		if len(c.KafkaBrokers) == 0 || c.KafkaMailTopic == "" {
			return errors.New("MAIL_DRIVER=kafka requires KAFKA_BROKERS and KAFKA_MAIL_TOPIC")
		}
	default:
		return fmt.Errorf("unsupported MAIL_DRIVER %q", c.MailDriver)
	}
	if c.UploadDir == "" {
		return errors.New("missing UPLOAD_DIR")
	}
	if c.IsProduction() && c.AdminJWTSecret == "" {
		return errors.New("ADMIN_JWT_SECRET is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) MailTimeout() time.Duration { return time.Duration(c.MailTimeoutSecs) * time.Second }

func (c *Config) dbAddr() string { return net.JoinHostPort(c.DBHost, c.DBPort) }

// DSN renders the connection string for the configured driver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
	case DriverSQLite:
		return c.DBPath
	default:
		// parseTime needed for DATETIME; loc=UTC keeps month windows stable
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
			c.DBUser, c.DBPass, c.dbAddr(), c.DBName)
	}
}
