package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Redis     RedisConfig     `yaml:"redis"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

type AppConfig struct {
	AppName     string `yaml:"name"`
	Environment string `yaml:"env"`
	HTTPPort    string `yaml:"http_port"`
}

type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	DBHost     string `yaml:"host"`
	DBPort     string `yaml:"port"`
	DBName     string `yaml:"name"`
	DBUser     string `yaml:"user"`
	DBPassword string `yaml:"password"`
	DBSSLMode  string `yaml:"ssl_mode"`
	SQLitePath string `yaml:"sqlite_path"`

	ConnectTimeout        time.Duration `yaml:"connect_timeout"`
	PoolMaxConns          int32         `yaml:"pool_max_conns"`
	PoolMinConns          int32         `yaml:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `yaml:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `yaml:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `yaml:"pool_health_check_period"`

	MigrationsDir string `yaml:"migrations_dir"`
	RunSeeders    bool   `yaml:"run_seeders"`
}

type JWTConfig struct {
	AccessSecret     string        `yaml:"access_secret"`
	RefreshSecret    string        `yaml:"refresh_secret"`
	AccessExpiresIn  time.Duration `yaml:"access_expires_in"`
	RefreshExpiresIn time.Duration `yaml:"refresh_expires_in"`
}

type RedisConfig struct {
	Host          string        `yaml:"host"`
	Port          string        `yaml:"port"`
	Password      string        `yaml:"password"`
	TTL           time.Duration `yaml:"ttl"`
	EventsChannel string        `yaml:"events_channel"`
}

type SchedulerConfig struct {
	// JobExpirySchedule is a robfig/cron spec. Empty, the default, disables
	// the sweeper so jobs stay listed until their poster deactivates them.
	JobExpirySchedule string `yaml:"job_expiry_schedule"`
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads the optional YAML file named by CONFIG_FILE and then applies
// environment variables on top of it. Environment always wins.
func Load() (Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	var missing []string
	var invalid []string

	req := func(key, current string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			v = current
		}
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, current string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return current
	}
	dur := func(key string, current time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return current
		}
		d, err := parseDuration(raw)
		if err != nil {
			invalid = append(invalid, key)
			return current
		}
		return d
	}
	i32 := func(key string, current int32) int32 {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return current
		}
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return current
		}
		return int32(v)
	}
	flag := func(key string, current bool) bool {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return current
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return current
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME", cfg.App.AppName),
		Environment: req("APP_ENV", cfg.App.Environment),
		HTTPPort:    req("HTTP_PORT", cfg.App.HTTPPort),
	}

	db := cfg.Database
	db.Driver = strings.ToLower(opt("STORE_DRIVER", db.Driver))
	db.DBHost = opt("DB_HOST", db.DBHost)
	db.DBPort = opt("DB_PORT", db.DBPort)
	db.DBName = opt("DB_NAME", db.DBName)
	db.DBUser = opt("DB_USER", db.DBUser)
	db.DBPassword = opt("DB_PASSWORD", db.DBPassword)
	db.DBSSLMode = opt("DB_SSL_MODE", db.DBSSLMode)
	db.SQLitePath = opt("SQLITE_PATH", db.SQLitePath)
	db.ConnectTimeout = dur("DB_CONNECT_TIMEOUT", db.ConnectTimeout)
	db.PoolMaxConns = i32("DB_POOL_MAX_CONNS", db.PoolMaxConns)
	db.PoolMinConns = i32("DB_POOL_MIN_CONNS", db.PoolMinConns)
	db.PoolMaxConnLifetime = dur("DB_POOL_MAX_CONN_LIFETIME", db.PoolMaxConnLifetime)
	db.PoolMaxConnIdleTime = dur("DB_POOL_MAX_CONN_IDLE_TIME", db.PoolMaxConnIdleTime)
	db.PoolHealthCheckPeriod = dur("DB_POOL_HEALTH_CHECK_PERIOD", db.PoolHealthCheckPeriod)
	db.MigrationsDir = opt("MIGRATIONS_DIR", db.MigrationsDir)
	db.RunSeeders = flag("RUN_SEEDERS", db.RunSeeders)

	switch db.Driver {
	case StoreDriverPostgres:
		for _, kv := range [][2]string{
			{"DB_HOST", db.DBHost}, {"DB_PORT", db.DBPort}, {"DB_NAME", db.DBName}, {"DB_USER", db.DBUser},
		} {
			if kv[1] == "" {
				missing = append(missing, kv[0])
			}
		}
		if db.DBSSLMode == "" {
			db.DBSSLMode = "disable"
		}
	case StoreDriverSQLite:
		if db.SQLitePath == "" {
			db.SQLitePath = "job-board.db"
		}
	default:
		invalid = append(invalid, "STORE_DRIVER")
	}
	cfg.Database = db

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET", cfg.JWT.AccessSecret),
		RefreshSecret:    req("JWT_REFRESH_SECRET", cfg.JWT.RefreshSecret),
		AccessExpiresIn:  dur("JWT_ACCESS_EXPIRES_IN", cfg.JWT.AccessExpiresIn),
		RefreshExpiresIn: dur("JWT_REFRESH_EXPIRES_IN", cfg.JWT.RefreshExpiresIn),
	}

	cfg.Redis = RedisConfig{
		Host:          opt("REDIS_HOST", cfg.Redis.Host),
		Port:          opt("REDIS_PORT", cfg.Redis.Port),
		Password:      opt("REDIS_PASSWORD", cfg.Redis.Password),
		TTL:           dur("REDIS_TTL", cfg.Redis.TTL),
		EventsChannel: opt("REDIS_EVENTS_CHANNEL", cfg.Redis.EventsChannel),
	}

	if v, ok := os.LookupEnv("JOB_EXPIRY_SCHEDULE"); ok {
		cfg.Scheduler.JobExpirySchedule = strings.TrimSpace(v)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		Database: DatabaseConfig{
			Driver:         StoreDriverPostgres,
			ConnectTimeout: 5 * time.Second,
			MigrationsDir:  "migrations",
		},
		JWT: JWTConfig{
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 7 * 24 * time.Hour,
		},
		Redis: RedisConfig{
			Host:          "localhost",
			Port:          "6379",
			TTL:           600 * time.Second,
			EventsChannel: "jobboard:events",
		},
	}
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// parseDuration accepts Go durations ("15m") and bare seconds ("900").
func parseDuration(raw string) (time.Duration, error) {
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("negative duration %q", raw)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return d, nil
}
