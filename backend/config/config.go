package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string // mysql | sqlite
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file, ":memory:" allowed
}

type JWT struct {
	Secret          string
	Issuer          string
	AccessExpMin    int
	RefreshExpHours int
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type News struct {
	SweepInterval       time.Duration
	WriterDeleteOwnOnly bool
}

type Admin struct {
	Username string
	Email    string
	Password string
}

type Log struct {
	Level string
	Path  string
}

type Config struct {
	Server Server
	DB     DB
	JWT    JWT
	Redis  Redis
	News   News
	Admin  Admin
	Log    Log
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("news")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "news_app")
	v.SetDefault("db.path", "news.db")
	v.SetDefault("jwt.issuer", "news-app")
	v.SetDefault("jwt.access_exp_min", 60)
	v.SetDefault("jwt.refresh_exp_hours", 168)
	v.SetDefault("redis.db", 0)
	v.SetDefault("news.sweep_interval", "1h")
	v.SetDefault("news.writer_delete_own_only", false)
	v.SetDefault("log.level", "info")
	return v
}

// Load reads the YAML file at path. Keys missing from the file fall back to
// defaults and can be overridden with NEWS_* environment variables.
func Load(path string) (*Config, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: strings.ToLower(v.GetString("db.driver")),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		Redis: Redis{Addr: v.GetString("redis.addr"), Password: v.GetString("redis.password"), DB: v.GetInt("redis.db")},
		News: News{
			SweepInterval:       v.GetDuration("news.sweep_interval"),
			WriterDeleteOwnOnly: v.GetBool("news.writer_delete_own_only"),
		},
		Admin: Admin{Username: v.GetString("admin.username"), Email: v.GetString("admin.email"), Password: v.GetString("admin.password")},
		Log:   Log{Level: v.GetString("log.level"), Path: v.GetString("log.path")},
	}
	if cfg.DB.Driver != "mysql" && cfg.DB.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}

	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.JWT.AccessExpMin = v.GetInt("jwt.access_exp_min")
	if cfg.JWT.AccessExpMin <= 0 {
		cfg.JWT.AccessExpMin = 60
	}
	cfg.JWT.RefreshExpHours = v.GetInt("jwt.refresh_exp_hours")
	if cfg.JWT.RefreshExpHours <= 0 {
		cfg.JWT.RefreshExpHours = 168
	}
	return cfg, nil
}

// Watch reloads the file on change and hands the new config to onChange.
// A file that no longer parses is reported through onErr and ignored.
func Watch(path string, onChange func(*Config), onErr func(error)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := fromViper(v)
		if err != nil {
			onErr(err)
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}
