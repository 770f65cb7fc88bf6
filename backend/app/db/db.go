package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"news-app/backend/app/models"
	"news-app/backend/global"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string
}

func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.New(gormWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})}
	switch cfg.Driver {
	case "", "mysql":
		// dates are stored and compared in UTC
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), gcfg)
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = ":memory:"
		}
		gdb, err := gorm.Open(sqlite.Open(path+sqliteParams(path)), gcfg)
		if err != nil {
			return nil, err
		}
		if strings.Contains(path, ":memory:") {
			// every new connection to :memory: would open an empty database
			sqlDB, err := gdb.DB()
			if err != nil {
				return nil, err
			}
			sqlDB.SetMaxOpenConns(1)
		}
		return gdb, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// gormWriter forwards gorm's own log lines to the global zerolog logger.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	global.Logger.Warn().Str("component", "gorm").Msgf(format, args...)
}

func sqliteParams(path string) string {
	if strings.Contains(path, "?") {
		return "&_foreign_keys=on"
	}
	return "?_foreign_keys=on"
}

// Migrate creates the schema and seeds the role lookup table.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Role{}, &models.User{}, &models.News{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	for _, name := range models.AllRoles {
		role := models.Role{Name: name}
		if err := gdb.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
