package database

import (
	"fmt"
	"net/url"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/fritter/internal/config"
	"github.com/Guyuepp/fritter/internal/repository/mysql/model"
)

const dbRetryInterval = 2 * time.Second

// gormLogger sends gorm's warnings and errors through logrus. A missing row is
// an ordinary lookup result and is not logged.
var gormLogger = logger.New(logrus.StandardLogger(), logger.Config{
	SlowThreshold:             200 * time.Millisecond,
	LogLevel:                  logger.Warn,
	IgnoreRecordNotFoundError: true,
})

// Dialector builds the gorm dialector for the configured DB_TYPE
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "mysql", "mariadb":
		val := url.Values{}
		val.Add("parseTime", "1")
		val.Add("charset", "utf8mb4")
		val.Add("loc", "UTC")
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
			cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, val.Encode())
		return mysql.Open(dsn), nil

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBPort)
		return postgres.Open(dsn), nil

	case "sqlite":
		// DBName is the file path, or ":memory:"
		return sqlite.Open(cfg.DBName), nil

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}
}

// Open connects with the given dialector. Duplicate-key errors are translated
// into gorm.ErrDuplicatedKey so repositories can report conflicts.
func Open(dialector gorm.Dialector, poolSize int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}

	// sqlite allows a single writer, and every ":memory:" connection is its own database
	if dialector.Name() == "sqlite" {
		poolSize = 1
	}
	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetMaxIdleConns(max(poolSize/2, 1))

	return db, nil
}

// Connect opens the configured database, retrying while it comes up
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	for i := range max(cfg.DBMaxRetry, 1) {
		db, err = Open(dialector, cfg.DBPoolSize)
		if err == nil {
			if err = ping(db); err == nil {
				break
			}
			_ = Close(db)
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, cfg.DBMaxRetry, err)
		time.Sleep(dbRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to database after retries: %w", err)
	}

	logrus.Infof("connected to %s database: %s", cfg.DBType, cfg.DBName)
	return db, nil
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// AutoMigrate creates or updates every table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Follow{},
		&model.Like{},
		&model.Collection{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// OpenMemory opens a migrated in-memory sqlite database
func OpenMemory() (*gorm.DB, error) {
	db, err := Open(sqlite.Open(":memory:"), 1)
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
