package models

import (
	"fmt"
	"strings"

	"rec-go/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 全局数据库实例
var DB *gorm.DB

// InitDB 初始化数据库并创建表结构
func InitDB(cfg *config.Config) error {
	db, err := Open(&cfg.Database)
	if err != nil {
		return err
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("创建表结构失败: %w", err)
	}

	DB = db
	return nil
}

// Open 按配置的驱动打开数据库连接
func Open(dbCfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dbCfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dbCfg.GetDSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(dbCfg.Path))
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", dbCfg.Driver)
	}

	logMode := logger.Silent
	if dbCfg.LogSQL {
		logMode = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if dbCfg.Driver == config.DriverSQLite {
		// sqlite只允许单写连接，内存库也只在同一连接上可见
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// sqliteDSN sqlite默认不检查外键，级联删除依赖外键
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// AutoMigrate 创建或更新表结构，可重复执行
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Batch{},
		&Record{},
		&User{},
	)
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}

// IsPostgres 判断当前连接是否为postgres
func IsPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}
