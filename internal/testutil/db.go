// Package testutil 测试用的数据库、日志和配置
package testutil

import (
	"fmt"
	"io"
	"testing"

	"rec-go/internal/config"
	"rec-go/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB 创建独立的内存sqlite数据库并建表，测试结束时关闭
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := models.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewTestLogger 丢弃输出的日志
func NewTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

// NewTestConfig 测试用配置
func NewTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 18080},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   ":memory:",
		},
		JWT: config.JWTConfig{
			SecretKey:     "test-secret",
			Algorithm:     "HS256",
			ExpireMinutes: 60,
		},
		Admin: config.AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
		CORS: config.CORSConfig{
			Origins:      []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Authorization", "Content-Type"},
		},
		ClearConfirm: config.ClearConfirmConfig{TTLSeconds: 60},
		Upload:       config.UploadConfig{MaxFileMB: 5},
	}
}
