package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config 应用配置结构
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis_service"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Admin        AdminConfig        `mapstructure:"admin"`
	CORS         CORSConfig         `mapstructure:"cors"`
	ClearConfirm ClearConfirmConfig `mapstructure:"clear_confirm"`
	Upload       UploadConfig       `mapstructure:"upload"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

// GetAddress 获取服务器地址
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// 支持的数据库驱动
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig 数据库配置
// postgres 使用 host/port/name/user/password，sqlite 只使用 path
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"`
	LogSQL   bool   `mapstructure:"log_sql"`
}

// GetDSN 获取postgres连接串
// 使用URL形式，密码为空或包含空格时也能正确解析
// 字段名和数据都是孟加拉文，客户端编码必须是UTF8
func (d *DatabaseConfig) GetDSN() string {
	query := url.Values{}
	if d.SSLMode != "" {
		query.Set("sslmode", d.SSLMode)
	}
	query.Set("client_encoding", "UTF8")

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
}

// GetAddress 获取Redis地址
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled Redis是否已配置
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

// JWTConfig JWT配置
type JWTConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	Algorithm     string `mapstructure:"algorithm"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

// GetExpireDuration 获取过期时间
func (j *JWTConfig) GetExpireDuration() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

// AdminConfig 管理员配置
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// CORSConfig CORS配置
type CORSConfig struct {
	Origins          []string `mapstructure:"origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
}

// ClearConfirmConfig 清空数据二次确认配置
type ClearConfirmConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// GetTTL 获取确认令牌有效期
func (c *ClearConfirmConfig) GetTTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// UploadConfig 上传配置
type UploadConfig struct {
	MaxFileMB int `mapstructure:"max_file_mb"`
}

// GetMaxBytes 获取单次上传请求的最大字节数
func (u *UploadConfig) GetMaxBytes() int64 {
	return int64(u.MaxFileMB) << 20
}
