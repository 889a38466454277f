package main

import (
	"context"
	"os"
	"time"

	"rec-go/internal/config"
	"rec-go/internal/models"
	"rec-go/internal/repository"
	"rec-go/internal/router"
	"rec-go/internal/service"
	"rec-go/internal/utils"
	"rec-go/pkg/confirm_token"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	configFile := os.Getenv("REC_CONFIG")
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		logger.Fatalf("加载配置失败: %v", err)
	}
	if !cfg.Server.ProductionMode {
		logger.SetLevel(logrus.DebugLevel)
	}

	// 初始化数据库，表结构在这里创建
	if err := models.InitDB(cfg); err != nil {
		logger.Fatalf("初始化数据库失败: %v", err)
	}
	db := models.GetDB()
	logger.WithField("driver", cfg.Database.Driver).Info("数据库已就绪")

	tokens := newTokenStore(cfg, logger)

	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.GetExpireDuration(),
	)

	authService := service.NewAuthService(repository.NewUserRepository(db), jwtManager, cfg)
	if err := authService.InitAdmin(); err != nil {
		logger.Warnf("初始化管理员失败: %v", err)
	}

	r := router.SetupRouter(cfg, jwtManager, logger, db, tokens)

	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)
	if !cfg.Server.ProductionMode {
		logger.Infof("开发模式: 管理员账号 %s", cfg.Admin.Username)
	}

	if err := r.Run(addr); err != nil {
		logger.Fatalf("启动服务器失败: %v", err)
	}
}

// newTokenStore 配置了Redis时确认令牌存Redis，否则存进程内
func newTokenStore(cfg *config.Config, logger *logrus.Logger) confirm_token.Store {
	if !cfg.Redis.Enabled() {
		logger.Info("未配置Redis，确认令牌保存在进程内")
		return confirm_token.NewMemoryStore()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddress(),
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatalf("连接Redis失败: %v", err)
	}

	logger.WithField("addr", cfg.Redis.GetAddress()).Info("确认令牌保存在Redis")
	return confirm_token.NewRedisStore(redisClient, "rec:clear_confirm:")
}
