package router

import (
	"net/http"

	"rec-go/internal/config"
	"rec-go/internal/handler"
	"rec-go/internal/middleware"
	"rec-go/internal/repository"
	"rec-go/internal/service"
	"rec-go/internal/utils"
	"rec-go/pkg/confirm_token"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	tokens confirm_token.Store,
) *gin.Engine {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// binding 标签里用到的自定义规则
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.GetMaxBytes()

	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.MetricsMiddleware())

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "人员记录管理系统 API",
			"version": "1.0.0",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repository
	userRepo := repository.NewUserRepository(db)
	batchRepo := repository.NewBatchRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	// Service
	authService := service.NewAuthService(userRepo, jwtManager, cfg)
	recordService := service.NewRecordService(batchRepo, recordRepo, logger)
	searchService := service.NewSearchService(recordRepo, logger)
	relationshipService := service.NewRelationshipService(recordRepo, logger)
	statsService := service.NewStatsService(recordRepo)
	clearService := service.NewClearService(recordService, tokens, cfg.ClearConfirm.GetTTL(), logger)
	ingestService := service.NewIngestService(recordService, logger)

	// Handler
	authHandler := handler.NewAuthHandler(authService, logger)
	adminHandler := handler.NewAdminHandler(authService, clearService, logger)
	batchHandler := handler.NewBatchHandler(recordService, logger)
	recordHandler := handler.NewRecordHandler(recordService, logger)
	searchHandler := handler.NewSearchHandler(searchService, logger)
	relationshipHandler := handler.NewRelationshipHandler(relationshipService, logger)
	statsHandler := handler.NewStatsHandler(statsService, logger)
	uploadHandler := handler.NewUploadHandler(ingestService, cfg.Upload.GetMaxBytes(), logger)

	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			authorized.GET("/me", authHandler.GetMe)
			authorized.POST("/logout", authHandler.Logout)

			// 批次
			authorized.GET("/batches", batchHandler.ListBatches)
			authorized.POST("/batches", batchHandler.CreateBatch)
			authorized.GET("/batches/:batch_id/records", batchHandler.GetBatchRecords)
			authorized.GET("/batches/:batch_id/files", batchHandler.GetBatchFiles)
			authorized.GET("/batches/:batch_id/file_records", batchHandler.GetFileRecords)

			// 记录
			authorized.GET("/records", recordHandler.ListRecords)
			authorized.POST("/records", recordHandler.AddRecord)
			authorized.GET("/records/export", recordHandler.ExportRecords)
			authorized.POST("/records/bulk_edit", recordHandler.BulkEdit)
			authorized.GET("/records/:id", recordHandler.GetRecord)
			authorized.PUT("/records/:id", recordHandler.UpdateRecord)
			authorized.PUT("/records/:id/status", relationshipHandler.SetStatus)
			authorized.POST("/records/:id/revert", relationshipHandler.Revert)

			// 搜索
			authorized.GET("/search", searchHandler.Search)
			authorized.POST("/search/advanced", searchHandler.SearchAdvanced)

			// 关系与统计
			authorized.GET("/relationships/:status", relationshipHandler.ListByStatus)
			authorized.GET("/stats/occupations", statsHandler.OccupationStats)
			authorized.GET("/stats/relationships", statsHandler.RelationshipStats)
			authorized.GET("/stats/batch_relationships", statsHandler.BatchRelationshipStats)

			// 上传
			authorized.POST("/upload", uploadHandler.Upload)

			// 管理员接口
			adminGroup := authorized.Group("/admin")
			adminGroup.Use(middleware.AdminMiddleware())
			{
				adminGroup.GET("/users", adminHandler.ListUsers)
				adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)
				adminGroup.POST("/clear/request", adminHandler.RequestClear)
				adminGroup.POST("/clear/confirm", adminHandler.ConfirmClear)
			}
		}
	}

	return r
}
