package handler

import (
	"errors"
	"strconv"

	"rec-go/internal/service"
	"rec-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError 按错误类型返回状态码，未知错误记日志后返回 500
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrUnknownField),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrConfirmationInvalid),
		errors.Is(err, service.ErrUsernameTaken):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrRecordNotFound),
		errors.Is(err, service.ErrBatchNotFound),
		errors.Is(err, service.ErrUserNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserDisabled):
		utils.Unauthorized(c, err.Error())
	default:
		_ = c.Error(err)
		logger.WithError(err).WithField("path", c.FullPath()).Error("请求处理失败")
		utils.InternalError(c, "服务器内部错误")
	}
}

// parseIDParam 解析路径中的数字ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequest(c, "无效的"+name)
		return 0, false
	}
	return uint(id), true
}

// parseOptionalBatchID 解析可选的 batch_id 查询参数，缺省时返回 nil
func parseOptionalBatchID(c *gin.Context) (*uint, bool) {
	raw := c.Query("batch_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的batch_id")
		return nil, false
	}
	batchID := uint(id)
	return &batchID, true
}
