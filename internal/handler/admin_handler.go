package handler

import (
	"strconv"

	"rec-go/internal/dto"
	"rec-go/internal/middleware"
	"rec-go/internal/service"
	"rec-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminHandler 管理员处理器
type AdminHandler struct {
	authService  *service.AuthService
	clearService *service.ClearService
	logger       *logrus.Logger
}

// NewAdminHandler 创建管理员处理器
func NewAdminHandler(authService *service.AuthService, clearService *service.ClearService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		clearService: clearService,
		logger:       logger,
	}
}

// ListUsers 获取所有用户
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	users, total, err := h.authService.ListUsers(page, perPage)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.PaginatedResponse(c, users, total, page, perPage)
}

// DeleteUser 删除用户，不能删除自己
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if self, _ := middleware.GetUserID(c); self == id {
		utils.BadRequest(c, "不能删除当前登录的用户")
		return
	}

	if err := h.authService.DeleteUser(id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessWithMessage(c, "用户已删除", gin.H{"success": true})
}

// RequestClear 申请清空全部数据，返回确认令牌
func (h *AdminHandler) RequestClear(c *gin.Context) {
	resp, err := h.clearService.RequestClear(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessWithMessage(c, "请在有效期内确认清空", resp)
}

// ConfirmClear 使用确认令牌清空全部数据
func (h *AdminHandler) ConfirmClear(c *gin.Context) {
	var req dto.ClearConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.clearService.ConfirmClear(c.Request.Context(), req.Token); err != nil {
		respondError(c, h.logger, err)
		return
	}

	username, _ := middleware.GetUsername(c)
	h.logger.WithField("username", username).Warn("全部数据已被清空")
	utils.SuccessWithMessage(c, "全部数据已清空", gin.H{"success": true})
}
