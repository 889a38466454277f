package service

import "errors"

var (
	// ErrValidation 请求参数不合法
	ErrValidation = errors.New("参数验证失败")
	// ErrUnknownField 字段名不在允许范围内
	ErrUnknownField = errors.New("未知字段")
	// ErrInvalidStatus 关系状态不合法
	ErrInvalidStatus = errors.New("无效的关系状态")
	// ErrRecordNotFound 记录不存在
	ErrRecordNotFound = errors.New("记录不存在")
	// ErrBatchNotFound 批次不存在
	ErrBatchNotFound = errors.New("批次不存在")
	// ErrConfirmationInvalid 确认令牌无效或已过期
	ErrConfirmationInvalid = errors.New("确认令牌无效或已过期")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("用户不存在")
)
