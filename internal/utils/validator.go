package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"rec-go/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	validate        *validator.Validate
	usernamePattern = regexp.MustCompile("^[a-zA-Z0-9_]+$")
)

// InitValidator 初始化验证器
func InitValidator() {
	validate = validator.New()
	RegisterCustomValidations(validate)
}

// RegisterCustomValidations 注册自定义验证函数
// gin 的 binding 引擎也需要注册，见 router
func RegisterCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("relationship_status", validateRelationshipStatus)
}

// GetValidator 获取验证器实例
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// validateUsername 验证用户名
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	return usernamePattern.MatchString(username)
}

// validateRelationshipStatus 验证关系状态
func validateRelationshipStatus(fl validator.FieldLevel) bool {
	return models.RelationshipStatus(fl.Field().String()).Valid()
}

// ValidateStruct 验证结构体
func ValidateStruct(s interface{}) error {
	v := GetValidator()
	if err := v.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError 格式化验证错误
func formatValidationError(err error) error {
	var messages []string

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			param := e.Param()

			var message string
			switch e.Tag() {
			case "required":
				message = fmt.Sprintf("%s是必填字段", field)
			case "min":
				message = fmt.Sprintf("%s长度不能小于%s", field, param)
			case "max":
				message = fmt.Sprintf("%s长度不能大于%s", field, param)
			case "username":
				message = fmt.Sprintf("%s只能包含字母、数字和下划线，长度3-50", field)
			case "relationship_status":
				message = fmt.Sprintf("%s必须是 Regular、Friend、Enemy 或 Connected", field)
			default:
				message = fmt.Sprintf("%s验证失败: %s", field, e.Tag())
			}

			messages = append(messages, message)
		}
	}

	if len(messages) > 0 {
		return errors.New(strings.Join(messages, "; "))
	}

	return err
}
