package generation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	httputil "darkai/internal/pkg/http"
)

// Envelope 响应类型别名（使用共用的 http.Envelope）
type Envelope = httputil.Envelope

// bindParams 按请求方法绑定参数
// GET 读取查询参数，POST 只读取表单（urlencoded 或 multipart）
func bindParams(c *gin.Context, obj interface{}) error {
	if c.Request.Method == http.MethodGet {
		return allowEmptyQuery(c, c.ShouldBindQuery(obj))
	}
	if strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm) {
		return c.ShouldBindWith(obj, binding.FormMultipart)
	}
	return c.ShouldBindWith(obj, binding.FormPost)
}

// allowEmptyQuery 查询参数只要求出现，?text= 视为已提供空字符串
// 表单字段为空仍按缺失处理
func allowEmptyQuery(c *gin.Context, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make(validator.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		if _, ok := c.GetQuery(paramName(fe)); ok && fe.Tag() == "required" {
			continue
		}
		missing = append(missing, fe)
	}
	if len(missing) == 0 {
		return nil
	}
	return missing
}

func paramName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}

// abortInvalidParams 参数校验失败，返回 422，不会请求上游
func abortInvalidParams(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, httputil.NewErrorEnvelope(validationMessage(err)))
}

// validationMessage 将校验错误转换为可读信息
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := paramName(fe)
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("missing required parameter: %s", name))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("invalid parameter %s: failed on %s", name, fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
