package request

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Guyuepp/go-clean-forum/domain"
)

var registerOnce sync.Once

// RegisterValidators 把自定义校验规则注册到 gin 的 validator 上
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	var err error
	registerOnce.Do(func() {
		err = errors.Join(
			v.RegisterValidation("review_status", func(fl validator.FieldLevel) bool {
				_, err := domain.ParseReviewStatus(fl.Field().String())
				return err == nil
			}),
			v.RegisterValidation("display_status", func(fl validator.FieldLevel) bool {
				_, err := domain.ParseCommentStatus(fl.Field().String())
				return err == nil
			}),
			v.RegisterValidation("target_type", func(fl validator.FieldLevel) bool {
				_, err := domain.ParseTargetType(fl.Field().String())
				return err == nil
			}),
		)
	})
	return err
}

var msgMap = map[string]string{
	"required":       "is required",
	"max":            "must be at most %v characters",
	"gt":             "must be greater than %v",
	"gte":            "must be greater than or equal to %v",
	"oneof":          "must be one of [%v]",
	"review_status":  "must be one of PENDING, APPROVED, REJECTED",
	"display_status": "must be one of NORMAL, FOLDED",
	"target_type":    "must be one of POST, COMMENT",
}

// FormatValidationError 只返回第一个错误
func FormatValidationError(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err.Error()
	}
	first := errs[0]

	tmpl, ok := msgMap[first.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid", first.Field())
	}
	if first.Param() != "" {
		return first.Field() + " " + fmt.Sprintf(tmpl, first.Param())
	}
	return first.Field() + " " + tmpl
}
