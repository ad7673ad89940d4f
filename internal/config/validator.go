package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/melontron/cloud-engineering-deep-dive/pkg/validation"
)

// newValidator 커스텀 태그(cors_origin)가 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 구조체 필드명 대신 JSON 키를 사용한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("'cors_origin' 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

// firstFieldError 검증 결과에서 첫 번째 필드 에러를 꺼냅니다.
// 검증 자체가 실패한 경우(ValidationErrors가 아닌 에러)에는 두 번째 값으로 반환합니다.
func firstFieldError(err error) (validator.FieldError, error) {
	if err == nil {
		return nil, nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return ves[0], nil
	}
	return nil, err
}
