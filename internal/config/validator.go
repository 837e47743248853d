package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/pkg/validation"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
)

var telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// newValidator 커스텀 태그(cors_origin, contact_email, web_url, cron_spec, telegram_bot_token)가 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 키를 노출한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strcase.ToSnake(fld.Name)
		}
		return name
	})

	custom := map[string]validator.Func{
		"cors_origin": func(fl validator.FieldLevel) bool {
			return validation.ValidateCORSOrigin(fl.Field().String()) == nil
		},
		"contact_email": func(fl validator.FieldLevel) bool {
			return validation.IsEmailShape(fl.Field().String())
		},
		"web_url": func(fl validator.FieldLevel) bool {
			return validation.ValidateHTTPURL(fl.Field().String()) == nil
		},
		"cron_spec": func(fl validator.FieldLevel) bool {
			return validation.ValidateCronExpression(fl.Field().String()) == nil
		},
		"telegram_bot_token": func(fl validator.FieldLevel) bool {
			return telegramBotTokenRegex.MatchString(fl.Field().String())
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

// checkStruct 구조체를 검증하고 첫 번째 위반 항목을 사람이 읽을 수 있는 메시지로 바꿉니다.
func checkStruct(v *validator.Validate, s any, section string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정 검증에 실패했습니다", section))
	}

	fe := verrs[0]
	key := section + "." + fe.Field()

	switch fe.Tag() {
	case "required", "required_if":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("필수 설정(%s)이 비어 있습니다", key))
	case "contact_email":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("이메일 주소 형식이 올바르지 않습니다 (%s: '%v')", key, fe.Value()))
	case "web_url":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("URL 형식이 올바르지 않습니다 (%s: '%v', 예: https://example.com)", key, fe.Value()))
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("Cron 표현식이 올바르지 않습니다 (%s: '%v', 6필드 형식 예: 0 */15 * * * *)", key, fe.Value()))
	case "telegram_bot_token":
		return apperrors.New(apperrors.InvalidInput, "텔레그램 BotToken 형식이 올바르지 않습니다 (올바른 형식: 123456:ABC-DEF...)")
	case "oneof":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 값은 [%s] 중 하나여야 합니다: '%v'", key, fe.Param(), fe.Value()))
	case "min", "max", "gt", "gte":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 값이 허용 범위를 벗어났습니다 (조건: %s=%s, 입력: '%v')", key, fe.Tag(), fe.Param(), fe.Value()))
	case "file":
		return apperrors.New(apperrors.NotFound, fmt.Sprintf("%s에 지정된 파일을 찾을 수 없습니다: '%v'", key, fe.Value()))
	case "unique":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 목록에 중복된 항목이 있습니다", key))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 설정이 올바르지 않습니다 (조건: %s)", key, fe.Tag()))
}
