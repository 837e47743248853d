package maputil

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// stringToTrimmedSliceHookFunc "a, b" 형태의 문자열을 ["a", "b"]로 바꿉니다.
// 환경 변수로 슬라이스 설정(SERVIN_API__CORS__ALLOW_ORIGINS 등)을 넘길 때 사용됩니다. []byte는 건드리지 않습니다.
func stringToTrimmedSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		if s == "" {
			return []string{}, nil
		}
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}
