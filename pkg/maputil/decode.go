// Package maputil map[string]any 형태의 느슨한 데이터를 구조체로 변환합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool
	hooks            []mapstructure.DecodeHookFunc
}

// Option 디코딩 동작을 바꾸는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithTagName 필드 매핑에 사용할 태그 이름 (기본값: "json")
func WithTagName(name string) Option {
	return func(c *decodingConfig) { c.tagName = name }
}

// WithWeaklyTypedInput 42 -> "42", "true" -> true 같은 느슨한 변환 허용 여부 (기본값: true)
func WithWeaklyTypedInput(enable bool) Option {
	return func(c *decodingConfig) { c.weaklyTypedInput = enable }
}

// WithErrorUnused 구조체에 없는 키가 입력에 있으면 에러로 처리합니다. (기본값: false)
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) { c.errorUnused = enable }
}

// WithDecodeHook 기본 훅보다 먼저 실행될 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) { c.hooks = append(c.hooks, hooks...) }
}

// Decode input을 새 T 값으로 디코딩합니다.
//
//	raw, err := maputil.Decode[contact.RawSubmission](payload)
func Decode[T any](input any, opts ...Option) (*T, error) {
	out := new(T)
	if err := DecodeTo(input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeTo input을 out에 병합 디코딩합니다. out에 이미 있는 값은 입력에 없는 필드에 한해 유지됩니다.
func DecodeTo[T any](input any, out *T, opts ...Option) error {
	if out == nil {
		return errors.New("디코딩 결과를 저장할 포인터가 nil입니다")
	}

	cfg := &decodingConfig{tagName: "json", weaklyTypedInput: true}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		DecodeHook:       DecodeHook(cfg.hooks...),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하지 못했습니다: %w", out, err)
	}
	return nil
}

// DecodeHook 사용자 훅 뒤에 기본 훅(TextUnmarshaler, Duration, 쉼표 구분 슬라이스)을 이어 붙인 체인을 반환합니다.
// koanf 언마샬 설정에서도 같은 체인을 사용합니다.
func DecodeHook(extra ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFunc {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(extra)+3)
	hooks = append(hooks, extra...)
	hooks = append(hooks,
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		stringToTrimmedSliceHookFunc(),
	)
	return mapstructure.ComposeDecodeHookFunc(hooks...)
}
