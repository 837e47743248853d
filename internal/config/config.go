// Package config servin 서버와 homelab-stats 수집기의 설정을 로드하고 검증합니다.
//
// 로드 순서 (뒤쪽이 우선):
//  1. 구조체 기본값
//  2. JSON 설정 파일
//  3. 환경 변수 (예: SERVIN_MAIL__PASSWORD -> mail.password)
package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/pkg/maputil"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 문의 폼 API 서버의 식별자입니다. 로그 파일명에도 사용됩니다.
	AppName = "servin"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 서버 설정을 덮어쓰는 환경 변수 접두어입니다.
	EnvPrefix = "SERVIN_"

	// HomelabAppName 홈랩 통계 수집기의 식별자입니다.
	HomelabAppName = "homelab-stats"

	// HomelabDefaultFilename 홈랩 통계 수집기의 기본 설정 파일입니다.
	HomelabDefaultFilename = HomelabAppName + ".json"

	// HomelabEnvPrefix 홈랩 통계 수집기 설정을 덮어쓰는 환경 변수 접두어입니다.
	HomelabEnvPrefix = "HOMELAB_"
)

// validatable 로드 직후 정합성 검사를 수행하는 설정 루트 타입입니다.
type validatable interface {
	validate(v *validator.Validate) error
}

// Load 기본 설정 파일(servin.json)을 읽습니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정한 파일을 읽어 AppConfig를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, EnvPrefix, newDefaultAppConfig())
}

// LoadHomelab 지정한 파일을 읽어 HomelabConfig를 생성합니다.
func LoadHomelab(filename string) (*HomelabConfig, error) {
	return load(filename, HomelabEnvPrefix, newDefaultHomelabConfig())
}

func load[T any, PT interface {
	*T
	validatable
}](filename, envPrefix string, defaults PT) (PT, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults, "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "기본 설정값을 불러오지 못했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("설정 파일을 해석할 수 없습니다: '%s'", filename))
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyNormalizer(envPrefix)), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수를 불러오지 못했습니다")
	}

	out := PT(new(T))
	if err := k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			TagName:          "json",
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook:       maputil.DecodeHook(),
		},
	}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "설정 값을 구조체로 변환하지 못했습니다 (알 수 없는 키나 잘못된 타입을 확인하세요)")
	}

	if err := out.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return out, nil
}

// envKeyNormalizer SERVIN_ROW_STORE__SHEETS__SHEET_NAME -> row_store.sheets.sheet_name
func envKeyNormalizer(prefix string) func(string) string {
	return func(s string) string {
		s = strings.TrimPrefix(s, prefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}
}
