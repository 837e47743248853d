package contact

import (
	"reflect"
	"strings"
	"time"

	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/pkg/maputil"
	"github.com/ajgr33nboy/servin/pkg/strutil"
	"github.com/ajgr33nboy/servin/pkg/validation"
	"github.com/go-playground/validator/v10"
)

const (
	// MaxFieldLength name, email, message 각각의 최대 문자 수 (이스케이프 이후 기준)
	MaxFieldLength = 5000

	// DefaultSource source가 비어 있을 때 사용하는 값
	DefaultSource = "unknown"
)

// RawSubmission 요청 본문에서 디코딩한 가공 전 문의입니다.
// 문자열이 아닌 값(숫자, 불리언)은 문자열로 변환되고 null은 값 없음으로 취급됩니다.
type RawSubmission struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,contact_email"`
	Message   string `json:"message" validate:"required"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// Submission 이스케이프, trim, 길이 제한을 거친 문의입니다.
// 알림, 자동 응답, 행 기록 단계에는 이 형태만 전달됩니다.
type Submission struct {
	Name      string
	Email     string
	Message   string
	Timestamp time.Time
	Source    string
}

// Address 메일 헤더에 쓸 수 있도록 정제 단계의 엔티티를 되돌린 이메일 주소입니다.
// 헤더는 HTML이 아니므로 To, Reply-To, mailto 링크에는 Email 대신 이 값을 사용합니다.
func (s Submission) Address() string {
	return htmlUnescaper.Replace(s.Email)
}

var (
	htmlEscaper = strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
	)
	htmlUnescaper = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#x27;", "'",
	)

	submissionValidator = newSubmissionValidator()
)

func newSubmissionValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	if err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return validation.IsEmailShape(fl.Field().String())
	}); err != nil {
		panic("초기화 치명적 오류: 'contact_email' 유효성 검사 함수 등록에 실패했습니다: " + err.Error())
	}
	return v
}

// Validate 디코딩된 요청 본문을 검증하고 Submission으로 변환합니다. 부수 효과는 없습니다.
//
//   - name, email, message 중 하나라도 없거나 공백뿐이면 ErrMissingField
//   - email이 local@domain.tld 형태가 아니면 ErrInvalidEmail
//   - timestamp가 없거나 해석할 수 없으면 now, source가 없으면 "unknown"
func Validate(raw map[string]any, now time.Time) (Submission, error) {
	rs, err := maputil.Decode[RawSubmission](raw)
	if err != nil {
		// 문자열 필드에 객체나 배열이 들어온 경우
		return Submission{}, ErrInvalidBody
	}

	rs.Name = strings.TrimSpace(rs.Name)
	rs.Email = strings.TrimSpace(rs.Email)
	rs.Message = strings.TrimSpace(rs.Message)
	rs.Source = strings.TrimSpace(rs.Source)

	if err := checkRequired(rs); err != nil {
		return Submission{}, err
	}

	return Submission{
		Name:      Sanitize(rs.Name),
		Email:     Sanitize(rs.Email),
		Message:   Sanitize(rs.Message),
		Timestamp: parseTimestamp(rs.Timestamp, now),
		Source:    defaultString(rs.Source, DefaultSource),
	}, nil
}

func checkRequired(rs *RawSubmission) error {
	err := submissionValidator.Struct(rs)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.Internal, "문의 검증 중 알 수 없는 오류가 발생했습니다")
	}

	var missing []string
	invalidEmail := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "contact_email":
			invalidEmail = true
		}
	}

	if len(missing) > 0 {
		return apperrors.Wrap(ErrMissingField, apperrors.InvalidInput, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if invalidEmail {
		return ErrInvalidEmail
	}
	return apperrors.Wrap(err, apperrors.InvalidInput, "Invalid submission")
}

// Sanitize < > " ' 를 HTML 엔티티로 바꾸고 앞뒤 공백을 제거한 뒤 MaxFieldLength 문자로 자릅니다.
// 네 문자가 없는 입력에 대해서는 여러 번 적용해도 결과가 같습니다.
func Sanitize(s string) string {
	s = htmlEscaper.Replace(s)
	s = strings.TrimSpace(s)
	return strutil.TruncateRunes(s, MaxFieldLength)
}

func parseTimestamp(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return now
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return now
	}
	return t
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
