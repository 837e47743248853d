package config

import (
	"fmt"
	"time"

	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultListenPort API 서버의 기본 포트
	DefaultListenPort = 2443

	// DefaultSendTimeout 메일 발송 1건에 허용하는 기본 시간
	DefaultSendTimeout = 15 * time.Second

	// DefaultRowStoreTimeout 행 기록 1건에 허용하는 기본 시간
	DefaultRowStoreTimeout = 10 * time.Second

	// DefaultRequestTimeout HTTP 요청 하나에 허용하는 기본 처리 시간.
	// 행 기록, 담당자 알림, 자동 응답이 순서대로 실행되므로 세 단계의 제한 시간 합보다 커야 합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultSheetName 행을 기록할 기본 시트 이름
	DefaultSheetName = "Submissions"
)

// AppConfig 문의 폼 API 서버의 최상위 설정입니다.
type AppConfig struct {
	Debug    bool           `json:"debug"`
	Contact  ContactConfig  `json:"contact"`
	Mail     MailConfig     `json:"mail"`
	RowStore RowStoreConfig `json:"row_store"`
	API      APIConfig      `json:"api"`
}

func newDefaultAppConfig() *AppConfig {
	return &AppConfig{
		Contact: ContactConfig{
			SendTimeout: DefaultSendTimeout,
		},
		Mail: MailConfig{
			Port:      587,
			TLSPolicy: TLSPolicyMandatory,
		},
		RowStore: RowStoreConfig{
			Timeout: DefaultRowStoreTimeout,
			Sheets:  SheetsConfig{SheetName: DefaultSheetName},
			Mongo:   MongoConfig{Database: AppName, Collection: "submissions"},
		},
		API: APIConfig{
			WS:             WSConfig{ListenPort: DefaultListenPort},
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.Contact, "contact"); err != nil {
		return err
	}
	if err := c.Contact.validate(); err != nil {
		return err
	}
	if err := checkStruct(v, c.Mail, "mail"); err != nil {
		return err
	}
	if err := c.RowStore.validate(v); err != nil {
		return err
	}
	return c.API.validate(v)
}

// VerifyRecommendations 동작은 하지만 운영상 주의가 필요한 설정을 경고 메시지로 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.WS.ListenPort))
	}
	if len(c.API.CORS.AllowOrigins) == 1 && c.API.CORS.AllowOrigins[0] == "*" {
		warnings = append(warnings, "CORS가 모든 도메인(*)을 허용합니다. 운영 환경에서는 포트폴리오 사이트 도메인만 허용하세요")
	}
	if c.Contact.AutoReplyEnabled && (c.Contact.WebsiteURL == "" || c.Contact.GitHubURL == "" || c.Contact.LinkedInURL == "") {
		warnings = append(warnings, "자동 응답이 활성화되어 있지만 웹사이트/프로필 링크 중 일부가 비어 있습니다. 비어 있는 링크는 자동 응답 메일에서 생략됩니다")
	}
	if c.RowStore.Kind == "" {
		warnings = append(warnings, "row_store.kind가 비어 있어 문의 내역이 기록되지 않습니다")
	}
	if c.Mail.TLSPolicy == TLSPolicyNone && !c.Mail.SSL {
		warnings = append(warnings, "SMTP 연결이 암호화되지 않습니다 (mail.tls_policy=none)")
	}

	return warnings
}

// ContactConfig 문의 처리 파이프라인 설정입니다.
type ContactConfig struct {
	RecipientEmail   string        `json:"recipient_email" validate:"required,contact_email"`
	OwnerName        string        `json:"owner_name" validate:"required"`
	AutoReplyEnabled bool          `json:"auto_reply_enabled"`
	WebsiteURL       string        `json:"website_url" validate:"omitempty,web_url"`
	GitHubURL        string        `json:"github_url" validate:"omitempty,web_url"`
	LinkedInURL      string        `json:"linkedin_url" validate:"omitempty,web_url"`
	SendTimeout      time.Duration `json:"send_timeout" validate:"gt=0"`
}

func (c *ContactConfig) validate() error {
	if c.AutoReplyEnabled && c.WebsiteURL == "" {
		return apperrors.New(apperrors.InvalidInput, "자동 응답(auto_reply_enabled) 사용 시 웹사이트 주소(contact.website_url)는 필수입니다")
	}
	return nil
}

// TLS 정책 값
const (
	TLSPolicyMandatory     = "mandatory"
	TLSPolicyOpportunistic = "opportunistic"
	TLSPolicyNone          = "none"
)

// MailConfig SMTP 발송 설정입니다.
type MailConfig struct {
	Host        string `json:"host" validate:"required,hostname_rfc1123|ip"`
	Port        int    `json:"port" validate:"min=1,max=65535"`
	Username    string `json:"username"`
	Password    string `json:"password" validate:"required_with=Username"`
	FromAddress string `json:"from_address" validate:"required,contact_email"`
	FromName    string `json:"from_name"`
	TLSPolicy   string `json:"tls_policy" validate:"oneof=mandatory opportunistic none"`
	SSL         bool   `json:"ssl"`
}

// 행 저장소 종류
const (
	RowStoreKindSheets = "sheets"
	RowStoreKindMongo  = "mongo"
)

// RowStoreConfig 문의 내역을 기록할 외부 표 형식 저장소 설정입니다. Kind가 비어 있으면 기록하지 않습니다.
type RowStoreConfig struct {
	Kind    string        `json:"kind" validate:"omitempty,oneof=sheets mongo"`
	Timeout time.Duration `json:"timeout" validate:"gt=0"`
	Sheets  SheetsConfig  `json:"sheets" validate:"-"`
	Mongo   MongoConfig   `json:"mongo" validate:"-"`
}

// Enabled 행 기록 사용 여부
func (c *RowStoreConfig) Enabled() bool {
	return c.Kind != ""
}

func (c *RowStoreConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "row_store"); err != nil {
		return err
	}

	switch c.Kind {
	case RowStoreKindSheets:
		return checkStruct(v, c.Sheets, "row_store.sheets")
	case RowStoreKindMongo:
		return checkStruct(v, c.Mongo, "row_store.mongo")
	}
	return nil
}

// SheetsConfig Google Sheets 저장소 설정입니다.
type SheetsConfig struct {
	SpreadsheetID   string `json:"spreadsheet_id" validate:"required"`
	SheetName       string `json:"sheet_name" validate:"required"`
	CredentialsFile string `json:"credentials_file" validate:"required,file"`
}

// MongoConfig MongoDB 저장소 설정입니다.
type MongoConfig struct {
	URI        string `json:"uri" validate:"required,startswith=mongodb"`
	Database   string `json:"database" validate:"required"`
	Collection string `json:"collection" validate:"required"`
}

// APIConfig HTTP API 서버 설정입니다.
type APIConfig struct {
	WS             WSConfig      `json:"ws"`
	CORS           CORSConfig    `json:"cors"`
	RequestTimeout time.Duration `json:"request_timeout" validate:"gt=0"`
}

func (c *APIConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "api"); err != nil {
		return err
	}
	return c.CORS.validate()
}

// WSConfig 웹 서버 포트 및 TLS 설정입니다.
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

// CORSConfig 교차 출처 허용 목록입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(api.cors.allow_origins) 목록이 비어있습니다")
	}
	for _, o := range c.AllowOrigins {
		if o == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return nil
}
