package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		origin  string
		wantErr bool
	}{
		{"*", false},
		{"https://jane.dev", false},
		{"http://localhost:5173", false},
		{"http://127.0.0.1:8080", false},
		{"", true},
		{"https://jane.dev/", true},
		{"https://jane.dev/contact", true},
		{"ftp://jane.dev", true},
		{"https://jane.dev?x=1", true},
		{"https://user@jane.dev", true},
		{"https://jane.dev:0", true},
		{"https://-bad.dev", true},
		{"https://jane.123", true},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			err := ValidateCORSOrigin(tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHostname(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateHostname("mail.example.co.kr"))
	assert.NoError(t, ValidateHostname("::1"))
	assert.Error(t, ValidateHostname("a..b"))
	assert.Error(t, ValidateHostname(strings.Repeat("a", 64)+".com"))
	assert.Error(t, ValidateHostname("under_score.com"))
}

func TestValidateHTTPURL(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateHTTPURL("https://github.com/jane"))
	assert.Error(t, ValidateHTTPURL("github.com/jane"))
	assert.Error(t, ValidateHTTPURL("mailto:jane@example.com"))
	assert.Error(t, ValidateHTTPURL("https://"))
}

func TestIsEmailShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@mail.example.co.kr", true},
		{"janeexample.com", false},
		{"jane@examplecom", false},
		{"jane@@example.com", false},
		{"jane doe@example.com", false},
		{"@example.com", false},
		{"jane@.com", false},
		{"jane@example.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmailShape(tt.in))
		})
	}
}

func TestValidateCronExpression(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCronExpression("0 */15 * * * *"))
	assert.NoError(t, ValidateCronExpression("@hourly"))
	assert.Error(t, ValidateCronExpression("*/15 * * * *"))
	assert.Error(t, ValidateCronExpression("not a cron"))
}
