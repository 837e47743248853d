package strutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"짧은 문자열", "hello", 10, "hello"},
		{"정확히 한계", "hello", 5, "hello"},
		{"ASCII 자르기", "hello world", 5, "hello"},
		{"한글은 문자 단위로 자른다", "안녕하세요", 2, "안녕"},
		{"이모지", "👋👋👋", 1, "👋"},
		{"0 이하", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateRunes(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}

	long := strings.Repeat("가", 6000)
	assert.Equal(t, 5000, utf8.RuneCountInString(TruncateRunes(long, 5000)))
}

func TestFirstToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Jane", FirstToken("Jane Doe"))
	assert.Equal(t, "Jane", FirstToken("  Jane\t\nDoe  "))
	assert.Equal(t, "Prince", FirstToken("Prince"))
	assert.Equal(t, "", FirstToken("   "))
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, SplitAndTrim("a, , b,c", ","))
	assert.Nil(t, SplitAndTrim(" , ", ","))
	assert.Equal(t, "hello world", NormalizeSpaces("  hello   world "))
}

func TestMask(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "secr***", Mask("secret12"))
	assert.Equal(t, "1234***abcd", Mask("1234567890abcd"))

	assert.Equal(t, "ja***@example.com", MaskEmail("jane.doe@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("jd@example.com"))
	assert.Equal(t, "***", MaskEmail("abc"))
}
