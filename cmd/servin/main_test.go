package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ajgr33nboy/servin/internal/config"
	"github.com/ajgr33nboy/servin/internal/service/api/constants"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "servin", config.AppName)
	assert.Equal(t, "servin.json", config.DefaultFilename)
	assert.NotContains(t, config.AppName, " ", "애플리케이션 이름에는 공백이 포함될 수 없습니다")
}

func TestBanner(t *testing.T) {
	t.Parallel()

	out := fmt.Sprintf(banner, "v1.2.3")
	assert.Contains(t, out, "v1.2.3")
	assert.Equal(t, 1, strings.Count(banner, "%s"), "배너에는 버전 자리표시자가 하나만 있어야 합니다")
}

func TestConfigFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"성공: 인자 없음", nil, "servin.json"},
		{"성공: 빈 인자", []string{""}, "servin.json"},
		{"성공: 경로 지정", []string{"/etc/servin/servin.json"}, "/etc/servin/servin.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, configFilename(tt.args))
		})
	}
}

func TestLogOptions(t *testing.T) {
	t.Parallel()

	prod := logOptions(false)
	assert.Equal(t, config.AppName, prod.Name)
	assert.Equal(t, applog.InfoLevel, prod.Level)
	assert.False(t, prod.EnableConsoleLog)
	assert.Equal(t, callerPathPrefix, prod.CallerPathPrefix)

	dev := logOptions(true)
	assert.Equal(t, applog.TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
}

type pingStore struct{}

func (pingStore) AppendRow(context.Context, contract.Row) error { return nil }
func (pingStore) Ping(context.Context) error                    { return nil }

func TestDependencies(t *testing.T) {
	t.Parallel()

	t.Run("성공: 저장소 없음", func(t *testing.T) {
		t.Parallel()

		deps := dependencies(nil)
		require.Len(t, deps, 2)

		assert.Equal(t, constants.DependencyEmailTransport, deps[0].Name)
		assert.True(t, deps[0].Enabled)

		assert.Equal(t, constants.DependencyRowStore, deps[1].Name)
		assert.False(t, deps[1].Enabled)
		assert.Nil(t, deps[1].Check)
	})

	t.Run("성공: Ping을 지원하는 저장소", func(t *testing.T) {
		t.Parallel()

		deps := dependencies(pingStore{})
		require.Len(t, deps, 2)
		assert.True(t, deps[1].Enabled)
		require.NotNil(t, deps[1].Check)
		assert.NoError(t, deps[1].Check(context.Background()))
	})
}
