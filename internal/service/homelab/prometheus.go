package homelab

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

// maxPrometheusResponseSize 쿼리 응답 본문의 최대 크기
const maxPrometheusResponseSize = 1 << 20

// PrometheusClient instant query(/api/v1/query)로 가동률을 조회합니다.
type PrometheusClient struct {
	baseURL    string
	query      string
	httpClient *http.Client
}

// NewPrometheusClient PrometheusClient를 생성합니다.
func NewPrometheusClient(cfg config.PrometheusConfig) *PrometheusClient {
	return &PrometheusClient{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		query:      cfg.UptimeQuery,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// UptimePercentage 쿼리 결과의 첫 번째 샘플 값을 백분율로 반환합니다. 100을 넘으면 100으로 자릅니다.
func (c *PrometheusClient) UptimePercentage(ctx context.Context) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v1/query?query=%s", c.baseURL, url.QueryEscape(c.query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.InvalidInput, "Prometheus 요청을 만들 수 없습니다")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.Unavailable, "Prometheus에 연결할 수 없습니다")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPrometheusResponseSize))
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.System, "Prometheus 응답을 읽을 수 없습니다")
	}

	if resp.StatusCode != http.StatusOK {
		return 0, apperrors.Newf(apperrors.ExecutionFailed, "Prometheus 쿼리 실패 (status: %d, error: %s)", resp.StatusCode, gjson.GetBytes(body, "error").String())
	}

	return parseUptimeResult(body)
}

// parseUptimeResult {"status":"success","data":{"result":[{"value":[<ts>,"99.87"]}]}} 형식을 해석합니다.
func parseUptimeResult(body []byte) (float64, error) {
	if !gjson.ValidBytes(body) {
		return 0, apperrors.New(apperrors.ParsingFailed, "Prometheus 응답이 올바른 JSON이 아닙니다")
	}

	if status := gjson.GetBytes(body, "status").String(); status != "success" {
		return 0, apperrors.Newf(apperrors.ExecutionFailed, "Prometheus 쿼리 실패 (status: %s, error: %s)", status, gjson.GetBytes(body, "error").String())
	}

	sample := gjson.GetBytes(body, "data.result.0.value.1")
	if !sample.Exists() {
		return 0, apperrors.New(apperrors.NotFound, "Prometheus 쿼리 결과가 비어 있습니다")
	}

	v := sample.Float()
	if math.IsNaN(v) || v < 0 {
		return 0, apperrors.Newf(apperrors.ParsingFailed, "Prometheus 샘플 값이 올바르지 않습니다 (%s)", sample.String())
	}

	return round1(math.Min(v, 100)), nil
}
