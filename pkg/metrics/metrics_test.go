package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	c.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestCollector_RecordRequest(t *testing.T) {
	c := NewCollector("wds_test")

	c.RecordRequest("GET", "/api/v1/withdrawals", "200", 5*time.Millisecond)
	c.RecordRequest("GET", "/api/v1/withdrawals", "200", 3*time.Millisecond)

	body := scrape(t, c)
	assert.Contains(t, body, `wds_test_http_requests_total{method="GET",route="/api/v1/withdrawals",status="200"} 2`)
	assert.Contains(t, body, "wds_test_http_request_duration_seconds_bucket")
}

func TestCollector_RecordWithdrawalCreated(t *testing.T) {
	c := NewCollector("wds_test")

	c.RecordWithdrawalCreated()
	c.RecordWithdrawalCreated()
	c.RecordWithdrawalCreated()

	body := scrape(t, c)
	assert.Contains(t, body, "wds_test_withdrawals_created_total 3")
}

func TestCollector_RecordUploadStaged(t *testing.T) {
	c := NewCollector("wds_test")

	c.RecordUploadStaged("image")
	c.RecordUploadStaged("image")
	c.RecordUploadStaged("video")

	body := scrape(t, c)
	assert.Contains(t, body, `wds_test_uploads_staged_total{type="image"} 2`)
	assert.Contains(t, body, `wds_test_uploads_staged_total{type="video"} 1`)
}

func TestCollector_PrivateRegistries(t *testing.T) {
	a := NewCollector("wds_a")
	b := NewCollector("wds_b")

	a.RecordWithdrawalCreated()

	assert.Contains(t, scrape(t, a), "wds_a_withdrawals_created_total 1")
	assert.NotContains(t, scrape(t, b), "wds_a_withdrawals_created_total")
}
