package prom

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/linkdrop-bot/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsSessionActivity(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder(prometheus.NewRegistry())

	recorder.SessionStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.sessionActive))

	recorder.SubmissionRecorded(2, 1)
	recorder.SubmissionRecorded(0, 3)
	assert.Equal(t, float64(2), testutil.ToFloat64(recorder.submissions))
	assert.Equal(t, float64(2), testutil.ToFloat64(recorder.identities))
	assert.Equal(t, float64(4), testutil.ToFloat64(recorder.uniqueLinks))

	recorder.SessionEnded()
	assert.Equal(t, float64(0), testutil.ToFloat64(recorder.sessionActive))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.sessionsStarted))
}

func TestRecorderLabelsRestrictionOutcomes(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder(prometheus.NewRegistry())

	recorder.RestrictionApplied(true)
	recorder.RestrictionApplied(true)
	recorder.RestrictionApplied(false)
	recorder.RestrictionReleased(ports.ReleaseOutcomeReleased)
	recorder.RestrictionReleased(ports.ReleaseOutcomeSuperseded)
	recorder.PlatformCallFailed("restrict")

	assert.Equal(t, float64(2), testutil.ToFloat64(recorder.restrictionsApplied.WithLabelValues("true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.restrictionsApplied.WithLabelValues("false")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.releases.WithLabelValues(ports.ReleaseOutcomeReleased)))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.releases.WithLabelValues(ports.ReleaseOutcomeSuperseded)))
	assert.Equal(t, float64(0), testutil.ToFloat64(recorder.releases.WithLabelValues(ports.ReleaseOutcomeFailed)))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.platformFailures.WithLabelValues("restrict")))
}

func TestRecorderHandlerExposesSeries(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder(nil)
	require.NoError(t, recorder.RegisterRuntimeCollectors())
	recorder.PlatformCallFailed("send")

	server := httptest.NewServer(recorder.Handler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `linkbot_gateway_failures_total{op="send"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
