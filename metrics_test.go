package webpurify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, outcomeOK},
		{"http status", &StatusError{StatusCode: 500}, outcomeHTTPStatus},
		{"decode", &DecodeError{Err: errors.New("bad json")}, outcomeDecodeError},
		{"api error", newAPIError("100", "bad key"), outcomeAPIError},
		{"unknown api error", newAPIError("999", "odd"), outcomeAPIError},
		{"stat", &StatError{Stat: "fail"}, outcomeInvalid},
		{"method mismatch", &MethodMismatchError{}, outcomeInvalid},
		{"missing field", &FieldError{Field: "found", Err: ErrMissingField}, outcomeInvalid},
		{"transport", fmt.Errorf("failed to call webpurify: %w", errors.New("timeout")), outcomeTransportError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeOf(tt.err))
		})
	}
}

func TestClientRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	bodies := map[string]string{
		"clean":  string(checkBody("0")),
		"badkey": string(errorBody("100")),
	}
	doer := &mockDoer{
		doFunc: func(req *http.Request) (*http.Response, error) {
			text := req.URL.Query().Get("text")
			if text == "down" {
				return nil, errors.New("connection refused")
			}
			status, body := 200, bodies[text]
			if text == "500" {
				status = 500
			}
			return &http.Response{StatusCode: status, Body: newResponse(status, body).Body}, nil
		},
	}

	client, err := New(WithAPIKey("abcd"), WithHTTPClient(doer), WithMetrics(reg))
	require.NoError(t, err)
	require.NotNil(t, client.metrics)

	ctx := context.Background()
	_, err = client.Check(ctx, "clean")
	require.NoError(t, err)
	_, err = client.Check(ctx, "clean")
	require.NoError(t, err)
	_, err = client.Check(ctx, "badkey")
	require.Error(t, err)
	_, err = client.Check(ctx, "500")
	require.Error(t, err)
	_, err = client.Check(ctx, "down")
	require.Error(t, err)

	counter := client.metrics.requestsTotal
	assert.Equal(t, 2.0, testutil.ToFloat64(counter.WithLabelValues(MethodCheck, outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues(MethodCheck, outcomeAPIError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues(MethodCheck, outcomeHTTPStatus)))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues(MethodCheck, outcomeTransportError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(counter.WithLabelValues(MethodReplace, outcomeOK)))

	assert.Equal(t, uint64(5), histogramCount(t, reg, "webpurify_request_duration_seconds"))
}

func TestMetricsSharedBetweenClients(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := New(WithAPIKey("a"), WithMetrics(reg))
	require.NoError(t, err)
	second, err := New(WithAPIKey("b"), WithMetrics(reg))
	require.NoError(t, err)

	assert.Same(t, first.metrics.requestsTotal, second.metrics.requestsTotal)
	assert.Same(t, first.metrics.requestDuration, second.metrics.requestDuration)
}

func TestMetricsRegistrationConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	// Same name, different labels
	reg.MustRegister(prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "webpurify_requests_total", Help: "conflicting"},
		[]string{"other"},
	))

	client, err := New(WithAPIKey("a"), WithMetrics(reg))
	assert.Nil(t, client)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register metrics")
}

func TestNilMetricsObserve(t *testing.T) {
	var m *metrics
	assert.NotPanics(t, func() {
		m.observe(MethodCheck, time.Second, nil)
	})
}

// histogramCount returns the total sample count across all series of a histogram family.
func histogramCount(t *testing.T, g prometheus.Gatherer, name string) uint64 {
	t.Helper()

	families, err := g.Gather()
	require.NoError(t, err)

	var count uint64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		require.Equal(t, dto.MetricType_HISTOGRAM, mf.GetType())
		for _, m := range mf.GetMetric() {
			count += m.GetHistogram().GetSampleCount()
		}
	}
	return count
}
