package webpurify

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of webpurify_requests_total.
const (
	outcomeOK             = "ok"
	outcomeTransportError = "transport_error"
	outcomeHTTPStatus     = "http_status"
	outcomeDecodeError    = "decode_error"
	outcomeAPIError       = "api_error"
	outcomeInvalid        = "invalid_response"
)

// requestBuckets covers WebPurify latencies from 50ms to 10s.
var requestBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// newMetrics registers the client collectors with reg. If another client already
// registered them on the same registerer, the existing collectors are shared.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webpurify_requests_total",
				Help: "WebPurify calls by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webpurify_request_duration_seconds",
				Help:    "WebPurify round trip duration",
				Buckets: requestBuckets,
			},
			[]string{"method"},
		),
	}

	if err := reg.Register(m.requestsTotal); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.requestsTotal = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.requestDuration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.requestDuration = are.ExistingCollector.(*prometheus.HistogramVec)
	}
	return m, nil
}

// observe records one call. A nil receiver is a no-op so clients without metrics can call it.
func (m *metrics) observe(method string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, outcomeOf(err)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// outcomeOf maps an error returned by the client to its outcome label.
func outcomeOf(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrHTTPStatus):
		return outcomeHTTPStatus
	case errors.Is(err, ErrDeserialize):
		return outcomeDecodeError
	case errors.As(err, &apiErr):
		return outcomeAPIError
	case errors.Is(err, ErrNonOkStat), errors.Is(err, ErrMismatchedMethod),
		errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidField):
		return outcomeInvalid
	}
	return outcomeTransportError
}
