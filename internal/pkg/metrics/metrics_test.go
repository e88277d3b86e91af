//go:build unit

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/api/reservations", "201", 0.1)
	RecordHTTPRequest("POST", "/api/reservations", "201", 0.2)
	RecordHTTPRequest("POST", "/api/reservations", "409", 0.05)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/reservations", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/reservations", "409")))
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordAdmission(t *testing.T) {
	ReservationAdmissionsTotal.Reset()

	RecordAdmission(OutcomeAdmitted)
	RecordAdmission(OutcomeAdmitted)
	RecordAdmission(OutcomeFull)

	assert.Equal(t, float64(2), testutil.ToFloat64(ReservationAdmissionsTotal.WithLabelValues(OutcomeAdmitted)))
	assert.Equal(t, float64(1), testutil.ToFloat64(ReservationAdmissionsTotal.WithLabelValues(OutcomeFull)))
	assert.Equal(t, float64(0), testutil.ToFloat64(ReservationAdmissionsTotal.WithLabelValues(OutcomeDuplicate)))
}

func TestRecordLogin(t *testing.T) {
	LoginsTotal.Reset()

	RecordLogin(true)
	RecordLogin(false)
	RecordLogin(false)

	assert.Equal(t, float64(1), testutil.ToFloat64(LoginsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(LoginsTotal.WithLabelValues("failure")))
}

func TestRecordEventPublished(t *testing.T) {
	EventsPublishedTotal.Reset()

	RecordEventPublished("redis", nil)
	RecordEventPublished("redis", errors.New("connection refused"))

	assert.Equal(t, float64(1), testutil.ToFloat64(EventsPublishedTotal.WithLabelValues("redis", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EventsPublishedTotal.WithLabelValues("redis", "error")))
}

func TestRecordTransactionRetry(t *testing.T) {
	before := testutil.ToFloat64(TransactionRetriesTotal)
	RecordTransactionRetry()
	assert.Equal(t, before+1, testutil.ToFloat64(TransactionRetriesTotal))
}
