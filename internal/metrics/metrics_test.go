package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/films", "200"))

	RecordRequest("GET", "/films", "200", 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/films", "200")))
}

func TestRecordMedia(t *testing.T) {
	okBefore := testutil.ToFloat64(MediaOperations.WithLabelValues("upload", "ok"))
	errBefore := testutil.ToFloat64(MediaOperations.WithLabelValues("upload", "error"))

	RecordMedia("upload", nil)
	RecordMedia("upload", errors.New("bucket gone"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(MediaOperations.WithLabelValues("upload", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(MediaOperations.WithLabelValues("upload", "error")))
}
