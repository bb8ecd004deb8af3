package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSearch(t *testing.T) {
	solvedBefore := testutil.ToFloat64(searchTotal.WithLabelValues("metrics-test", outcomeSolved))
	failedBefore := testutil.ToFloat64(searchTotal.WithLabelValues("metrics-test", outcomeNoSolution))

	ObserveSearch("metrics-test", true, 6, 4, 2, time.Millisecond)
	ObserveSearch("metrics-test", true, 9, 5, 3, time.Millisecond)
	ObserveSearch("metrics-test", false, 9, 5, 0, time.Millisecond)

	assert.Equal(t, solvedBefore+2, testutil.ToFloat64(searchTotal.WithLabelValues("metrics-test", outcomeSolved)))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(searchTotal.WithLabelValues("metrics-test", outcomeNoSolution)))
}
