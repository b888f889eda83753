package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDelivery(t *testing.T) {
	before := testutil.ToFloat64(NotificationDeliveries.WithLabelValues(OutcomeDelivered))
	RecordDelivery(OutcomeDelivered)
	RecordDelivery(OutcomeDelivered)
	after := testutil.ToFloat64(NotificationDeliveries.WithLabelValues(OutcomeDelivered))
	assert.Equal(t, before+2, after)
}

func TestHTTPMiddlewareObservesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HTTPMiddleware())
	r.GET("/universities/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.CollectAndCount(HTTPRequestDuration)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/universities/7", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), before+1)
}
