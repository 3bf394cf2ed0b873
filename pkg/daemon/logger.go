package daemon

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battreport/pkg/report"
)

// parsedReportKey holds the *report.ParsedReport of a request in the gin
// context, so that the request log can say what was extracted.
const parsedReportKey = "parsedReport"

// requestLogger logs every request through logger. Requests that parsed a
// report also log its health and where its data came from.
func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Handlers may rewrite c.Request.URL.
		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		latency := time.Since(start).Round(time.Millisecond)

		status := c.Writer.Status()
		fields := logrus.Fields{
			"status":       status,
			"latency":      latency.String(),
			"method":       c.Request.Method,
			"path":         path,
			"requestBytes": max(c.Request.ContentLength, 0),
			"replyBytes":   max(c.Writer.Size(), 0),
		}
		if v, ok := c.Get(parsedReportKey); ok {
			if r, ok := v.(*report.ParsedReport); ok {
				fields["health"] = r.Metrics[report.BatteryHealth]
				fields["metricsOrigin"] = r.MetricsOrigin
				fields["capacityOrigin"] = r.CapacityHistory.Origin
			}
		}
		entry := logger.WithFields(fields)

		msg := fmt.Sprintf("%s %s %d (%s)", c.Request.Method, path, status, latency)
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error(msg + ": " + c.Errors.String())
		case status >= http.StatusBadRequest:
			entry.Warn(msg + ": " + c.Errors.String())
		default:
			entry.Debug(msg)
		}
	}
}
