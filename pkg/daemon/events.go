package daemon

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battreport/pkg/events"
	"github.com/charlie0129/battreport/pkg/report"
)

func publishParsed(r *report.ParsedReport, refused bool) {
	err := sseHub.Publish(events.ReportParsed, events.ReportParsedEvent{
		Health:         r.Metrics[report.BatteryHealth],
		MetricsOrigin:  r.MetricsOrigin,
		CapacityOrigin: r.CapacityHistory.Origin,
		Refused:        refused,
		Ts:             time.Now().Unix(),
	})
	if err != nil {
		logrus.Errorf("failed to publish %s: %v", events.ReportParsed, err)
		return
	}
	logrus.WithField("event", events.ReportParsed).Debug("new event")
}

// getEvents streams daemon events to the client as server-sent events until
// the client goes away.
func getEvents(c *gin.Context) {
	ch := sseHub.Subscribe()
	defer sseHub.Unsubscribe(ch)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)
	// Send the headers now so that clients see the stream before the
	// first event.
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, string(ev.Data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
