package daemon

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battreport/pkg/config"
	"github.com/charlie0129/battreport/pkg/export"
	"github.com/charlie0129/battreport/pkg/powerinfo"
	"github.com/charlie0129/battreport/pkg/report"
	"github.com/charlie0129/battreport/pkg/version"
)

// Replaced in tests.
var batterySnapshot = powerinfo.Snapshot

var errSyntheticRefused = errors.New("report contains placeholder data and strict mode is enabled")

// parseBody parses the request body as a battery report. It writes the error
// response itself and returns nil when the request cannot be served.
func parseBody(c *gin.Context) *report.ParsedReport {
	body, err := c.GetRawData()
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return nil
	}

	r, err := report.Parse(string(body))
	if err != nil {
		parsesTotal.WithLabelValues(resultUnreadable).Inc()
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return nil
	}
	observeReport(r)
	c.Set(parsedReportKey, r)

	refused := conf.Strict() && r.Synthetic()
	publishParsed(r, refused)

	if refused {
		logrus.WithFields(logrus.Fields{
			"metricsOrigin":  r.MetricsOrigin,
			"capacityOrigin": r.CapacityHistory.Origin,
		}).Warn("refusing report with placeholder data")
		c.IndentedJSON(http.StatusUnprocessableEntity, errSyntheticRefused.Error())
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errSyntheticRefused)
		return nil
	}

	return r
}

func postParse(c *gin.Context) {
	r := parseBody(c)
	if r == nil {
		return
	}
	c.IndentedJSON(http.StatusOK, r)
}

func postExport(c *gin.Context) {
	r := parseBody(c)
	if r == nil {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, r); err != nil {
		logrus.Errorf("export failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func getLive(c *gin.Context) {
	bat, err := batterySnapshot()
	if err != nil {
		logrus.Errorf("getLive failed: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, powerinfo.ErrNoBattery) {
			status = http.StatusNotFound
		}
		c.IndentedJSON(status, err.Error())
		_ = c.AbortWithError(status, err)
		return
	}

	c.IndentedJSON(http.StatusOK, bat)
}

func getConfig(c *gin.Context) {
	fc, err := config.NewRawFileConfigFromConfig(conf)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, fc)
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}
