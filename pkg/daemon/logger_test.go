package daemon

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie0129/battreport/pkg/config"
	"github.com/charlie0129/battreport/pkg/report"
)

func newLoggedRouter(t *testing.T, strict bool) (http.Handler, *logtest.Hook) {
	t.Helper()
	c := config.NewFileFromConfig(&config.RawFileConfig{}, "")
	c.SetStrict(strict)
	conf = c

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger))
	router.POST("/parse", postParse)
	return router, hook
}

func TestRequestLogger(t *testing.T) {
	t.Run("parsed report", func(t *testing.T) {
		h, hook := newLoggedRouter(t, false)
		w := do(h, http.MethodPost, "/parse", canonicalReport)
		require.Equal(t, http.StatusOK, w.Code)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.DebugLevel, entry.Level)
		assert.Equal(t, http.StatusOK, entry.Data["status"])
		assert.Equal(t, "/parse", entry.Data["path"])
		assert.Equal(t, "37.7%", entry.Data["health"])
		assert.Equal(t, report.OriginObserved, entry.Data["metricsOrigin"])
		assert.Equal(t, report.OriginSynthetic, entry.Data["capacityOrigin"])
	})

	t.Run("refused report", func(t *testing.T) {
		h, hook := newLoggedRouter(t, true)
		w := do(h, http.MethodPost, "/parse", `<p>nothing</p>`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Contains(t, entry.Message, "strict mode")
		assert.Equal(t, report.OriginSynthetic, entry.Data["metricsOrigin"])
	})
}
