package daemon

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var errEmptyPath = errors.New("path must not be empty")

// saveConfig persists conf and writes the reply. It reports whether the save
// succeeded.
func saveConfig(c *gin.Context) bool {
	if err := conf.Save(); err != nil {
		logrus.Errorf("saveConfig failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return false
	}
	c.IndentedJSON(http.StatusCreated, "ok")
	return true
}

func badRequest(c *gin.Context, err error) {
	c.IndentedJSON(http.StatusBadRequest, err.Error())
	_ = c.AbortWithError(http.StatusBadRequest, err)
}

func setReportPath(c *gin.Context) {
	var p string
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if p == "" {
		badRequest(c, errEmptyPath)
		return
	}

	conf.SetReportPath(p)
	if saveConfig(c) {
		logrus.Infof("set report path to %s", p)
	}
}

func setExportPath(c *gin.Context) {
	var p string
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	if p == "" {
		badRequest(c, errEmptyPath)
		return
	}

	conf.SetExportPath(p)
	if saveConfig(c) {
		logrus.Infof("set export path to %s", p)
	}
}

func setGenerateTimeout(c *gin.Context) {
	var seconds int
	if err := c.ShouldBindJSON(&seconds); err != nil {
		badRequest(c, err)
		return
	}
	if seconds < 1 {
		badRequest(c, errors.New("generate timeout must be at least one second"))
		return
	}

	conf.SetGenerateTimeout(time.Duration(seconds) * time.Second)
	if saveConfig(c) {
		logrus.Infof("set generate timeout to %ds", seconds)
	}
}

func setStrict(c *gin.Context) {
	var s bool
	if err := c.ShouldBindJSON(&s); err != nil {
		badRequest(c, err)
		return
	}

	conf.SetStrict(s)
	if saveConfig(c) {
		logrus.Infof("set strict to %t", s)
	}
}
