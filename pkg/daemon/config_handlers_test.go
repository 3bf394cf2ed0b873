package daemon

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie0129/battreport/pkg/config"
)

func TestSetConfig(t *testing.T) {
	confPath := filepath.Join(t.TempDir(), "battreport.json")
	conf = config.NewFileFromConfig(&config.RawFileConfig{}, confPath)
	h := setupRoutes()

	tests := []struct {
		path string
		body string
	}{
		{path: "/report-path", body: `"r.html"`},
		{path: "/export-path", body: `"r.csv"`},
		{path: "/generate-timeout", body: `90`},
		{path: "/strict", body: `true`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(h, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		})
	}

	saved, err := config.NewFile(confPath)
	require.NoError(t, err)
	assert.Equal(t, "r.html", saved.ReportPath())
	assert.Equal(t, "r.csv", saved.ExportPath())
	assert.Equal(t, 90*time.Second, saved.GenerateTimeout())
	assert.True(t, saved.Strict())

	// The running daemon applies the change without a reload.
	assert.True(t, conf.Strict())
	w := do(h, http.MethodPost, "/parse", `<p>nothing</p>`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSetConfigRejectsBadValues(t *testing.T) {
	confPath := filepath.Join(t.TempDir(), "battreport.json")
	conf = config.NewFileFromConfig(&config.RawFileConfig{}, confPath)
	h := setupRoutes()

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "report path not a string", path: "/report-path", body: `42`},
		{name: "empty export path", path: "/export-path", body: `""`},
		{name: "zero timeout", path: "/generate-timeout", body: `0`},
		{name: "strict not a bool", path: "/strict", body: `"yes"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(h, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Equal(t, "battery-report.csv", conf.ExportPath())
	assert.Equal(t, 30*time.Second, conf.GenerateTimeout())
	assert.False(t, conf.Strict())
}

func TestSetConfigSaveFailure(t *testing.T) {
	// A directory cannot be opened as the config file.
	conf = config.NewFileFromConfig(&config.RawFileConfig{}, t.TempDir())
	h := setupRoutes()

	w := do(h, http.MethodPut, "/strict", `true`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
