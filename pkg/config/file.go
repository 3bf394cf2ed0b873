package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battreport/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		ReportPath:             ptr.To("battery-report.html"),
		ExportPath:             ptr.To("battery-report.csv"),
		GenerateTimeoutSeconds: ptr.To(30),
		// Placeholder data is clearly marked in every output, so it is only
		// refused when the user asks for it.
		Strict: ptr.To(false),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = &RawFileConfig{}
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

type RawFileConfig struct {
	ReportPath             *string `json:"reportPath,omitempty"`
	ExportPath             *string `json:"exportPath,omitempty"`
	GenerateTimeoutSeconds *int    `json:"generateTimeoutSeconds,omitempty"`
	Strict                 *bool   `json:"strict,omitempty"`
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	rawConfig := &RawFileConfig{
		ReportPath:             ptr.To(c.ReportPath()),
		ExportPath:             ptr.To(c.ExportPath()),
		GenerateTimeoutSeconds: ptr.To(int(c.GenerateTimeout() / time.Second)),
		Strict:                 ptr.To(c.Strict()),
	}

	return rawConfig, nil
}

func (f *File) ReportPath() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.ReportPath != nil && *f.c.ReportPath != "" {
		return *f.c.ReportPath
	}
	return *defaultFileConfig.ReportPath
}

func (f *File) ExportPath() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.ExportPath != nil && *f.c.ExportPath != "" {
		return *f.c.ExportPath
	}
	return *defaultFileConfig.ExportPath
}

func (f *File) GenerateTimeout() time.Duration {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	seconds := *defaultFileConfig.GenerateTimeoutSeconds
	if f.c.GenerateTimeoutSeconds != nil && *f.c.GenerateTimeoutSeconds > 0 {
		seconds = *f.c.GenerateTimeoutSeconds
	}

	return time.Duration(seconds) * time.Second
}

func (f *File) Strict() bool {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var strict bool

	if f.c.Strict != nil {
		strict = *f.c.Strict
	} else {
		strict = *defaultFileConfig.Strict
	}

	return strict
}

func (f *File) SetReportPath(p string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.ReportPath = &p
}

func (f *File) SetExportPath(p string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.ExportPath = &p
}

func (f *File) SetGenerateTimeout(d time.Duration) {
	if f.c == nil {
		panic("config is nil")
	}

	if d < time.Second {
		panic("generate timeout must be at least one second")
	}

	seconds := int(d / time.Second)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.GenerateTimeoutSeconds = &seconds
}

func (f *File) SetStrict(b bool) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Strict = &b
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"reportPath":      f.ReportPath(),
		"exportPath":      f.ExportPath(),
		"generateTimeout": f.GenerateTimeout().String(),
		"strict":          f.Strict(),
	}
}
