package config

import (
	"time"

	"github.com/sirupsen/logrus"
)

type Config interface {
	// ReportPath is where the battery report HTML is read from and
	// generated to.
	ReportPath() string
	// ExportPath is the default destination of CSV exports.
	ExportPath() string
	// GenerateTimeout bounds how long report generation may take.
	GenerateTimeout() time.Duration
	// Strict refuses reports that contain placeholder data.
	Strict() bool

	SetReportPath(string)
	SetExportPath(string)
	SetGenerateTimeout(time.Duration)
	SetStrict(bool)

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
