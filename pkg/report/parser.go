package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ParseFile reads and parses the battery report at path.
func ParseFile(path string) (*ParsedReport, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, pkgerrors.Wrapf(err, "failed to read file %s", path))
	}
	return Parse(string(b))
}

// ParseReader reads the whole battery report from r and parses it.
func ParseReader(r io.Reader) (*ParsedReport, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, pkgerrors.Wrap(err, "failed to read document"))
	}
	return Parse(string(b))
}

// Parse extracts a ParsedReport from the HTML text of a battery report.
//
// Missing sections and unparsable cells never fail the parse; they degrade to
// empty or synthetic data as described in the package documentation. The
// only error is ErrDocumentUnreadable, returned for text that is not UTF-8.
func Parse(text string) (*ParsedReport, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: document is not valid UTF-8", ErrDocumentUnreadable)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, pkgerrors.Wrap(err, "failed to parse HTML"))
	}

	rows := labelRows(doc)
	metrics, strategy := extractMetrics(rows)
	metricsOrigin := strategy.origin
	details := extractDetails(rows, strategy)
	capacity := ExtractCapacityHistory(doc, metrics)
	usage := ExtractUsageHistory(doc)
	ApplyHealth(metrics)

	entry := logrus.WithFields(logrus.Fields{
		"metricsStrategy": strategy.name,
		"details":         len(details),
		"capacityPeriods": capacity.Len(),
		"usageEntries":    len(usage.Entries),
	})
	if metricsOrigin.Synthetic() || capacity.Origin.Synthetic() {
		entry.WithFields(logrus.Fields{
			"metricsOrigin":  metricsOrigin,
			"capacityOrigin": capacity.Origin,
		}).Debug("battery report is missing sections, using placeholder data")
	} else {
		entry.Debug("battery report parsed")
	}

	return &ParsedReport{
		Metrics:         metrics,
		MetricsOrigin:   metricsOrigin,
		Details:         details,
		UsageHistory:    usage,
		CapacityHistory: capacity,
		Raw:             text,
	}, nil
}
