// Package report extracts structured battery-health data from the HTML
// battery report written by `powercfg /batteryreport`.
//
// The report's layout, headings and label wording differ across Windows
// versions and locales, so every section is located by fuzzy heading and
// content matching and every extractor has a degraded path:
//
//   - Metrics: exact canonical labels, then unit/label sniffing, then a
//     synthetic placeholder set
//   - Capacity history: the "Battery capacity history" table, then any table
//     that looks like one, then a synthetic declining series
//   - Usage history: the "Battery usage" table, then any table with a "Date"
//     header row, then nothing
//
// Synthetic values are always tagged with OriginSynthetic so that callers can
// disclose them. Parse is a pure function of the document text: it holds no
// state between calls and is safe to call concurrently on different documents.
package report
