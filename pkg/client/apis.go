package client

import (
	"encoding/json"
	"strconv"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/charlie0129/battreport/pkg/config"
	"github.com/charlie0129/battreport/pkg/powerinfo"
	"github.com/charlie0129/battreport/pkg/report"
)

// Parse has the daemon parse the battery report document.
func (c *Client) Parse(document string) (*report.ParsedReport, error) {
	ret, err := c.Post("/parse", document)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to parse battery report")
	}

	var r report.ParsedReport
	if err := json.Unmarshal([]byte(ret), &r); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal battery report")
	}
	// The daemon does not send the document back.
	r.Raw = document

	return &r, nil
}

// Export has the daemon convert the battery report document to CSV.
func (c *Client) Export(document string) (string, error) {
	ret, err := c.Post("/export", document)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to export battery report")
	}
	return ret, nil
}

func (c *Client) GetLiveBattery() (*powerinfo.Battery, error) {
	ret, err := c.Get("/live")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get live battery info")
	}

	var bat powerinfo.Battery
	if err := json.Unmarshal([]byte(ret), &bat); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal battery info")
	}

	return &bat, nil
}

func (c *Client) GetConfig() (*config.RawFileConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}

	return &conf, nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}

	var v string
	if err := json.Unmarshal([]byte(ret), &v); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal version")
	}
	return v, nil
}

func (c *Client) SetReportPath(p string) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return c.Put("/report-path", string(b))
}

func (c *Client) SetExportPath(p string) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return c.Put("/export-path", string(b))
}

func (c *Client) SetGenerateTimeout(d time.Duration) (string, error) {
	return c.Put("/generate-timeout", strconv.Itoa(int(d/time.Second)))
}

func (c *Client) SetStrict(strict bool) (string, error) {
	return c.Put("/strict", strconv.FormatBool(strict))
}
