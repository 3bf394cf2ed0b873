// Package generate produces a battery report with the operating system's own
// tooling.
package generate

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnsupportedPlatform is returned on systems without powercfg.
	ErrUnsupportedPlatform = errors.New("battery report generation requires Windows")
)

// Replaced in tests.
var (
	commandContext = exec.CommandContext
	goos           = runtime.GOOS
)

// Args returns the powercfg arguments that write a battery report to path.
func Args(path string) []string {
	return []string{"/batteryreport", "/output", path}
}

// Generate runs `powercfg /batteryreport` and writes the report to path.
// Cancelling ctx or reaching its deadline kills powercfg.
func Generate(ctx context.Context, path string) error {
	if goos != "windows" {
		return ErrUnsupportedPlatform
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to resolve %s", path)
	}

	logrus.WithField("path", abs).Debug("running powercfg")
	out, err := commandContext(ctx, "powercfg", Args(abs)...).CombinedOutput()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return pkgerrors.Wrap(ctxErr, "powercfg did not finish")
	}
	if err != nil {
		return pkgerrors.Wrapf(err, "powercfg failed: %s", strings.TrimSpace(string(out)))
	}

	logrus.WithField("path", abs).Info("battery report generated")
	return nil
}
