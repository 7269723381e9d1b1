package hardening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/alevsk/kconfig-scope/internal/logger"
)

// ErrAuditorNotFound indicates the checksec binary is missing or not
// executable. This is a dependency misconfiguration: no hardening analysis
// can ever succeed without the auditor.
var ErrAuditorNotFound = errors.New("checksec binary not found")

// Auditor runs the external checksec tool against kernel configurations
type Auditor struct {
	path string
}

// NewAuditor resolves and verifies the checksec binary once, before any
// analysis runs. A missing binary is a hard error for the operator.
func NewAuditor(path string) (*Auditor, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrAuditorNotFound)
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAuditorNotFound, path, err)
	}
	return &Auditor{path: resolved}, nil
}

// Path returns the resolved checksec binary path
func (a *Auditor) Path() string {
	return a.path
}

// Audit runs checksec over the configuration text and returns the filtered
// hardening report. The text is passed through a uniquely-named temporary
// file that is removed on every exit path. Invocation or parse failures are
// logged at debug level and yield an empty report: hardening results are
// best-effort enrichment, never a reason to fail the analysis.
func (a *Auditor) Audit(ctx context.Context, kernelConfig string) Report {
	tmp, err := os.CreateTemp("", "kconfig-scope-*.config")
	if err != nil {
		logger.Debug().Err(err).Msg("checksec kernel audit failed: temp file")
		return Report{}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(kernelConfig); err != nil {
		tmp.Close()
		logger.Debug().Err(err).Msg("checksec kernel audit failed: temp file write")
		return Report{}
	}
	if err := tmp.Close(); err != nil {
		logger.Debug().Err(err).Msg("checksec kernel audit failed: temp file close")
		return Report{}
	}

	out, err := exec.CommandContext(ctx, a.path, "--kernel="+tmp.Name(), "--output=json").Output()
	if err != nil {
		logger.Debug().Err(err).Msg("checksec kernel audit failed: invocation")
		return Report{}
	}

	var raw Report
	if err := json.Unmarshal(out, &raw); err != nil {
		logger.Debug().Err(err).Msg("checksec kernel audit failed: malformed output")
		return Report{}
	}

	// Both curated sections must be present; anything else means the
	// auditor did not produce a usable kernel report
	if _, ok := raw["kernel"]; !ok {
		logger.Debug().Msg("checksec kernel audit failed: missing kernel section")
		return Report{}
	}
	if _, ok := raw["grsecurity"]; !ok {
		logger.Debug().Msg("checksec kernel audit failed: missing grsecurity section")
		return Report{}
	}

	return Filter(raw)
}
