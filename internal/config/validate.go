package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims path fields, fills defaults and returns a
// normalized copy plus everything wrong or suspicious about it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.DataDir = strings.TrimSpace(out.App.DataDir)
	out.Generator.LeadsPath = strings.TrimSpace(out.Generator.LeadsPath)
	out.Generator.TrackingPath = strings.TrimSpace(out.Generator.TrackingPath)
	out.Generator.OutputDir = strings.TrimSpace(out.Generator.OutputDir)
	out.Site.ContactEmail = strings.TrimSpace(out.Site.ContactEmail)
	out.Site.Language = strings.TrimSpace(out.Site.Language)

	if out.Generator.BatchSize == 0 {
		out.Generator.BatchSize = DefaultBatchSize
	}

	// ---- Validation rules ----

	if out.Generator.BatchSize < 0 {
		res.addErr("generator.batch_size must be >= 0, got %d", out.Generator.BatchSize)
	} else if out.Generator.BatchSize > 500 {
		res.addWarn("generator.batch_size is very high (%d); large batches make review diffs unwieldy.", out.Generator.BatchSize)
	}

	if out.Generator.LeadsPath == "" {
		res.addErr("generator.leads_path is required")
	}
	if out.Generator.TrackingPath == "" {
		res.addErr("generator.tracking_path is required")
	}
	if out.Generator.OutputDir == "" {
		res.addErr("generator.output_dir is required")
	}

	// keep generated pages out of the tracking file's directory mess
	if out.Generator.OutputDir != "" && out.Generator.TrackingPath != "" {
		if filepath.Clean(out.Generator.OutputDir) == filepath.Dir(filepath.Clean(out.Generator.TrackingPath)) {
			res.addWarn("generator.output_dir and generator.tracking_path share a directory; consider separating them.")
		}
	}

	if out.Site.ContactEmail == "" {
		res.addErr("site.contact_email is required (used for the page CTAs)")
	} else if !strings.Contains(out.Site.ContactEmail, "@") {
		res.addWarn("site.contact_email %q does not look like an email address", out.Site.ContactEmail)
	}

	if out.Site.Language == "" {
		out.Site.Language = "de"
	}

	return out, res
}
