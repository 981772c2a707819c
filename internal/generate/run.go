package generate

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"leadpage-engine/internal/config"
	"leadpage-engine/internal/leads"
	"leadpage-engine/internal/page"
	"leadpage-engine/internal/track"
)

// Runner executes one generation pass.
type Runner struct {
	Cfg     config.Config
	DataDir string
	Now     func() time.Time
}

// Result summarizes a run for logging and the status command.
type Result struct {
	Total     int // leads read from the source
	Tracked   int // leads already in the tracking store
	Generated int // pages written this run
	Remaining int // untracked leads left for a later run
}

// Run is the whole batch: read leads, load the store, generate the
// untracked ones up to the batch cap, persist the store once.
//
// The first page write error stops the loop, but the store is still
// saved so every page written before the failure stays tracked.
func (r Runner) Run() (Result, error) {
	var res Result

	all, err := leads.Read(r.Path(r.Cfg.Generator.LeadsPath))
	if err != nil {
		return res, err
	}
	res.Total = len(all)

	trackingPath := r.Path(r.Cfg.Generator.TrackingPath)
	store, err := track.Load(trackingPath)
	if err != nil {
		return res, err
	}

	batch := SelectBatch(all, store, r.Cfg.Generator.BatchSize)
	for _, lead := range all {
		if store.Contains(lead.Slug) {
			res.Tracked++
		}
	}
	res.Remaining = res.Total - res.Tracked - len(batch)

	if len(batch) == 0 {
		log.Printf("[generate] no new leads (total=%d tracked=%d)", res.Total, res.Tracked)
		return res, nil
	}

	outDir := r.Path(r.Cfg.Generator.OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}

	now := r.Now
	if now == nil {
		now = time.Now
	}
	renderer := page.Renderer{
		ContactEmail: r.Cfg.Site.ContactEmail,
		Language:     r.Cfg.Site.Language,
		Now:          now,
	}

	// one timestamp for the whole batch, like one commit per run
	stamp := now()
	source := filepath.ToSlash(r.Cfg.Generator.LeadsPath)

	var runErr error
	for _, lead := range batch {
		html, err := renderer.Render(lead)
		if err != nil {
			runErr = err
			break
		}

		path, err := page.Write(outDir, lead.Slug, html)
		if err != nil {
			runErr = fmt.Errorf("page for %q: %w", lead.Slug, err)
			break
		}

		if err := store.Record(lead.Slug, stamp, source); err != nil {
			runErr = err
			break
		}

		res.Generated++
		log.Printf("[generate] wrote %s", path)
	}
	res.Remaining = res.Total - res.Tracked - res.Generated

	if res.Generated > 0 {
		if err := store.Save(trackingPath); err != nil {
			if runErr != nil {
				log.Printf("[track] save failed after run error: %v", err)
			} else {
				runErr = err
			}
		}
	}

	if runErr != nil {
		return res, runErr
	}
	log.Printf("[generate] done generated=%d remaining=%d tracked_total=%d",
		res.Generated, res.Remaining, store.Len())
	return res, nil
}

// Path resolves a configured path against the data dir unless absolute.
func (r Runner) Path(p string) string {
	if filepath.IsAbs(p) || r.DataDir == "" {
		return p
	}
	return filepath.Join(r.DataDir, p)
}
