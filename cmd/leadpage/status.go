package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadpage-engine/internal/generate"
	"leadpage-engine/internal/leads"
	"leadpage-engine/internal/track"
)

var statusCmd = &cobra.Command{
	Use:          "status",
	Short:        "Show tracking state without generating anything",
	RunE:         runStatus,
	SilenceUsage: true,
}

func runStatus(cmd *cobra.Command, args []string) error {
	dataDir, cfg, err := loadSetup()
	if err != nil {
		return err
	}

	runner := generate.Runner{Cfg: cfg, DataDir: dataDir}

	store, err := track.Load(runner.Path(cfg.Generator.TrackingPath))
	if err != nil {
		return err
	}

	all, err := leads.Read(runner.Path(cfg.Generator.LeadsPath))
	if err != nil {
		return err
	}

	untracked := 0
	for _, lead := range all {
		if !store.Contains(lead.Slug) {
			untracked++
		}
	}

	fmt.Printf("leads in source:   %d\n", len(all))
	fmt.Printf("already generated: %d\n", store.Len())
	fmt.Printf("untracked:         %d\n", untracked)
	fmt.Printf("next run creates:  %d (batch size %d)\n",
		min(untracked, cfg.Generator.BatchSize), cfg.Generator.BatchSize)

	if slugs := store.Slugs(); len(slugs) > 0 {
		last := slugs[len(slugs)-1]
		if e, ok := store.Get(last); ok {
			fmt.Printf("last generated:    %s at %s (source %s)\n", last, e.GeneratedAt, e.Source)
		}
	}
	return nil
}
