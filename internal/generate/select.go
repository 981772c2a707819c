package generate

import (
	"leadpage-engine/internal/domain"
	"leadpage-engine/internal/track"
)

// SelectBatch picks the leads to generate this run: untracked slugs in
// source order, at most limit of them. Pure; no I/O.
func SelectBatch(leads []domain.Lead, store *track.Store, limit int) []domain.Lead {
	if limit <= 0 {
		return nil
	}

	var batch []domain.Lead
	for _, lead := range leads {
		if store.Contains(lead.Slug) {
			continue
		}
		batch = append(batch, lead)
		if len(batch) == limit {
			break
		}
	}
	return batch
}
