// Package pipeline runs a paragraph set through normalization and
// pagination: order by key, normalize, drop empties, paginate.
package pipeline

import (
	"github.com/1Seob/Flik-v2-sub000/core"
	"github.com/1Seob/Flik-v2-sub000/core/normalize"
	"github.com/1Seob/Flik-v2-sub000/core/paginate"
	"github.com/1Seob/Flik-v2-sub000/core/paragraph"
)

// Pipeline holds the stages used by Run. It carries no per-run state and
// is safe for concurrent use.
type Pipeline struct {
	Normalizer *normalize.TextNormalizer
	Paginator  *paginate.Paginator
}

// New creates a Pipeline; nil stages get their defaults.
func New(n *normalize.TextNormalizer, p *paginate.Paginator) *Pipeline {
	if n == nil {
		n = normalize.New()
	}
	if p == nil {
		p = paginate.New(0, 0, nil)
	}
	return &Pipeline{Normalizer: n, Paginator: p}
}

// Run paginates set and reports what happened along the way.
func (pl *Pipeline) Run(set paragraph.Set) ([]core.Page, core.Stats) {
	texts := set.Texts()
	stats := core.Stats{Paragraphs: len(texts)}

	paras := make([]string, 0, len(texts))
	for _, raw := range texts {
		if clean := pl.Normalizer.Normalize(raw); clean != "" {
			paras = append(paras, clean)
			continue
		}
		stats.Dropped++
	}

	pages := pl.Paginator.Paginate(paras)
	stats.Pages = len(pages)
	for _, pg := range pages {
		if pg.Overflow {
			stats.OverflowPages++
		}
	}
	return pages, stats
}

// Paginate runs set through the default pipeline and returns page texts.
func Paginate(set paragraph.Set) []string {
	pages, _ := New(nil, nil).Run(set)
	out := make([]string, len(pages))
	for i, pg := range pages {
		out[i] = pg.Text
	}
	return out
}
