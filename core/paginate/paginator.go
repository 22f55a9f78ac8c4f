// Package paginate packs normalized paragraphs into fixed-capacity pages.
//
// Capacity is measured in logical units: one per rune of text, a flat
// NewlineCost for each blank-line separator between paragraphs on a page,
// and one for the space that rejoins two sentences of a split paragraph.
// A paragraph longer than a whole page is split into sentences and spread
// across pages. A single sentence longer than a whole page is placed alone
// on its own page and marked Overflow; that is the only way a page may
// exceed MaxLogical.
package paginate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/1Seob/Flik-v2-sub000/core"
	"github.com/1Seob/Flik-v2-sub000/core/sentence"
)

const (
	// DefaultMaxLogical is the page capacity in logical units.
	DefaultMaxLogical = 300
	// DefaultNewlineCost is the charge for a paragraph separator.
	DefaultNewlineCost = 20

	separator = "\n\n"
)

// Paginator splits paragraph sequences into pages.
type Paginator struct {
	MaxLogical  int
	NewlineCost int
	Splitter    *sentence.Splitter
}

// New creates a Paginator. Non-positive values fall back to
// DefaultMaxLogical and DefaultNewlineCost; a nil splitter uses the
// default sentence tables.
func New(maxLogical, newlineCost int, splitter *sentence.Splitter) *Paginator {
	if maxLogical <= 0 {
		maxLogical = DefaultMaxLogical
	}
	if newlineCost <= 0 {
		newlineCost = DefaultNewlineCost
	}
	if splitter == nil {
		splitter = sentence.Default()
	}
	return &Paginator{MaxLogical: maxLogical, NewlineCost: newlineCost, Splitter: splitter}
}

// Paginate lays out paragraphs, in order, onto pages. Paragraphs must
// already be normalized; empty strings are skipped.
func (p *Paginator) Paginate(paragraphs []string) []core.Page {
	st := &pageState{}
	for _, para := range paragraphs {
		if para == "" {
			continue
		}
		n := utf8.RuneCountInString(para)
		if n <= p.MaxLogical {
			p.place(st, para, n)
		} else {
			p.spread(st, para)
		}
	}
	st.flush()
	return st.pages
}

// PaginateText is Paginate returning only the page texts.
func (p *Paginator) PaginateText(paragraphs []string) []string {
	pages := p.Paginate(paragraphs)
	out := make([]string, len(pages))
	for i, pg := range pages {
		out[i] = pg.Text
	}
	return out
}

// place puts a paragraph that fits on a page by itself.
func (p *Paginator) place(st *pageState, para string, n int) {
	cost := n
	if !st.empty() {
		cost += p.NewlineCost
	}
	if st.logical+cost > p.MaxLogical {
		st.flush()
	}
	if !st.empty() {
		st.write(separator, p.NewlineCost)
	}
	st.write(para, n)
}

// spread distributes an oversized paragraph sentence by sentence.
func (p *Paginator) spread(st *pageState, para string) {
	sentences := p.Splitter.Split(para)
	first := true // first fragment of this paragraph on the current page

	for i := 0; i < len(sentences); {
		s := sentences[i]
		n := utf8.RuneCountInString(s)

		header, join := 0, 0
		if first && !st.empty() {
			header = p.NewlineCost
		}
		if !first && !st.endsInSpace() {
			join = 1
		}

		if st.logical+header+join+n <= p.MaxLogical {
			if header > 0 {
				st.write(separator, header)
			}
			if join > 0 {
				st.write(" ", join)
			}
			st.write(s, n)
			first = false
			i++
			continue
		}

		if !st.empty() {
			// Retry the same sentence on a fresh page.
			st.flush()
			first = true
			continue
		}

		// Alone on an empty page and still too long.
		st.write(s, n)
		st.overflow = true
		st.flush()
		first = true
		i++
	}
}

// pageState is the open page for one Paginate call.
type pageState struct {
	text     strings.Builder
	logical  int
	overflow bool
	pages    []core.Page
}

func (st *pageState) empty() bool { return st.text.Len() == 0 }

func (st *pageState) endsInSpace() bool {
	r, _ := utf8.DecodeLastRuneInString(st.text.String())
	return r != utf8.RuneError && unicode.IsSpace(r)
}

func (st *pageState) write(s string, cost int) {
	st.text.WriteString(s)
	st.logical += cost
}

// flush emits the open page, if it has any visible content, and resets.
func (st *pageState) flush() {
	if text := strings.TrimSpace(st.text.String()); text != "" {
		st.pages = append(st.pages, core.Page{
			Number:   len(st.pages) + 1,
			Text:     text,
			Logical:  st.logical,
			Overflow: st.overflow,
		})
	}
	st.text.Reset()
	st.logical = 0
	st.overflow = false
}
