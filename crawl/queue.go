// Package crawl — ordered link set.
package crawl

// linkSet keeps the first occurrence of each link, in insertion order.
type linkSet struct {
	items []string
	seen  map[string]bool
}

func newLinkSet() *linkSet {
	return &linkSet{seen: make(map[string]bool)}
}

// add appends link unless it was added before.
func (s *linkSet) add(link string) {
	if s.seen[link] {
		return
	}
	s.seen[link] = true
	s.items = append(s.items, link)
}

func (s *linkSet) len() int { return len(s.items) }

// all returns the links in the order they were first added.
func (s *linkSet) all() []string {
	return s.items
}
