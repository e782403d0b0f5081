// Package view renders the finance service's data as markdown pages.
//
// A [Page] is a set of named sections. Refresh controllers fetch from the
// service and overwrite whole sections, so a page never shows a mix of stale
// and fresh content. Failures are reported to a [Notifier] and leave a valid
// empty or zeroed section behind; they never stop sibling sections.
package view

import (
	"strings"
	"sync"
)

// Slot names a section of a page.
type Slot string

const (
	SlotSummary      Slot = "summary"
	SlotRecentAssets Slot = "recent-assets"
	SlotRecentDebts  Slot = "recent-debts"
	SlotDistribution Slot = "distribution"
	SlotComparison   Slot = "comparison"
	SlotAssets       Slot = "assets"
	SlotDebts        Slot = "debts"
	SlotHistory      Slot = "history"
)

// DashboardSlots is the section order of the dashboard page.
var DashboardSlots = []Slot{SlotSummary, SlotDistribution, SlotComparison, SlotRecentAssets, SlotRecentDebts}

// ManageSlots is the section order of the management page.
var ManageSlots = []Slot{SlotAssets, SlotDebts}

// Page is an ordered set of markdown sections. It is safe for concurrent use.
type Page struct {
	mu       sync.Mutex
	order    []Slot
	sections map[Slot]string
}

// NewPage returns an empty page laid out in slots order. Sections set on
// other slots are appended after them, in the order they are first set.
func NewPage(slots ...Slot) *Page {
	return &Page{
		order:    append([]Slot(nil), slots...),
		sections: make(map[Slot]string),
	}
}

// Set replaces the content of slot.
func (p *Page) Set(slot Slot, markdown string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.has(slot) {
		p.order = append(p.order, slot)
	}
	p.sections[slot] = markdown
}

func (p *Page) has(slot Slot) bool {
	for _, s := range p.order {
		if s == slot {
			return true
		}
	}
	return false
}

// Get returns the content of slot.
func (p *Page) Get(slot Slot) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sections[slot]
}

// Markdown returns the whole page, "" when no section has content.
func (p *Page) Markdown() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var parts []string
	for _, slot := range p.order {
		if s := strings.TrimSpace(p.sections[slot]); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Reset empties every section.
func (p *Page) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.sections)
}
