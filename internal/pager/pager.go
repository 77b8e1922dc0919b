package pager

import (
	"fmt"

	"line-task-tracker/internal/state"
)

// Pager keeps one active cursor per user.
type Pager struct {
	cursors state.Store[Cursor]
}

// New creates a Pager storing cursors in store.
func New(store state.Store[Cursor]) *Pager {
	return &Pager{cursors: store}
}

// Start replaces the user's cursor with a new list and renders its first page.
func (p *Pager) Start(userKey, listKey string, rows []Row, title string) Page {
	c := Cursor{ListKey: listKey, Title: title, Rows: rows}
	p.cursors.Set(userKey, c)
	return render(c)
}

// Render renders the user's current page.
func (p *Pager) Render(userKey string) (Page, bool) {
	c, ok := p.cursors.Get(userKey)
	if !ok {
		return Page{}, false
	}
	return render(c), true
}

// Advance moves the user's cursor by delta pages, clamped to the list.
func (p *Pager) Advance(userKey string, delta int) (Page, bool) {
	c, ok := p.cursors.Get(userKey)
	if !ok {
		return Page{}, false
	}
	c.Index = clamp(c.Index+delta, 0, totalPages(len(c.Rows))-1)
	p.cursors.Set(userKey, c)
	return render(c), true
}

func render(c Cursor) Page {
	total := totalPages(len(c.Rows))
	idx := clamp(c.Index, 0, total-1)
	start := min(idx*PageSize, len(c.Rows))
	end := min(start+PageSize, len(c.Rows))

	return Page{
		ListKey: c.ListKey,
		Title:   fmt.Sprintf("%s — หน้า %d/%d", c.Title, idx+1, total),
		Headers: Headers(c.ListKey),
		Rows:    c.Rows[start:end],
		Index:   idx,
		Total:   total,
	}
}

func totalPages(n int) int {
	return max(1, (n+PageSize-1)/PageSize)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
