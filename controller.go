package titlespec

import "sync"

// Navigator holds the navigation context, e.g. a browser location or a
// terminal session's history.
type Navigator interface {
	// Current returns the current navigation context.
	Current() Navigation

	// Push appends a navigation entry and makes it current.
	Push(nav Navigation)
}

// History is an in-memory Navigator with browser-like back and forward.
// Push discards any forward entries, like a browser does.
type History struct {
	mu      sync.Mutex
	entries []Navigation
	pos     int
}

// NewHistory returns a history whose only entry is start.
func NewHistory(start Navigation) *History {
	return &History{entries: []Navigation{start}}
}

// Current returns the current entry.
func (h *History) Current() Navigation {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.pos]
}

// Push appends nav after the current entry.
func (h *History) Push(nav Navigation) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.pos+1], nav)
	h.pos++
}

// Back moves to the previous entry. Returns false at the oldest entry.
func (h *History) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pos == 0 {
		return false
	}
	h.pos--
	return true
}

// Forward moves to the next entry. Returns false at the newest entry.
func (h *History) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pos == len(h.entries)-1 {
		return false
	}
	h.pos++
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Controller keeps the current selection and search filter consistent with
// the dataset and the navigation context. The selection is never stored; it
// is resolved from the dataset, the navigation context, and the last pick.
type Controller struct {
	mu      sync.Mutex
	nav     Navigator
	dataset *Dataset
	picked  *Record
	filter  string

	// DefaultFirst selects the first record when no code is requested.
	DefaultFirst bool
}

// NewController returns a controller in the loading state.
func NewController(nav Navigator) *Controller {
	return &Controller{nav: nav}
}

// SetDataset installs a freshly loaded dataset. A nil dataset returns the
// controller to the loading state.
func (c *Controller) SetDataset(ds *Dataset) Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dataset = ds
	if ds == nil || !ds.Contains(c.picked) {
		c.picked = nil
	}
	return c.resolve()
}

// Selection returns the current selection.
func (c *Controller) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolve()
}

// Pick selects rec and pushes its Title Code onto the navigator so the
// selection can be shared and revisited with back navigation.
// Returns EUNAVAILABLE while loading and EINVALID for a record that is not
// part of the dataset.
func (c *Controller) Pick(rec *Record) (Selection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dataset == nil {
		return c.resolve(), Errorf(EUNAVAILABLE, "dataset is still loading")
	}
	if !c.dataset.Contains(rec) {
		return c.resolve(), Errorf(EINVALID, "record is not part of the dataset")
	}
	c.picked = rec
	cur := c.nav.Current()
	c.nav.Push(Navigation{Code: rec.TitleCode(), Embed: cur.Embed})
	return c.resolve(), nil
}

// Navigated re-resolves the selection after the navigation context changed
// outside the controller, e.g. back or forward navigation.
func (c *Controller) Navigated() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolve()
}

// SetFilter sets the search term applied by Results.
func (c *Controller) SetFilter(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = term
}

// Filter returns the current search term.
func (c *Controller) Filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Results returns the records matching the current filter. It returns nil
// while loading and in embed mode, where the list is not shown.
func (c *Controller) Results() []*Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dataset == nil || c.nav.Current().Embed {
		return nil
	}
	return c.dataset.Search(c.filter)
}

func (c *Controller) resolve() Selection {
	return Resolve(SelectionInput{
		Dataset:      c.dataset,
		Navigation:   c.nav.Current(),
		Picked:       c.picked,
		DefaultFirst: c.DefaultFirst,
	})
}
