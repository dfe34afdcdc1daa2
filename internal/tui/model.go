// Package tui is the interactive view of the remote item list. All state
// lives in Model; every remote call runs as a tea.Cmd and feeds its outcome
// back in as a message, so Update stays a pure transition function.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/items/internal/model"
)

// Remote is the slice of the item service the view needs. *api.Client
// satisfies it; tests substitute a stub.
type Remote interface {
	List(ctx context.Context) ([]model.Item, error)
	Create(ctx context.Context, name string) (model.Item, error)
	Update(ctx context.Context, id int64, name string) (model.Item, error)
	Delete(ctx context.Context, id int64) error
}

// Status says whether the collection on screen can be trusted.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

// Banner prefixes. Kept stable; scripts and tests match on them.
const (
	fetchErrPrefix  = "Error fetching items"
	createErrPrefix = "Error adding item"
	deleteErrPrefix = "Error deleting item"
	updateErrPrefix = "Error updating item"
)

// editSession marks the one row being renamed; the draft text lives in the
// shared input. Holding the id in a single optional value keeps "which row"
// and "is a rename active" from ever disagreeing.
type editSession struct {
	id int64
}

// Completion events from remote calls. Mutations on an existing row carry
// the sequence number they were issued with, so a result that was overtaken
// by a newer mutation on the same row can be discarded.
type (
	listResultMsg struct {
		items []model.Item
		err   error
	}
	createResultMsg struct {
		item model.Item
		err  error
	}
	updateResultMsg struct {
		id   int64
		seq  uint64
		item model.Item
		err  error
	}
	deleteResultMsg struct {
		id  int64
		seq uint64
		err error
	}
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return i.item.Name }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Name }

// Model holds the whole view state.
type Model struct {
	client Remote

	list  list.Model
	spin  spinner.Model
	input textinput.Model // shared between add and rename

	items  []model.Item
	status Status
	banner string

	adding bool
	edit   *editSession

	// last issued mutation sequence per item id
	seq map[int64]uint64

	width, height int
}

// New builds the model. The first list call fires from Init.
func New(client Remote) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Items")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")

	// Extend help with our bindings
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	extra := func() []key.Binding { return []key.Binding{addBind, editBind, delBind, reloadBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		client: client,
		list:   l,
		spin:   sp,
		input:  ti,
		items:  []model.Item{},
		status: StatusLoading,
		seq:    make(map[int64]uint64),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

// ---- observable snapshot, mostly for embedding and tests ----

// Items returns the local collection in display order.
func (m Model) Items() []model.Item { return m.items }

// LoadStatus reports the collection's trust state.
func (m Model) LoadStatus() Status { return m.status }

// Banner returns the most recent failure message, empty when none.
func (m Model) Banner() string { return m.banner }

// Draft returns the pending text of the add form.
func (m Model) Draft() string {
	if !m.adding {
		return ""
	}
	return m.input.Value()
}

// EditTarget reports which item is being renamed, if any.
func (m Model) EditTarget() (int64, bool) {
	if m.edit == nil {
		return 0, false
	}
	return m.edit.id, true
}

// ---- remote effects ----

func (m Model) loadCmd() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		items, err := c.List(context.Background())
		return listResultMsg{items: items, err: err}
	}
}

func (m Model) createCmd(name string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		it, err := c.Create(context.Background(), name)
		return createResultMsg{item: it, err: err}
	}
}

func (m Model) updateCmd(id int64, seq uint64, name string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		it, err := c.Update(context.Background(), id, name)
		return updateResultMsg{id: id, seq: seq, item: it, err: err}
	}
}

func (m Model) deleteCmd(id int64, seq uint64) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		err := c.Delete(context.Background(), id)
		return deleteResultMsg{id: id, seq: seq, err: err}
	}
}

func bannerFor(prefix string, err error) string {
	return fmt.Sprintf("%s: %v", prefix, err)
}
