package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/items/internal/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, listHeight(msg.Height, m.adding || m.edit != nil))
		return m, nil

	case spinner.TickMsg:
		if m.status != StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case listResultMsg:
		return m.onListResult(msg)
	case createResultMsg:
		return m.onCreateResult(msg)
	case updateResultMsg:
		return m.onUpdateResult(msg)
	case deleteResultMsg:
		return m.onDeleteResult(msg)
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if x, isKey := msg.(tea.KeyMsg); isKey {
			switch x.String() {
			case "enter":
				return m.submitCreate()
			case "esc":
				m.adding = false
				m.input.SetValue("")
				m.input.Blur()
				return m, nil
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	// rename mode
	if m.edit != nil {
		var cmd tea.Cmd
		if x, isKey := msg.(tea.KeyMsg); isKey {
			switch x.String() {
			case "enter":
				return m.commitEdit()
			case "esc":
				m.cancelEdit()
				return m, nil
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if x, isKey := msg.(tea.KeyMsg); isKey {
		switch x.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.adding = true
			m.input.Placeholder = "New item name..."
			m.input.Focus()
			return m, nil
		case "e":
			if it, sel := m.selected(); sel {
				m.edit = &editSession{id: it.ID}
				m.input.Placeholder = "Item name..."
				m.input.SetValue(it.Name)
				m.input.CursorEnd()
				m.input.Focus()
			}
			return m, nil
		case "d":
			if it, sel := m.selected(); sel {
				m.banner = ""
				m.seq[it.ID]++
				return m, m.deleteCmd(it.ID, m.seq[it.ID])
			}
			return m, nil
		case "r":
			m.banner = ""
			m.status = StatusLoading
			return m, tea.Batch(m.spin.Tick, m.loadCmd())
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// submitCreate sends the trimmed draft to the server. A whitespace-only
// draft is a silent no-op: no call, no state change, not even a banner.
// The draft is only cleared once the server confirms, so a failed create
// keeps the user's text.
func (m Model) submitCreate() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		return m, nil
	}
	m.banner = ""
	return m, m.createCmd(name)
}

// commitEdit sends the trimmed rename. Whitespace-only keeps the session
// open and skips the call; the session closes when the result comes back,
// success or failure.
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		return m, nil
	}
	m.banner = ""
	id := m.edit.id
	m.seq[id]++
	return m, m.updateCmd(id, m.seq[id], name)
}

func (m *Model) cancelEdit() {
	m.edit = nil
	m.input.SetValue("")
	m.input.Blur()
}

func (m Model) onListResult(msg listResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = StatusFailed
		m.banner = bannerFor(fetchErrPrefix, msg.err)
		return m, nil
	}
	m.items = msg.items
	m.status = StatusReady
	m.banner = ""
	if m.edit != nil && !m.hasItem(m.edit.id) {
		m.cancelEdit()
	}
	m.syncList()
	return m, nil
}

func (m Model) onCreateResult(msg createResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.banner = bannerFor(createErrPrefix, msg.err)
		return m, nil
	}
	m.items = append(m.items, msg.item)
	m.adding = false
	m.input.SetValue("")
	m.input.Blur()
	m.syncList()
	return m, nil
}

func (m Model) onUpdateResult(msg updateResultMsg) (tea.Model, tea.Cmd) {
	if m.seq[msg.id] != msg.seq {
		// overtaken by a newer mutation on the same row
		return m, nil
	}
	if m.edit != nil && m.edit.id == msg.id {
		m.cancelEdit()
	}
	if msg.err != nil {
		m.banner = bannerFor(updateErrPrefix, msg.err)
		return m, nil
	}
	for i := range m.items {
		if m.items[i].ID == msg.id {
			m.items[i] = msg.item
			break
		}
	}
	m.syncList()
	return m, nil
}

func (m Model) onDeleteResult(msg deleteResultMsg) (tea.Model, tea.Cmd) {
	if m.seq[msg.id] != msg.seq {
		return m, nil
	}
	if msg.err != nil {
		m.banner = bannerFor(deleteErrPrefix, msg.err)
		return m, nil
	}
	for i := range m.items {
		if m.items[i].ID == msg.id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	delete(m.seq, msg.id)
	if m.edit != nil && m.edit.id == msg.id {
		m.cancelEdit()
	}
	m.banner = ""
	m.syncList()
	return m, nil
}

func (m Model) selected() (model.Item, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.items) {
		return model.Item{}, false
	}
	return m.items[i], true
}

func (m Model) hasItem(id int64) bool {
	for _, it := range m.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// syncList rebuilds the bubbles list from the canonical slice, keeping the
// cursor on a valid row.
func (m *Model) syncList() {
	li := make([]list.Item, 0, len(m.items))
	for _, it := range m.items {
		li = append(li, listItem{item: it})
	}
	m.list.SetItems(li)
	if idx := m.list.Index(); idx >= len(li) && len(li) > 0 {
		m.list.Select(len(li) - 1)
	}
}
