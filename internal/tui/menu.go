// Package tui provides the interactive menu for browsing and lending books.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/libris"
	"github.com/agentstation/libris/pkg/books"
)

const (
	defaultListWidth  = 64
	defaultListHeight = 16
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// screen identifies which view the menu is showing.
type screen int

const (
	screenMenu screen = iota
	screenListing
	screenPicker
)

// action is a menu entry.
type action int

const (
	actionViewAvailable action = iota
	actionViewBorrowed
	actionBorrow
	actionReturn
	actionQuit
)

type menuItem struct {
	action action
	title  string
	desc   string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

type bookItem struct {
	book   books.Book
	borrow bool // picker mode: true for borrow, false for return
}

func (i bookItem) Title() string {
	return i.book.Title
}

func (i bookItem) Description() string {
	if i.borrow {
		return fmt.Sprintf("%s — %d of %d available", i.book.Author, i.book.Available(), i.book.Total)
	}
	return fmt.Sprintf("%s — %d borrowed", i.book.Author, i.book.Borrowed)
}

func (i bookItem) FilterValue() string { return i.book.Title }

type styles struct {
	header  lipgloss.Style
	status  lipgloss.Style
	errMsg  lipgloss.Style
	listing lipgloss.Style
	help    lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		errMsg:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		listing: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
	}
}

// model is the bubbletea model driving the menu.
type model struct {
	lib    libris.Libris
	screen screen
	menu   list.Model
	picker list.Model
	styles styles

	listingTitle string
	listingRows  []string

	status string
	errMsg string
}

func newModel(lib libris.Libris) *model {
	items := []list.Item{
		menuItem{actionViewAvailable, "View available books", "Titles with copies on the shelf"},
		menuItem{actionViewBorrowed, "View borrowed books", "Titles with copies out on loan"},
		menuItem{actionBorrow, "Borrow a book", "Check out one copy"},
		menuItem{actionReturn, "Return a book", "Check one copy back in"},
		menuItem{actionQuit, "Quit", "Save state is already on disk"},
	}

	menu := list.New(items, list.NewDefaultDelegate(), defaultListWidth, defaultListHeight)
	menu.Title = "Library Menu"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)

	return &model{
		lib:    lib,
		screen: screenMenu,
		menu:   menu,
		styles: newStyles(),
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width, min(msg.Height, defaultListHeight))
		m.picker.SetSize(msg.Width, min(msg.Height, defaultListHeight))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenListing:
			// Any key returns to the menu.
			m.screen = screenMenu
			return m, nil
		case screenPicker:
			return m.updatePicker(msg)
		}
	}

	return m, nil
}

func (m *model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		item, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.runAction(item.action)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *model) runAction(a action) (tea.Model, tea.Cmd) {
	m.status, m.errMsg = "", ""

	switch a {
	case actionViewAvailable:
		m.showListing("Available books", m.lib.Available(), true)
	case actionViewBorrowed:
		m.showListing("Currently borrowed books", m.lib.Borrowed(), false)
	case actionBorrow:
		m.showPicker("Select a book to borrow", m.lib.Available(), true)
	case actionReturn:
		m.showPicker("Select a book to return", m.lib.Borrowed(), false)
	case actionQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) showListing(title string, list []books.Book, available bool) {
	m.listingTitle = title
	m.listingRows = m.listingRows[:0]
	for _, book := range list {
		count := book.Available()
		if !available {
			count = book.Borrowed
		}
		m.listingRows = append(m.listingRows,
			fmt.Sprintf("%-6s %-28s %-22s %d", book.ID, book.Title, book.Author, count))
	}
	m.screen = screenListing
}

func (m *model) showPicker(title string, candidates []books.Book, borrow bool) {
	if len(candidates) == 0 {
		if borrow {
			m.errMsg = "No books are currently available to borrow."
		} else {
			m.errMsg = "You have no borrowed books to return."
		}
		return
	}

	items := make([]list.Item, len(candidates))
	for i, book := range candidates {
		items[i] = bookItem{book: book, borrow: borrow}
	}

	picker := list.New(items, list.NewDefaultDelegate(), defaultListWidth, defaultListHeight)
	picker.Title = title
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)
	picker.SetShowHelp(false)

	m.picker = picker
	m.screen = screenPicker
}

func (m *model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = screenMenu
		return m, nil
	case "enter":
		item, ok := m.picker.SelectedItem().(bookItem)
		if !ok {
			return m, nil
		}
		m.applySelection(item)
		m.screen = screenMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *model) applySelection(item bookItem) {
	var (
		book books.Book
		err  error
	)
	if item.borrow {
		book, err = m.lib.Borrow(item.book.Title)
	} else {
		book, err = m.lib.Return(item.book.Title)
	}

	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if item.borrow {
		m.status = fmt.Sprintf("You borrowed %q. %d copies left.", book.Title, book.Available())
	} else {
		m.status = fmt.Sprintf("Thank you for returning %q.", book.Title)
	}
}

func (m *model) View() string {
	var b strings.Builder

	switch m.screen {
	case screenMenu:
		b.WriteString(m.menu.View())
	case screenListing:
		b.WriteString(m.styles.header.Render(m.listingTitle))
		b.WriteString("\n")
		if len(m.listingRows) == 0 {
			b.WriteString(m.styles.listing.Render("No books to display."))
			b.WriteString("\n")
		}
		for _, row := range m.listingRows {
			b.WriteString(m.styles.listing.Render(row))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.help.Render("Press any key to go back."))
	case screenPicker:
		b.WriteString(m.picker.View())
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render("enter: select • esc: cancel"))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.status.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.errMsg.Render(m.errMsg))
	}

	return b.String()
}

// Run starts the interactive menu and blocks until the user quits.
func Run(lib libris.Libris) error {
	_, err := runProgram(newModel(lib))
	return err
}
