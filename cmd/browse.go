package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/internal/core/services"
	"github.com/modstash/modstash/pkg/metadata"
	"github.com/modstash/modstash/pkg/ui"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b"},
	Short:   "Browse the mod library interactively (alias: b)",
	Long: `Launch a full-screen interactive browser for the mod library.

The browser shows every registered mod with live search and a detail
pane rendering the mod's metadata and staged files.

Keyboard Shortcuts:
  Navigation:
    ↑/k         Move up
    ↓/j         Move down
    g           Jump to top
    G           Jump to bottom

  Actions:
    Enter       Open mod folder in file manager
    d           Delete mod

  Views:
    /           Search mode
    Esc         Clear search / Exit mode
    ?           Show help

  General:
    q           Quit browser
    Ctrl+C      Force quit`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	listResp, err := listService.Execute(ctx, services.ListRequest{SortBy: "date"})
	if err != nil {
		return fmt.Errorf("failed to load mods: %w", err)
	}

	m := newBrowseModel(ctx, listResp.Mods)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}

	return nil
}

// Browser view modes
type browseMode int

const (
	browseModeList browseMode = iota
	browseModeSearch
	browseModeHelp
	browseModeConfirmDelete
)

type browseDetailState struct {
	content  string
	modID    string
	viewport viewport.Model
}

type browseModel struct {
	ctx           context.Context
	mods          []domain.ModRecord
	filteredMods  []domain.ModRecord
	cursor        int
	offset        int
	mode          browseMode
	searchInput   textinput.Model
	help          help.Model
	keys          browseKeyMap
	width         int
	height        int
	ready         bool
	message       string
	messageStyle  lipgloss.Style
	messageExpiry time.Time
	deleteTarget  *domain.ModRecord
	detail        browseDetailState
}

type browseKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Open    key.Binding
	Delete  key.Binding
	Search  key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Search, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Open, k.Delete},
		{k.Search, k.Help, k.Escape, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter/o", "open folder"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

func newBrowseModel(ctx context.Context, mods []domain.ModRecord) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search mods..."
	ti.CharLimit = 100
	ti.Width = 50

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().Foreground(ui.ColorDefault)

	return browseModel{
		ctx:          ctx,
		mods:         mods,
		filteredMods: mods,
		mode:         browseModeList,
		searchInput:  ti,
		help:         help.New(),
		keys:         browseKeys,
		detail: browseDetailState{
			viewport: vp,
		},
	}
}

func (m browseModel) Init() tea.Cmd {
	if len(m.mods) > 0 {
		return m.loadDetail(m.mods[0])
	}
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

		detailWidth := (msg.Width / 2) - 4
		detailHeight := msg.Height - 16
		if detailHeight < 10 {
			detailHeight = 10
		}
		m.detail.viewport.Width = detailWidth
		m.detail.viewport.Height = detailHeight
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case browseModeSearch:
			return m.updateSearch(msg)
		case browseModeHelp:
			return m.updateHelp(msg)
		case browseModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case browseModeList:
			return m.updateList(msg)
		}

	case browseStatusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageExpiry = time.Now().Add(3 * time.Second)
		return m, nil

	case reloadModsMsg:
		listResp, err := listService.Execute(m.ctx, services.ListRequest{SortBy: "date"})
		if err == nil {
			m.mods = listResp.Mods
			m.applySearch()
			if len(m.filteredMods) > 0 {
				return m, m.loadDetail(m.filteredMods[m.cursor])
			}
			m.detail.content = ""
			m.detail.modID = ""
		}
		return m, nil

	case detailLoadedMsg:
		m.detail.content = msg.content
		m.detail.modID = msg.modID
		m.detail.viewport.SetContent(msg.content)
		m.detail.viewport.GotoTop()
		return m, nil
	}

	if m.mode == browseModeList || m.mode == browseModeSearch {
		var cmd tea.Cmd
		m.detail.viewport, cmd = m.detail.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
			if len(m.filteredMods) > 0 {
				return m, m.loadDetail(m.filteredMods[m.cursor])
			}
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filteredMods)-1 {
			m.cursor++
			m.adjustViewport()
			if len(m.filteredMods) > 0 {
				return m, m.loadDetail(m.filteredMods[m.cursor])
			}
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0
		if len(m.filteredMods) > 0 {
			return m, m.loadDetail(m.filteredMods[m.cursor])
		}

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.filteredMods) - 1
		m.adjustViewport()
		if len(m.filteredMods) > 0 {
			return m, m.loadDetail(m.filteredMods[m.cursor])
		}

	case msg.Type == tea.KeyPgUp:
		m.detail.viewport.ViewUp()

	case msg.Type == tea.KeyPgDown:
		m.detail.viewport.ViewDown()

	case key.Matches(msg, m.keys.Open):
		if len(m.filteredMods) > 0 {
			return m, m.openMod(m.filteredMods[m.cursor])
		}

	case key.Matches(msg, m.keys.Delete):
		if len(m.filteredMods) > 0 {
			m.deleteTarget = &m.filteredMods[m.cursor]
			m.mode = browseModeConfirmDelete
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = browseModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.mode = browseModeHelp
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = browseModeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filteredMods = m.mods
		m.cursor = 0
		m.offset = 0
		return m, nil

	case msg.Type == tea.KeyEnter:
		if len(m.filteredMods) > 0 {
			m.mode = browseModeList
			m.searchInput.Blur()
			return m, m.openMod(m.filteredMods[m.cursor])
		}

	// Arrow keys only here; j/k are literal characters while typing.
	case msg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
			if len(m.filteredMods) > 0 {
				return m, m.loadDetail(m.filteredMods[m.cursor])
			}
		}

	case msg.Type == tea.KeyDown:
		if m.cursor < len(m.filteredMods)-1 {
			m.cursor++
			m.adjustViewport()
			if len(m.filteredMods) > 0 {
				return m, m.loadDetail(m.filteredMods[m.cursor])
			}
		}

	case msg.Type == tea.KeyPgUp:
		m.detail.viewport.ViewUp()

	case msg.Type == tea.KeyPgDown:
		m.detail.viewport.ViewDown()

	default:
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.applySearch()
		if len(m.filteredMods) > 0 {
			return m, tea.Batch(cmd, m.loadDetail(m.filteredMods[m.cursor]))
		}
		return m, cmd
	}

	return m, nil
}

func (m browseModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = browseModeList
	}
	return m, nil
}

func (m browseModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		rec := m.deleteTarget
		m.deleteTarget = nil
		m.mode = browseModeList
		return m, m.deleteModConfirmed(rec)

	case key.Matches(msg, m.keys.Cancel):
		m.deleteTarget = nil
		m.mode = browseModeList
	}
	return m, nil
}

func (m browseModel) View() string {
	if !m.ready {
		return "\n  Loading library..."
	}

	switch m.mode {
	case browseModeHelp:
		return m.viewHelp()
	case browseModeConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m browseModel) viewList() string {
	// Split screen: list on left (40%), detail pane on right.
	listWidth := int(float64(m.width) * 0.4)
	detailWidth := m.width - listWidth - 2

	if listWidth < 30 {
		listWidth = 30
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderSearchBar())
	s.WriteString("\n\n")

	if detailWidth < 40 {
		// Screen too narrow for the detail pane.
		s.WriteString(m.renderModList(m.width))
	} else {
		listContent := m.renderModList(listWidth)
		detailContent := m.renderDetail(detailWidth)

		listLines := strings.Split(listContent, "\n")
		detailLines := strings.Split(detailContent, "\n")

		maxLines := len(listLines)
		if len(detailLines) > maxLines {
			maxLines = len(detailLines)
		}

		for i := 0; i < maxLines; i++ {
			var listLine, detailLine string
			if i < len(listLines) {
				listLine = listLines[i]
			}
			if i < len(detailLines) {
				detailLine = detailLines[i]
			}

			s.WriteString(browsePadRight(listLine, listWidth))
			s.WriteString("  ")
			s.WriteString(detailLine)
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m browseModel) viewHelp() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	sectionStyle := lipgloss.NewStyle().
		Foreground(ui.ColorAccent).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ui.ColorSuccess).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ui.ColorDefault)

	s.WriteString(titleStyle.Render("Mod Browser - Keyboard Shortcuts"))
	s.WriteString("\n\n")

	sections := []struct {
		title string
		keys  []struct{ key, desc string }
	}{
		{
			title: "Navigation",
			keys: []struct{ key, desc string }{
				{"↑ / k", "Move cursor up"},
				{"↓ / j", "Move cursor down"},
				{"g", "Jump to top"},
				{"G", "Jump to bottom"},
			},
		},
		{
			title: "Actions",
			keys: []struct{ key, desc string }{
				{"Enter / o", "Open mod folder in file manager"},
				{"d", "Delete mod (with confirmation)"},
			},
		},
		{
			title: "Views & Search",
			keys: []struct{ key, desc string }{
				{"/", "Start search (type to filter, arrow keys to navigate)"},
				{"Esc", "Exit search / Cancel"},
				{"?", "Show this help"},
			},
		},
		{
			title: "Detail Pane",
			keys: []struct{ key, desc string }{
				{"PgUp/PgDn", "Scroll detail pane"},
			},
		},
		{
			title: "General",
			keys: []struct{ key, desc string }{
				{"q", "Quit browser"},
				{"Ctrl+C", "Force quit"},
			},
		},
	}

	for _, section := range sections {
		s.WriteString(sectionStyle.Render(section.title))
		s.WriteString("\n")
		for _, binding := range section.keys {
			s.WriteString("  ")
			s.WriteString(keyStyle.Render(binding.key))
			s.WriteString(descStyle.Render(binding.desc))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(ui.StyleMuted.Render("  Press ESC or ? to return to the browser"))
	s.WriteString("\n")

	return s.String()
}

func (m browseModel) viewConfirmDelete() string {
	if m.deleteTarget == nil {
		return ""
	}

	var s strings.Builder

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(60).
		Align(lipgloss.Center)

	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorWarning).
		Bold(true)

	modStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true)

	promptStyle := lipgloss.NewStyle().
		Foreground(ui.ColorDefault).
		MarginTop(1)

	content := fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		titleStyle.Render("⚠  Delete Mod?"),
		modStyle.Render(m.deleteTarget.Meta.Name),
		ui.StyleMuted.Render(m.deleteTarget.Meta.ID),
		promptStyle.Render("Press 'y' to confirm, 'n' or ESC to cancel"),
	)

	box := boxStyle.Render(content)

	verticalPadding := (m.height - lipgloss.Height(box)) / 2
	if verticalPadding < 0 {
		verticalPadding = 0
	}
	for i := 0; i < verticalPadding; i++ {
		s.WriteString("\n")
	}

	s.WriteString(lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, box))

	return s.String()
}

func (m browseModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	statsStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Align(lipgloss.Right)

	vaultPath := appVault.ModsPath
	if home, err := os.UserHomeDir(); err == nil {
		vaultPath = strings.Replace(vaultPath, home, "~", 1)
	}

	title := titleStyle.Render(ui.IconPackage + " Mod Library")
	stats := statsStyle.Render(fmt.Sprintf("%d mods  %s", len(m.filteredMods), vaultPath))

	titleWidth := lipgloss.Width(title)
	statsWidth := lipgloss.Width(stats)
	spacer := m.width - titleWidth - statsWidth
	if spacer < 0 {
		spacer = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", spacer),
		stats,
	)
}

func (m browseModel) renderSearchBar() string {
	borderColor := ui.ColorMuted
	if m.mode == browseModeSearch {
		borderColor = ui.ColorPrimary
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.width - 4)

	var prompt string
	if m.mode == browseModeSearch {
		prompt = ui.StylePrimary.Render("/ ")
	} else {
		prompt = ui.StyleMuted.Render("/ ")
	}

	content := prompt + m.searchInput.View()
	if m.mode != browseModeSearch && m.searchInput.Value() == "" {
		content = prompt + ui.StyleMuted.Render("Press / to search...")
	}

	return searchStyle.Render(content)
}

func (m browseModel) renderModList(width int) string {
	var s strings.Builder

	if len(m.filteredMods) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(2, 2).
			Width(width)

		if m.searchInput.Value() != "" {
			s.WriteString(emptyStyle.Render("No mods match your search."))
		} else {
			s.WriteString(emptyStyle.Render("No mods yet. Run 'modstash add' to stage one."))
		}
		return s.String()
	}

	listHeight := m.height - 10
	if listHeight < 3 {
		listHeight = 3
	}

	start := m.offset
	end := m.offset + listHeight
	if end > len(m.filteredMods) {
		end = len(m.filteredMods)
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderModItem(m.filteredMods[i], i == m.cursor, width))
	}

	return s.String()
}

func (m browseModel) renderModItem(rec domain.ModRecord, selected bool, width int) string {
	var cursor string
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorDefault)

	if selected {
		cursor = ui.StylePrimary.Render("▶ ")
		nameStyle = ui.StylePrimary.Bold(true)
	} else {
		cursor = "  "
	}

	maxNameLen := width - 18
	if maxNameLen < 10 {
		maxNameLen = 10
	}

	name := rec.Meta.Name
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	badge := ui.StyleAccent.Render("[" + string(rec.Meta.Category) + "]")

	line := fmt.Sprintf("%s%-*s %s",
		cursor,
		maxNameLen,
		nameStyle.Render(name),
		badge,
	)

	return browsePadRight(line, width) + "\n"
}

func (m browseModel) renderDetail(width int) string {
	var s strings.Builder

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Width(width - 2).
		Height(m.height - 12)

	if m.detail.content == "" {
		msg := "Loading details..."
		if len(m.filteredMods) == 0 {
			msg = "No mod selected"
		}
		return borderStyle.Render(
			lipgloss.NewStyle().
				Foreground(ui.ColorMuted).
				Italic(true).
				Padding(1).
				Render(msg),
		)
	}

	var rec *domain.ModRecord
	for i := range m.filteredMods {
		if m.filteredMods[i].Meta.ID == m.detail.modID {
			rec = &m.filteredMods[i]
			break
		}
	}

	if rec != nil {
		titleStyle := lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true).
			Width(width - 4)
		s.WriteString(titleStyle.Render(rec.Meta.Name))
		s.WriteString("\n")
		s.WriteString(ui.StyleAccent.Render("by " + rec.Meta.Author))
		s.WriteString("\n\n")
	}

	s.WriteString(lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Render(fmt.Sprintf("PgUp/PgDn to scroll • %d%%", int(m.detail.viewport.ScrollPercent()*100))))
	s.WriteString("\n")
	s.WriteString(m.detail.viewport.View())

	return borderStyle.Render(s.String())
}

func (m browseModel) renderFooter() string {
	var statusLine string
	if m.message != "" && time.Now().Before(m.messageExpiry) {
		statusLine = m.messageStyle.Render(m.message)
	} else {
		statusLine = ui.StyleMuted.Render("Ready")
	}

	helpHint := ui.StyleMuted.Render("[↑↓/jk] Navigate  [Enter/o] Open  [d] Delete  [/] Search  [?] Help  [q] Quit")

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		statusLine,
		helpHint,
	)

	return footerStyle.Render(content)
}

func browsePadRight(s string, width int) string {
	realLen := lipgloss.Width(s)
	if realLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-realLen)
}

func (m *browseModel) adjustViewport() {
	listHeight := m.height - 10
	if listHeight < 3 {
		listHeight = 3
	}

	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func (m *browseModel) applySearch() {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.filteredMods = m.mods
	} else {
		resp, err := listService.Search(m.ctx, services.SearchRequest{Query: query})
		if err == nil {
			m.filteredMods = resp.Mods
		}
	}

	if m.cursor >= len(m.filteredMods) {
		m.cursor = len(m.filteredMods) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}

// Commands

type browseStatusMsg struct {
	message string
	style   lipgloss.Style
}

type reloadModsMsg struct{}

type detailLoadedMsg struct {
	modID   string
	content string
}

func (m browseModel) openMod(rec domain.ModRecord) tea.Cmd {
	return func() tea.Msg {
		if err := OpenPath(rec.Dir, appConfig.FileManager); err != nil {
			return browseStatusMsg{
				message: fmt.Sprintf("Failed to open folder: %v", err),
				style:   ui.StyleError,
			}
		}
		return browseStatusMsg{
			message: fmt.Sprintf("Opened: %s", rec.Meta.Name),
			style:   ui.StyleSuccess,
		}
	}
}

func (m browseModel) deleteModConfirmed(rec *domain.ModRecord) tea.Cmd {
	return func() tea.Msg {
		if rec == nil {
			return nil
		}

		if err := os.RemoveAll(rec.Dir); err != nil {
			return browseStatusMsg{
				message: fmt.Sprintf("Failed to delete: %v", err),
				style:   ui.StyleError,
			}
		}
		if err := modRegistry.Delete(context.Background(), rec.Meta.ID); err != nil && !os.IsNotExist(err) {
			return browseStatusMsg{
				message: fmt.Sprintf("Removed but not unregistered: %v", err),
				style:   ui.StyleWarning,
			}
		}

		return tea.Sequence(
			func() tea.Msg {
				return browseStatusMsg{
					message: fmt.Sprintf("%s Deleted: %s", ui.IconSuccess, rec.Meta.Name),
					style:   ui.StyleSuccess,
				}
			},
			func() tea.Msg {
				return reloadModsMsg{}
			},
		)()
	}
}

func (m browseModel) loadDetail(rec domain.ModRecord) tea.Cmd {
	return func() tea.Msg {
		var s strings.Builder

		data, err := os.ReadFile(metadata.Path(rec.Dir))
		if err != nil {
			s.WriteString(fmt.Sprintf("Error loading metadata: %v\n", err))
		} else {
			s.WriteString(highlightJSON(string(data)))
		}

		s.WriteString("\n")
		s.WriteString(ui.StyleBold.Render("Files"))
		s.WriteString("\n")
		s.WriteString(listStagedFiles(rec.Dir))

		return detailLoadedMsg{
			modID:   rec.Meta.ID,
			content: s.String(),
		}
	}
}

// listStagedFiles renders the mod directory contents relative to its root.
func listStagedFiles(dir string) string {
	var s strings.Builder
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		s.WriteString("  " + filepath.ToSlash(rel) + "\n")
		return nil
	})
	if err != nil {
		return ui.StyleMuted.Render("  (unreadable)")
	}
	if s.Len() == 0 {
		return ui.StyleMuted.Render("  (empty)")
	}
	return s.String()
}

// highlightJSON applies terminal syntax highlighting to a JSON document.
func highlightJSON(content string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.TTY16m

	var buf strings.Builder
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	if err := formatter.Format(&buf, style, iterator); err != nil {
		return content
	}

	return buf.String()
}
