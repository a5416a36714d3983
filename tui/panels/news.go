package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/paperhands/internal/news"
	"github.com/zappabad/paperhands/tui/styles"
)

// importantImpact marks headlines worth highlighting on the tape.
const importantImpact = 0.03

// NewsPanel displays the rolling news tape, newest last.
type NewsPanel struct {
	items         []news.Item
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
	maxItems      int
}

// NewNewsPanel creates a news panel.
func NewNewsPanel() *NewsPanel {
	return &NewsPanel{maxItems: 50}
}

// Init initializes the panel.
func (p *NewsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *NewsPanel) Update(msg tea.Msg) (*NewsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
				if p.selectedIndex < p.scrollOffset {
					p.scrollOffset = p.selectedIndex
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.items)-1 {
				p.selectedIndex++
				visible := p.visibleItems()
				if p.selectedIndex >= p.scrollOffset+visible {
					p.scrollOffset = p.selectedIndex - visible + 1
				}
			}
		}
	}
	return p, nil
}

func (p *NewsPanel) visibleItems() int {
	visible := p.height - 4
	if visible < 1 {
		visible = 1
	}
	return visible
}

// View renders the panel.
func (p *NewsPanel) View() string {
	var content strings.Builder

	if len(p.items) == 0 {
		content.WriteString(styles.MutedStyle.Render("No news yet"))
	} else {
		visible := p.visibleItems()
		start := p.scrollOffset
		end := start + visible
		if end > len(p.items) {
			end = len(p.items)
		}

		for i := start; i < end; i++ {
			item := p.items[i]

			dayStr := styles.MutedStyle.Render(fmt.Sprintf("d%03d", item.PublishDay))
			tag := styles.LabelStyle.Render("[" + item.Category.String() + "]")

			headline := item.Title
			if len(headline) > p.width-18 && p.width > 21 {
				headline = headline[:p.width-21] + "..."
			}
			headlineStyle := styles.NewsNormalStyle
			if item.Impact >= importantImpact || item.Impact <= -importantImpact {
				headlineStyle = styles.NewsImportantStyle
			}

			line := fmt.Sprintf("%s %s %s", dayStr, tag, headlineStyle.Render(headline))
			if i == p.selectedIndex && p.focused {
				line = styles.SelectedRowStyle.Render(line)
			}
			content.WriteString(line)
			if i < end-1 {
				content.WriteString("\n")
			}
		}

		if len(p.items) > visible {
			content.WriteString("\n")
			content.WriteString(styles.MutedStyle.Render(
				fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.items))))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📰 News", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *NewsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *NewsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetNews replaces the tape contents.
func (p *NewsPanel) SetNews(items []news.Item) {
	p.items = items
	if p.selectedIndex >= len(p.items) {
		p.selectedIndex = len(p.items) - 1
		if p.selectedIndex < 0 {
			p.selectedIndex = 0
		}
	}
}

// AddNews appends items to the tape, bounded to maxItems.
func (p *NewsPanel) AddNews(items ...news.Item) {
	p.items = append(p.items, items...)
	if len(p.items) > p.maxItems {
		p.items = p.items[len(p.items)-p.maxItems:]
	}
}

// SelectedNews returns the highlighted item, nil when the tape is empty.
func (p *NewsPanel) SelectedNews() *news.Item {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.items) {
		return &p.items[p.selectedIndex]
	}
	return nil
}
