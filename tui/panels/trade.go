package panels

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/paperhands/tui/styles"
)

// TradeField represents the currently focused input field.
type TradeField int

const (
	FieldTicker TradeField = iota
	FieldQuantity
	FieldSide
	FieldMargin
	FieldSubmit
)

// TradePanel is the trade entry form: ticker, quantity, side and a margin
// toggle for buys.
type TradePanel struct {
	tickerInput   textinput.Model
	quantityInput textinput.Model

	sideOptions []string
	sideIndex   int
	useMargin   bool

	currentField TradeField
	errMsg       string

	focused bool
	width   int
	height  int
}

// NewTradePanel creates a trade entry panel.
func NewTradePanel() *TradePanel {
	tickerInput := textinput.New()
	tickerInput.Placeholder = "Ticker"
	tickerInput.Width = 8
	tickerInput.CharLimit = 6

	quantityInput := textinput.New()
	quantityInput.Placeholder = "Quantity"
	quantityInput.Width = 10
	quantityInput.CharLimit = 9

	return &TradePanel{
		tickerInput:   tickerInput,
		quantityInput: quantityInput,
		sideOptions:   []string{"BUY", "SELL"},
		currentField:  FieldTicker,
	}
}

// Init initializes the panel.
func (p *TradePanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the panel.
func (p *TradePanel) Update(msg tea.Msg) (*TradePanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("down"))):
			p.nextField()
			return p, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("up"))):
			p.prevField()
			return p, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("left", "right"))):
			switch p.currentField {
			case FieldSide:
				p.sideIndex = (p.sideIndex + 1) % len(p.sideOptions)
			case FieldMargin:
				p.useMargin = !p.useMargin
			}
			return p, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if p.currentField == FieldSubmit {
				return p, p.submit()
			}
			p.nextField()
			return p, nil
		}
	}

	switch p.currentField {
	case FieldTicker:
		p.tickerInput, cmd = p.tickerInput.Update(msg)
	case FieldQuantity:
		p.quantityInput, cmd = p.quantityInput.Update(msg)
	}
	return p, cmd
}

func (p *TradePanel) nextField() {
	p.currentField = (p.currentField + 1) % 5
	p.syncInputFocus()
}

func (p *TradePanel) prevField() {
	p.currentField--
	if p.currentField < 0 {
		p.currentField = FieldSubmit
	}
	p.syncInputFocus()
}

func (p *TradePanel) syncInputFocus() {
	p.tickerInput.Blur()
	p.quantityInput.Blur()
	switch p.currentField {
	case FieldTicker:
		p.tickerInput.Focus()
	case FieldQuantity:
		p.quantityInput.Focus()
	}
}

func (p *TradePanel) submit() tea.Cmd {
	ticker := strings.ToUpper(strings.TrimSpace(p.tickerInput.Value()))
	if ticker == "" {
		p.errMsg = "ticker required"
		return nil
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(p.quantityInput.Value()))
	if err != nil || quantity <= 0 {
		p.errMsg = "quantity must be a positive number"
		return nil
	}
	p.errMsg = ""

	msg := TradeSubmitMsg{
		Ticker:    ticker,
		Quantity:  quantity,
		Sell:      p.sideOptions[p.sideIndex] == "SELL",
		UseMargin: p.useMargin,
	}
	return func() tea.Msg { return msg }
}

// View renders the panel.
func (p *TradePanel) View() string {
	field := func(f TradeField, label, value string) string {
		if p.focused && p.currentField == f {
			return styles.StatusBarKeyStyle.Render("> ") + styles.LabelStyle.Render(label) + " " + value
		}
		return "  " + styles.LabelStyle.Render(label) + " " + value
	}

	side := p.sideOptions[p.sideIndex]
	sideStyled := styles.GainStyle.Render(side)
	if side == "SELL" {
		sideStyled = styles.LossStyle.Render(side)
	}
	marginStr := "off"
	if p.useMargin {
		marginStr = styles.NewsImportantStyle.Render("on")
	}

	lines := []string{
		field(FieldTicker, "Ticker:  ", p.tickerInput.View()),
		field(FieldQuantity, "Quantity:", p.quantityInput.View()),
		field(FieldSide, "Side:    ", sideStyled),
		field(FieldMargin, "Margin:  ", marginStr),
		field(FieldSubmit, "[ Submit ]", ""),
	}
	if p.errMsg != "" {
		lines = append(lines, styles.WarningStyle.Render(p.errMsg))
	}
	content := strings.Join(lines, "\n")

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("🛒 Trade", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content)

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *TradePanel) SetFocus(focused bool) {
	p.focused = focused
	if focused {
		p.syncInputFocus()
	} else {
		p.tickerInput.Blur()
		p.quantityInput.Blur()
	}
}

// SetSize sets the panel dimensions.
func (p *TradePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetTicker prefills the ticker field (from the market selection).
func (p *TradePanel) SetTicker(ticker string) {
	p.tickerInput.SetValue(ticker)
}

// SetError surfaces a rejection reason on the form.
func (p *TradePanel) SetError(msg string) {
	p.errMsg = msg
}

// TradeSubmitMsg is sent when the trade form is submitted.
type TradeSubmitMsg struct {
	Ticker    string
	Quantity  int
	Sell      bool
	UseMargin bool
}
