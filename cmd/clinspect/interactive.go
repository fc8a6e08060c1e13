package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gpubind/cl-core/image"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	unknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseState int

const (
	stateBrowse browseState = iota
	stateDecode
)

type inspectModel struct {
	err      error
	input    textinput.Model
	decoded  string
	orderIdx int
	typeIdx  int
	onOrders bool
	state    browseState
}

func newInspectModel() *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "0x10B5,0x10D2"
	ti.Prompt = "raw pair: "
	ti.Width = 30
	return &inspectModel{
		onOrders: true,
		input:    ti,
	}
}

func runInteractive() error {
	_, err := tea.NewProgram(newInspectModel()).Run()
	return err
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateBrowse {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse {
				if m.onOrders && m.orderIdx > 0 {
					m.orderIdx--
				} else if !m.onOrders && m.typeIdx > 0 {
					m.typeIdx--
				}
			}

		case "down", "j":
			if m.state == stateBrowse {
				if m.onOrders && m.orderIdx < len(inspectOrders)-1 {
					m.orderIdx++
				} else if !m.onOrders && m.typeIdx < len(inspectDataTypes)-1 {
					m.typeIdx++
				}
			}

		case "tab", "left", "right", "h", "l":
			if m.state == stateBrowse {
				m.onOrders = !m.onOrders
			}

		case "d":
			if m.state == stateBrowse {
				m.state = stateDecode
				m.decoded = ""
				m.err = nil
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}

		case "enter":
			if m.state == stateDecode {
				m.decodePair(m.input.Value())
			}

		case "esc":
			if m.state == stateDecode {
				m.state = stateBrowse
				m.input.Blur()
				m.decoded = ""
				m.err = nil
			}
		}
	}

	if m.state == stateDecode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) decodePair(value string) {
	m.decoded = ""
	m.err = nil

	orderRaw, typeRaw, err := parseRawPair(value)
	if err != nil {
		m.err = err
		return
	}
	order, err := image.ChannelOrderFromRaw(orderRaw)
	if err != nil {
		m.err = err
		return
	}
	dt, err := image.ChannelDataTypeFromRaw(typeRaw)
	if err != nil {
		m.err = err
		return
	}

	f := image.NewFormat(order, dt)
	if size := f.PixelBytes(); size > 0 {
		m.decoded = fmt.Sprintf("%s  (%d bytes/pixel)", f, size)
	} else {
		m.decoded = fmt.Sprintf("%s  (pixel size unknown)", f)
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CL Format Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		m.viewBrowse(&b)
	case stateDecode:
		m.viewDecode(&b)
	}

	return b.String()
}

func (m *inspectModel) viewBrowse(b *strings.Builder) {
	order := inspectOrders[m.orderIdx]
	dt := inspectDataTypes[m.typeIdx]
	f := image.NewFormat(order, dt)

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-22s %s", "CHANNEL ORDER", "CHANNEL DATA TYPE")))
	b.WriteString("\n")

	rows := len(inspectOrders)
	if len(inspectDataTypes) > rows {
		rows = len(inspectDataTypes)
	}
	for i := 0; i < rows; i++ {
		left := ""
		if i < len(inspectOrders) {
			left = fmt.Sprintf("%-10s 0x%04X", inspectOrders[i], uint32(inspectOrders[i]))
			if i == m.orderIdx {
				cursor := "  "
				if m.onOrders {
					cursor = "> "
				}
				left = selectedStyle.Render(cursor + left)
			} else {
				left = "  " + left
			}
		} else {
			left = strings.Repeat(" ", 20)
		}

		right := ""
		if i < len(inspectDataTypes) {
			right = fmt.Sprintf("%-15s 0x%04X", inspectDataTypes[i], uint32(inspectDataTypes[i]))
			if i == m.typeIdx {
				cursor := "  "
				if !m.onOrders {
					cursor = "> "
				}
				right = selectedStyle.Render(cursor + right)
			} else {
				right = "  " + right
			}
		}

		b.WriteString(left)
		b.WriteString("   ")
		b.WriteString(right)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	raw := f.ToRaw()
	b.WriteString(fmt.Sprintf("Selected: %s  raw (0x%04X, 0x%04X)  ", f, raw.ChannelOrder, raw.ChannelDataType))
	if size := f.PixelBytes(); size > 0 {
		b.WriteString(sizeStyle.Render(fmt.Sprintf("%d bytes/pixel", size)))
	} else {
		b.WriteString(unknownStyle.Render("pixel size unknown"))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/↓ move • tab switch column • d decode raw pair • q quit"))
}

func (m *inspectModel) viewDecode(b *strings.Builder) {
	b.WriteString("Decode a raw format pair (order,data_type):\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else if m.decoded != "" {
		b.WriteString(sizeStyle.Render(m.decoded))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("enter decode • esc back"))
}
