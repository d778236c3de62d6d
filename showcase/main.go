// Command showcase is an interactive terminal demo of selection anchoring.
//
// It binds a keyed model over a mutable country list and lets you edit the
// list while watching the selection cursor follow its item: insert before
// the selection, delete the selection, move it around, or reverse the
// whole list with a reset.
package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/listmodel/pkg/listmodel"
)

//go:embed items.yaml
var itemsYAML []byte

type country struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type itemsFile struct {
	Countries []country `yaml:"countries"`
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type app struct {
	items  *listmodel.Slice[country]
	model  *listmodel.Bound[country]
	log    []string
	nextID int
}

func newApp() (*app, error) {
	var file itemsFile
	if err := yaml.Unmarshal(itemsYAML, &file); err != nil {
		return nil, fmt.Errorf("showcase: decode items: %w", err)
	}

	items := listmodel.NewSlice(file.Countries...)
	model, err := listmodel.NewKeyedBound[country](items, func(c country) any {
		return c.Code
	})
	if err != nil {
		return nil, err
	}
	model.Text = func(c country) string {
		return fmt.Sprintf("%s  (%s)", c.Name, c.Code)
	}
	model.SetSelectedIndex(0)

	a := &app{items: items, model: model, nextID: 1}
	model.AddChangeListener(func(c listmodel.Change) {
		a.logf("changed: %s", c)
	})
	model.AddSelectionListener(func(index int) {
		a.logf("selection: %d", index)
	})
	return a, nil
}

func (a *app) logf(format string, args ...any) {
	a.log = append(a.log, fmt.Sprintf(format, args...))
	if len(a.log) > 5 {
		a.log = a.log[len(a.log)-5:]
	}
}

func (a *app) Init() tea.Cmd {
	return nil
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	sel := a.model.SelectedIndex()
	switch key.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if sel > 0 {
			a.model.SetSelectedIndex(sel - 1)
		}
	case "down", "j":
		if sel < a.model.Len()-1 {
			a.model.SetSelectedIndex(sel + 1)
		}
	case "a":
		at := max(sel, 0)
		a.items.Insert(at, country{
			Code: fmt.Sprintf("x%d", a.nextID),
			Name: fmt.Sprintf("New Country %d", a.nextID),
		})
		a.nextID++
	case "d":
		if sel >= 0 {
			a.items.RemoveAt(sel)
		}
	case "m":
		if sel >= 0 && sel < a.items.Len()-1 {
			a.items.Move(sel, sel+1)
		}
	case "u":
		if sel > 0 {
			a.items.Move(sel, sel-1)
		}
	case "r":
		reversed := make([]country, 0, a.items.Len())
		for i := a.items.Len() - 1; i >= 0; i-- {
			reversed = append(reversed, a.items.At(i))
		}
		a.items.Reset(reversed)
	}
	return a, nil
}

func (a *app) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("listmodel showcase"))
	b.WriteString("\n\n")

	for i := 0; i < a.model.Len(); i++ {
		line := a.model.TextAt(i)
		if i == a.model.SelectedIndex() {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if a.model.Len() == 0 {
		b.WriteString(dimStyle.Render("  (no items)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, entry := range a.log {
		b.WriteString(dimStyle.Render(entry))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k select · a add · d delete · m/u move · r reverse · q quit"))
	b.WriteString("\n")
	return b.String()
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(a).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
