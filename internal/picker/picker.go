// Package picker implements the interactive timezone selector shown when
// the tz command runs on a terminal with no zones given and none configured.
package picker

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/rivo/tview"

	"github.com/hlop3z/timein/internal/tzdata"
	"github.com/hlop3z/timein/internal/tzerr"
)

// Item is a selectable selector entry.
type Item struct {
	Display string // text shown in the list
	Zone    string // identifier the entry resolves to
}

// Items returns the full selectable set: every known zone identifier plus
// one entry per country, labelled with the country and its capital.
func Items() []Item {
	names := tzdata.Names()
	countries := tzdata.Countries()

	items := make([]Item, 0, len(names)+len(countries))
	for _, name := range names {
		items = append(items, Item{Display: name, Zone: name})
	}
	for _, c := range countries {
		items = append(items, Item{
			Display: fmt.Sprintf("%s (%s)", c.Name, c.Capital),
			Zone:    c.Zone,
		})
	}
	return items
}

// matchesFuzzy reports whether every rune of pattern appears in s in order,
// ignoring case.
func matchesFuzzy(s, pattern string) bool {
	pat := []rune(strings.ToLower(pattern))
	if len(pat) == 0 {
		return true
	}

	i := 0
	for _, r := range strings.ToLower(s) {
		if r == pat[i] {
			i++
			if i == len(pat) {
				return true
			}
		}
	}
	return false
}

// filterItems returns the items whose display text fuzzy-matches query,
// preserving order.
func filterItems(items []Item, query string) []Item {
	if strings.TrimSpace(query) == "" {
		return items
	}

	var matched []Item
	for _, item := range items {
		if matchesFuzzy(item.Display, query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// CanPrompt reports whether an interactive selector can run: both stdin and
// stdout must be terminals.
func CanPrompt() bool {
	stdin := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return stdin && stdout
}

// Pick runs the interactive selector and returns the chosen zone identifier.
// Cancelling with Escape or Ctrl-C returns an ErrNoSelection error.
func Pick() (string, error) {
	if !CanPrompt() {
		return "", tzerr.New(tzerr.ErrNoTerminal, "no timezone given and standard input is not a terminal").
			WithHelp("pass a timezone argument, e.g. 'timein tz US/Pacific'")
	}
	return run(Items())
}

func run(items []Item) (string, error) {
	app := tview.NewApplication()

	input := tview.NewInputField().
		SetLabel("> ").
		SetLabelColor(Theme.Primary).
		SetFieldBackgroundColor(Theme.Background).
		SetFieldTextColor(Theme.Text)

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetSelectedBackgroundColor(Theme.Selection).
		SetSelectedTextColor(Theme.Text).
		SetMainTextColor(Theme.Text)
	list.SetBackgroundColor(Theme.Background).
		SetBorder(true).
		SetBorderColor(Theme.Border).
		SetTitle(" Select a timezone ").
		SetTitleColor(Theme.Header)

	visible := items
	reload := func(query string) {
		list.Clear()
		visible = filterItems(items, query)
		for _, item := range visible {
			list.AddItem(item.Display, "", 0, nil)
		}
	}
	reload("")

	var selected string

	choose := func() {
		idx := list.GetCurrentItem()
		if idx >= 0 && idx < len(visible) {
			selected = visible[idx].Zone
			app.Stop()
		}
	}

	input.SetChangedFunc(func(text string) {
		reload(text)
	})

	// The input field keeps focus; Enter selects, arrows move the list.
	input.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			choose()
			return nil
		case tcell.KeyDown:
			if n := list.GetItemCount(); n > 0 {
				list.SetCurrentItem((list.GetCurrentItem() + 1) % n)
			}
			return nil
		case tcell.KeyUp:
			if n := list.GetItemCount(); n > 0 {
				list.SetCurrentItem((list.GetCurrentItem() - 1 + n) % n)
			}
			return nil
		}
		return event
	})

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
			selected = ""
			app.Stop()
			return nil
		}
		return event
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(input, 1, 0, true).
		AddItem(list, 0, 1, false)
	layout.SetBackgroundColor(Theme.Background)

	if err := app.SetRoot(layout, true).EnableMouse(true).Run(); err != nil {
		return "", tzerr.Wrap(tzerr.ErrNoTerminal, err, "failed to start timezone selector")
	}

	if selected == "" {
		return "", tzerr.New(tzerr.ErrNoSelection, "no timezone selected")
	}
	return selected, nil
}
