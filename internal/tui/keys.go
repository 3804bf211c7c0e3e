package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the inspector keybindings.
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	PrevBeat key.Binding
	NextBeat key.Binding
	PrevSeg  key.Binding
	NextSeg  key.Binding
	Home     key.Binding
	End      key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "back 0.1s")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "forward 0.1s")),
		PrevBeat: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous beat")),
		NextBeat: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next beat")),
		PrevSeg:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous segment")),
		NextSeg:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next segment")),
		Home:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "track start")),
		End:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "track end")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp satisfies help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.NextBeat, k.NextSeg, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Home, k.End},
		{k.PrevBeat, k.NextBeat, k.PrevSeg, k.NextSeg},
		{k.Quit},
	}
}
