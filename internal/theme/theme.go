package theme

import "fmt"

// Theme is the site color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the fixed preference key the theme is persisted under.
const StorageKey = "theme"

// Parse validates a theme name.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("invalid theme %q: must be light or dark", s)
	}
}

// Toggle returns the other theme. Anything that is not dark becomes dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IconState says which toggle icon is shown: the sun while dark (to switch
// to light), the moon while light.
type IconState struct {
	Sun  bool `json:"sun"`
	Moon bool `json:"moon"`
}

// Icons returns the icon visibility for t.
func Icons(t Theme) IconState {
	if t == Dark {
		return IconState{Sun: true}
	}
	return IconState{Moon: true}
}
