// Package settings defines application-level configuration data.
package settings

// KeyMapConfig defines the configuration for keybindings. Multiple keys are
// separated by commas.
type KeyMapConfig struct {
	Up          string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down        string `yaml:"down" kong:"help='Down key',default='j,down'"`
	UpPage      string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u,pgup'"`
	DownPage    string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d,pgdn'"`
	Top         string `yaml:"top" kong:"help='Top key',default='g,home'"`
	Bottom      string `yaml:"bottom" kong:"help='Bottom key',default='G,end'"`
	Open        string `yaml:"open" kong:"help='Open key',default='enter'"`
	OpenLink    string `yaml:"open_link" kong:"help='Open link in browser key',default='o'"`
	ToggleLeft  string `yaml:"toggle_left" kong:"help='Toggle left sidebar key',default='['"`
	ToggleRight string `yaml:"toggle_right" kong:"help='Toggle right sidebar key',default=']'"`
	Reload      string `yaml:"reload" kong:"help='Reload source key',default='r'"`
	Quit        string `yaml:"quit" kong:"help='Quit key',default='q,ctrl+c'"`
}

// LayoutConfig defines pane titles.
type LayoutConfig struct {
	LeftTitle  string `yaml:"left_title" kong:"help='Left sidebar title',default='Contents'"`
	RightTitle string `yaml:"right_title" kong:"help='Right sidebar title',default='Details'"`
	MainTitle  string `yaml:"main_title" kong:"help='Main title when nothing is open',default='flank'"`
}

// Settings represents the application configuration.
type Settings struct {
	Theme          string       `yaml:"theme" kong:"help='Theme name',default='joy'"`
	ThemesDir      string       `yaml:"themes_dir" kong:"help='Directory of custom YAML themes'"`
	Source         string       `yaml:"source" kong:"help='Feed URL, feed file or directory to display'"`
	TimeoutSeconds int          `yaml:"timeout_seconds" kong:"help='Source load timeout in seconds',default='10'"`
	Watch          bool         `yaml:"watch" kong:"help='Reload when a local source changes',default='true'"`
	StateFile      string       `yaml:"state_file" kong:"help='Panel state database path'"`
	Profile        string       `yaml:"profile" kong:"help='Panel state profile',default='default'"`
	RememberPanels bool         `yaml:"remember_panels" kong:"help='Restore sidebars on start',default='true'"`
	Layout         LayoutConfig `yaml:"layout" kong:"embed,prefix='layout.'"`
	KeyMap         KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
}
