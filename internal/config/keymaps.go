package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Records
	AddRecord    string `yaml:"add_record"`
	EditRecord   string `yaml:"edit_record"`
	DeleteRecord string `yaml:"delete_record"`
	ViewRecord   string `yaml:"view_record"`

	// Kanban moves
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Views
	NextView     string `yaml:"next_view"`
	PrevView     string `yaml:"prev_view"`
	ToggleLayout string `yaml:"toggle_layout"`

	// Timeline
	ZoomIn  string `yaml:"zoom_in"`
	ZoomOut string `yaml:"zoom_out"`

	// Search
	StartSearch string `yaml:"start_search"`
	ClearSearch string `yaml:"clear_search"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevRow    string `yaml:"prev_row"`
	NextRow    string `yaml:"next_row"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddRecord:    "a",
		EditRecord:   "e",
		DeleteRecord: "d",
		ViewRecord:   " ",

		MoveTaskLeft:  "H",
		MoveTaskRight: "L",

		SaveForm: "ctrl+s",

		NextView:     "tab",
		PrevView:     "shift+tab",
		ToggleLayout: "v",

		ZoomIn:  "+",
		ZoomOut: "-",

		StartSearch: "/",
		ClearSearch: "esc",

		PrevColumn: "h",
		NextColumn: "l",
		PrevRow:    "k",
		NextRow:    "j",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}

	fill(&k.AddRecord, defaults.AddRecord)
	fill(&k.EditRecord, defaults.EditRecord)
	fill(&k.DeleteRecord, defaults.DeleteRecord)
	fill(&k.ViewRecord, defaults.ViewRecord)
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.NextView, defaults.NextView)
	fill(&k.PrevView, defaults.PrevView)
	fill(&k.ToggleLayout, defaults.ToggleLayout)
	fill(&k.ZoomIn, defaults.ZoomIn)
	fill(&k.ZoomOut, defaults.ZoomOut)
	fill(&k.StartSearch, defaults.StartSearch)
	fill(&k.ClearSearch, defaults.ClearSearch)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevRow, defaults.PrevRow)
	fill(&k.NextRow, defaults.NextRow)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
