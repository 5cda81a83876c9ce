package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Background colors
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation dialogs
	Edit   string `yaml:"edit"`   // Blue - edit dialogs
	Delete string `yaml:"delete"` // Red - delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Timeline colors
	GanttBar     string `yaml:"gantt_bar"`
	GanttMatched string `yaml:"gantt_matched"` // Bars whose task matches the search query
	AxisTick     string `yaml:"axis_tick"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// If preset is specified, loads that preset first, then overrides with
// custom values.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.ColumnBackground, preset.ColumnBackground)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.Delete, preset.Delete)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.TaskBorder, preset.TaskBorder)
	fill(&c.TaskBackground, preset.TaskBackground)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.SelectedBg, preset.SelectedBg)
	fill(&c.GanttBar, preset.GanttBar)
	fill(&c.GanttMatched, preset.GanttMatched)
	fill(&c.AxisTick, preset.AxisTick)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
	fill(&c.StatusBarBg, preset.StatusBarBg)
	fill(&c.StatusBarText, preset.StatusBarText)
}

// MergeFrom overlays the non-empty fields of other onto c.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merged := other
	merged.Preset = c.Preset
	if other.Preset != "" {
		merged.Preset = other.Preset
	}

	take := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	c.Preset = merged.Preset
	take(&c.Accent, other.Accent)
	take(&c.Background, other.Background)
	take(&c.ColumnBackground, other.ColumnBackground)
	take(&c.Create, other.Create)
	take(&c.Edit, other.Edit)
	take(&c.Delete, other.Delete)
	take(&c.ColumnBorder, other.ColumnBorder)
	take(&c.TaskBorder, other.TaskBorder)
	take(&c.TaskBackground, other.TaskBackground)
	take(&c.SelectedBorder, other.SelectedBorder)
	take(&c.SelectedBg, other.SelectedBg)
	take(&c.GanttBar, other.GanttBar)
	take(&c.GanttMatched, other.GanttMatched)
	take(&c.AxisTick, other.AxisTick)
	take(&c.Title, other.Title)
	take(&c.Subtle, other.Subtle)
	take(&c.Normal, other.Normal)
	take(&c.InfoFg, other.InfoFg)
	take(&c.InfoBg, other.InfoBg)
	take(&c.WarningFg, other.WarningFg)
	take(&c.WarningBg, other.WarningBg)
	take(&c.ErrorFg, other.ErrorFg)
	take(&c.ErrorBg, other.ErrorBg)
	take(&c.StatusBarBg, other.StatusBarBg)
	take(&c.StatusBarText, other.StatusBarText)
}
