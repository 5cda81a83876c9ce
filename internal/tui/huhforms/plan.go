package huhforms

import (
	"charm.land/huh/v2"
)

// CreateWindowForm creates a huh form for program increments and
// sprints, which share a name plus start/end date shape.
func CreateWindowForm(kind string, name, startDate, endDate *string, confirm *bool) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Placeholder("Enter "+kind+" name...").
				Value(name),
			huh.NewInput().
				Key("start_date").
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(startDate),
			huh.NewInput().
				Key("end_date").
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(endDate),
			huh.NewConfirm().
				Key("confirm").
				Title("Save this "+kind+"?").
				Affirmative("Yes").
				Negative("No").
				Value(confirm),
		),
	)
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

// CreateTimeOffForm creates a huh form for a single time-off day.
func CreateTimeOffForm(date, category, note *string, confirm *bool) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(date),
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(
					huh.NewOption("holiday", "holiday"),
					huh.NewOption("vacation", "vacation"),
					huh.NewOption("pto", "pto"),
				).
				Value(category),
			huh.NewInput().
				Key("note").
				Title("Note").
				Value(note),
			huh.NewConfirm().
				Key("confirm").
				Title("Save this entry?").
				Affirmative("Yes").
				Negative("No").
				Value(confirm),
		),
	)
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
