package huhforms

import (
	"charm.land/huh/v2"
)

// CreateRiskForm creates a huh form for adding/editing a risk
func CreateRiskForm(
	title *string,
	description *string,
	impact *string,
	probability *string,
	mitigation *string,
	owner *string,
	reviewDate *string,
	confirm *bool,
) *huh.Form {
	levelOptions := []huh.Option[string]{
		huh.NewOption("high", "high"),
		huh.NewOption("medium", "medium"),
		huh.NewOption("low", "low"),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Placeholder("Enter risk title...").
				Value(title),
			huh.NewText().
				Key("description").
				Title("Description").
				CharLimit(5000).
				Lines(3).
				Value(description),
			huh.NewSelect[string]().
				Key("impact").
				Title("Impact").
				Options(levelOptions...).
				Value(impact),
			huh.NewSelect[string]().
				Key("probability").
				Title("Probability").
				Options(levelOptions...).
				Value(probability),
			huh.NewText().
				Key("mitigation").
				Title("Mitigation").
				Lines(2).
				Value(mitigation),
			huh.NewInput().
				Key("owner").
				Title("Owner").
				Value(owner),
			huh.NewInput().
				Key("review_date").
				Title("Review date").
				Placeholder("YYYY-MM-DD").
				Value(reviewDate),
			huh.NewConfirm().
				Key("confirm").
				Title("Save this risk?").
				Affirmative("Yes").
				Negative("No").
				Value(confirm),
		),
	)
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
