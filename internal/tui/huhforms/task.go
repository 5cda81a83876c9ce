package huhforms

import (
	"charm.land/huh/v2"

	"github.com/kamholtz/trak/internal/models"
)

// CreateTaskForm creates a huh form for adding/editing a task
// The form uses pointers to update values in place.
func CreateTaskForm(
	title *string,
	description *string,
	status *string,
	priority *string,
	dueDate *string,
	startDate *string,
	endDate *string,
	assignee *string,
	confirm *bool,
) *huh.Form {
	statusOptions := make([]huh.Option[string], 0, len(models.Statuses()))
	for _, s := range models.Statuses() {
		statusOptions = append(statusOptions, huh.NewOption(string(s), string(s)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Placeholder("Enter task title...").
				Value(title),
			huh.NewText().
				Key("description").
				Title("Description").
				Placeholder("Enter task description...").
				CharLimit(5000).
				Lines(4).
				Value(description),
			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(statusOptions...).
				Value(status),
			huh.NewSelect[string]().
				Key("priority").
				Title("Priority").
				Options(
					huh.NewOption("critical", models.PriorityCritical),
					huh.NewOption("high", models.PriorityHigh),
					huh.NewOption("medium", models.PriorityMedium),
					huh.NewOption("low", models.PriorityLow),
					huh.NewOption("trivial", models.PriorityTrivial),
				).
				Value(priority),
			huh.NewInput().
				Key("due_date").
				Title("Due date").
				Placeholder("YYYY-MM-DD").
				Value(dueDate),
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
			huh.NewInput().
				Key("assignee").
				Title("Assignee").
				Value(assignee),
			huh.NewConfirm().
				Key("confirm").
				Title("Save this task?").
				Affirmative("Yes").
				Negative("No").
				Value(confirm),
		),
	)
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}
