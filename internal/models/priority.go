package models

// Priority labels are free-form text on the task record, but the dashboard
// orders open issues by severity. Unknown labels sort after known ones.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
	PriorityTrivial  = "trivial"
)

var priorityRanks = map[string]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
	PriorityTrivial:  4,
}

// PriorityRank returns the sort rank of a priority label, most severe first.
func PriorityRank(priority string) int {
	if rank, ok := priorityRanks[priority]; ok {
		return rank
	}
	return len(priorityRanks)
}
