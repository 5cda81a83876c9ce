// Package board derives the kanban view from a task snapshot. The board is
// ephemeral: it is recomputed on every render and holds no authoritative
// state — task status lives on the record in the store.
package board

import (
	"fmt"

	"github.com/kamholtz/trak/internal/models"
)

// Board partitions a snapshot into the six fixed status buckets. Tasks whose
// status falls outside the closed set land in Unassigned: a data-integrity
// condition the caller surfaces, never a silent drop and never a seventh
// rendered column.
type Board struct {
	Buckets    map[models.Status][]*models.Task
	Unassigned []*models.Task
}

// Partition groups tasks by status, preserving relative input order within
// each bucket. Every known bucket is present in the result even when empty.
func Partition(tasks []*models.Task) *Board {
	b := &Board{
		Buckets: make(map[models.Status][]*models.Task, 6),
	}
	for _, s := range models.Statuses() {
		b.Buckets[s] = []*models.Task{}
	}

	for _, t := range tasks {
		if !t.Status.IsValid() {
			b.Unassigned = append(b.Unassigned, t)
			continue
		}
		b.Buckets[t.Status] = append(b.Buckets[t.Status], t)
	}
	return b
}

// Tasks returns the ordered tasks in one bucket.
func (b *Board) Tasks(s models.Status) []*models.Task {
	return b.Buckets[s]
}

// Count returns the number of tasks in one bucket.
func (b *Board) Count(s models.Status) int {
	return len(b.Buckets[s])
}

// ValidateMove checks a requested status transition. Any bucket-to-bucket
// move is legal; this board is a free reassignment model, not an enforced
// workflow. The only rejected target is one outside the closed set.
func ValidateMove(target models.Status) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownStatus, target)
	}
	return nil
}
