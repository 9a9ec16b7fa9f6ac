// Package ordering turns a drag-and-drop move inside a visible list into
// ordinal priorities.
//
// Lists are read priority descending, so position i of an n-item list gets
// priority n-i: the top item holds the largest value and position order always
// agrees with priority order.
package ordering

import (
	"github.com/google/uuid"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/pkg/entity"
)

// PriorityAt maps a list position to its priority.
func PriorityAt(length, index int) int {
	return length - index
}

// Move returns a copy of items with the element at from placed at to.
func Move[T any](items []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, errorvalues.ErrInvalidReorder
	}
	moved := make([]T, 0, len(items))
	moved = append(moved, items[:from]...)
	moved = append(moved, items[from+1:]...)
	item := items[from]
	moved = append(moved[:to], append([]T{item}, moved[to:]...)...)
	return moved, nil
}

// Plan is the outcome of a session reorder. Changes is what has to be written
// in one batch, Previous holds the old values of the same rows so a caller can
// roll its local state back if the batch fails.
type Plan struct {
	Order           []*entity.TrainingSession
	DraggedID       uuid.UUID
	DraggedPriority int
	Changes         []entity.PriorityChange
	Previous        []entity.PriorityChange
}

// PlanReorder moves visible[from] to position to. The dragged session's whole
// reorder group, looked up in history, takes the priority of its new position.
// The other visible sessions are renumbered and their groups follow them; the
// dragged group wins when two visible sessions share a group.
func PlanReorder(visible []*entity.TrainingSession, from, to int, history []*entity.TrainingSession, m Matcher) (*Plan, error) {
	order, err := Move(visible, from, to)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = NameMonth{}
	}
	dragged := visible[from]
	n := len(order)
	plan := &Plan{
		DraggedID:       dragged.ID,
		DraggedPriority: PriorityAt(n, to),
	}
	assigned := make(map[uuid.UUID]int)
	assign := func(group []*entity.TrainingSession, priority int) {
		for _, s := range group {
			if _, done := assigned[s.ID]; done {
				continue
			}
			assigned[s.ID] = priority
			plan.Changes = append(plan.Changes, entity.PriorityChange{ID: s.ID, Priority: priority})
			plan.Previous = append(plan.Previous, entity.PriorityChange{ID: s.ID, Priority: s.Priority})
		}
	}
	assign(Group(dragged, history, m), plan.DraggedPriority)
	for i, s := range order {
		if s.ID == dragged.ID {
			continue
		}
		assign(Group(s, history, m), PriorityAt(n, i))
	}
	plan.Order = make([]*entity.TrainingSession, 0, n)
	for _, s := range order {
		cp := *s
		cp.Priority = assigned[s.ID]
		plan.Order = append(plan.Order, &cp)
	}
	return plan, nil
}

// RenumberSlogans moves a slogan and renumbers the whole list.
func RenumberSlogans(slogans []*entity.Slogan, from, to int) ([]*entity.Slogan, []entity.PriorityChange, error) {
	order, err := Move(slogans, from, to)
	if err != nil {
		return nil, nil, err
	}
	changes := make([]entity.PriorityChange, 0, len(order))
	result := make([]*entity.Slogan, 0, len(order))
	for i, s := range order {
		cp := *s
		cp.Priority = PriorityAt(len(order), i)
		result = append(result, &cp)
		changes = append(changes, entity.PriorityChange{ID: s.ID, Priority: cp.Priority})
	}
	return result, changes, nil
}

// NextPriority picks the priority of a newly created session: an existing
// session with the same name lends its value, otherwise the new one goes below
// everything already stored.
func NextPriority(existing []*entity.TrainingSession, name string) int {
	lowest, found := 0, false
	for _, s := range existing {
		if s == nil {
			continue
		}
		if s.Name == name {
			return s.Priority
		}
		if !found || s.Priority < lowest {
			lowest, found = s.Priority, true
		}
	}
	if !found {
		return 0
	}
	return lowest - 1
}
