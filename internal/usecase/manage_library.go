package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/usecase/shared"
)

// AddLibraryItemInput contains the parameters for adding a template or backlog item.
type AddLibraryItemInput struct {
	Kind domain.LibraryKind
	Text string // Quick-add text, e.g. "冥想 15"
}

// AddLibraryItemOutput contains the created item.
type AddLibraryItemOutput struct {
	Item *domain.Task // nil when the input had no title
}

// AddLibraryItem adds an entry to the template or backlog list.
type AddLibraryItem struct {
	ports StatePorts
	parse domain.QuickAdd
}

// NewAddLibraryItem creates a new AddLibraryItem use case.
func NewAddLibraryItem(ports StatePorts, defaultCost int) *AddLibraryItem {
	return &AddLibraryItem{ports: ports, parse: domain.LibraryQuickAdd(defaultCost)}
}

// Execute parses the text and appends the item.
func (uc *AddLibraryItem) Execute(_ context.Context, in AddLibraryItemInput) (*AddLibraryItemOutput, error) {
	state, applied, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		return domain.AddLibraryItem(s, uc.ports.IDs, in.Kind, uc.parse, in.Text)
	})
	if err != nil {
		return nil, err
	}

	out := &AddLibraryItemOutput{}
	if !applied.IsEmpty() {
		items := state.Items(in.Kind)
		item := items[len(items)-1]
		out.Item = &item
		uc.ports.logger().Info("library", fmt.Sprintf("added %s %q (%d)", in.Kind, item.Title, item.Cost))
	}
	return out, nil
}

// RemoveLibraryItemInput contains the parameters for removing a library entry.
type RemoveLibraryItemInput struct {
	Kind    domain.LibraryKind
	ItemRef string // Item id or unique id prefix
}

// RemoveLibraryItemOutput contains the removed item.
type RemoveLibraryItemOutput struct {
	Item domain.Task
}

// RemoveLibraryItem deletes a template or backlog entry.
type RemoveLibraryItem struct {
	ports StatePorts
}

// NewRemoveLibraryItem creates a new RemoveLibraryItem use case.
func NewRemoveLibraryItem(ports StatePorts) *RemoveLibraryItem {
	return &RemoveLibraryItem{ports: ports}
}

// Execute removes the item.
func (uc *RemoveLibraryItem) Execute(_ context.Context, in RemoveLibraryItemInput) (*RemoveLibraryItemOutput, error) {
	if !in.Kind.IsValid() {
		return nil, domain.ErrUnknownLibrary
	}
	var removed domain.Task
	_, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		items := s.Items(in.Kind)
		id, err := shared.ResolveTask(items, in.ItemRef, domain.ErrLibraryNotFound)
		if err != nil {
			return domain.StatePatch{}, err
		}
		removed = items[indexOf(items, id)]
		return domain.RemoveLibraryItem(s, in.Kind, id)
	})
	if err != nil {
		return nil, err
	}

	uc.ports.logger().Info("library", fmt.Sprintf("removed %s %q", in.Kind, removed.Title))
	return &RemoveLibraryItemOutput{Item: removed}, nil
}

// UseLibraryItemInput contains the parameters for moving a library entry into today.
type UseLibraryItemInput struct {
	Kind    domain.LibraryKind
	ItemRef string // Item id or unique id prefix
}

// UseLibraryItemOutput contains the task added to today.
type UseLibraryItemOutput struct {
	Task   domain.Task
	Budget domain.Budget
}

// UseLibraryItem copies a template into today, or promotes a backlog item.
type UseLibraryItem struct {
	ports StatePorts
}

// NewUseLibraryItem creates a new UseLibraryItem use case.
func NewUseLibraryItem(ports StatePorts) *UseLibraryItem {
	return &UseLibraryItem{ports: ports}
}

// Execute adds the item to today. Templates stay in the library; backlog
// items leave the backlog.
func (uc *UseLibraryItem) Execute(_ context.Context, in UseLibraryItemInput) (*UseLibraryItemOutput, error) {
	if !in.Kind.IsValid() {
		return nil, domain.ErrUnknownLibrary
	}
	state, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		id, err := shared.ResolveTask(s.Items(in.Kind), in.ItemRef, domain.ErrLibraryNotFound)
		if err != nil {
			return domain.StatePatch{}, err
		}
		if in.Kind == domain.LibraryTemplates {
			return domain.CopyFromLibrary(s, uc.ports.IDs, id)
		}
		return domain.PromoteBacklog(s, uc.ports.IDs, id)
	})
	if err != nil {
		return nil, err
	}

	task := state.TodayTasks[len(state.TodayTasks)-1]
	uc.ports.logger().Info("library", fmt.Sprintf("%s %q moved to today", in.Kind, task.Title))
	return &UseLibraryItemOutput{Task: task, Budget: state.Budget()}, nil
}
