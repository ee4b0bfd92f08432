package shared

import (
	"fmt"
	"strings"

	"github.com/runoshun/willflow/internal/domain"
)

// ResolveID finds the item whose id equals ref, or else the single item
// whose id starts with ref. It returns notFound when nothing matches and
// domain.ErrAmbiguousID when several ids share the prefix.
func ResolveID[T any](items []T, ref string, id func(T) string, notFound error) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", notFound
	}

	var matches []string
	for _, item := range items {
		candidate := id(item)
		if candidate == ref {
			return candidate, nil
		}
		if strings.HasPrefix(candidate, ref) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", notFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %s", domain.ErrAmbiguousID, ref, strings.Join(matches, ", "))
	}
}

// ResolveTask resolves a task id or id prefix in tasks.
func ResolveTask(tasks []domain.Task, ref string, notFound error) (string, error) {
	return ResolveID(tasks, ref, func(t domain.Task) string { return t.ID }, notFound)
}

// ResolvePlan resolves a plan id or id prefix.
func ResolvePlan(plans []domain.ScheduledTask, ref string) (string, error) {
	return ResolveID(plans, ref, func(p domain.ScheduledTask) string { return p.ID }, domain.ErrPlanNotFound)
}
