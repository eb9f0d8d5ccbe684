package pricing

import (
	"fmt"

	"marmitaria/internal/models"
)

// CapExceededError signals a toggle rejected by a category cap; the UI
// surfaces the numeric limit to the customer.
type CapExceededError struct {
	Limit int
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("selection limit of %d reached for this category", e.Limit)
}

// InitialSelection returns the ids pre-selected when a menu first loads:
// every available accompaniment. Customers opt out of accompaniments
// rather than in; proteins and extras start unselected.
func InitialSelection(items []models.MenuItem) []string {
	var ids []string
	for _, item := range items {
		if item.Category == models.CategoryAccompaniment && item.Available {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Toggle applies one tap on target to the current selection and returns
// the new selection plus the updated removed-accompaniment name record.
// Inputs are not mutated.
//
// Rules by target category:
//   - protein: single-select; picking a new one drops any other protein,
//     tapping the selected one clears it (zero proteins is legal).
//   - extra: free multi-select.
//   - accompaniment: capped multi-select; deselecting records the name in
//     removed so the kitchen sees what to leave out, re-selecting clears
//     it. A tap past the cap is rejected with CapExceededError.
//   - anything else: generic toggle against the item's own cap.
func Toggle(items []models.MenuItem, current []string, removed []string, target models.MenuItem) ([]string, []string, error) {
	selected := append([]string(nil), current...)
	removedNames := append([]string(nil), removed...)

	switch target.Category {
	case models.CategoryProtein:
		wasSelected := contains(selected, target.ID)
		selected = withoutCategory(items, selected, models.CategoryProtein)
		if !wasSelected {
			selected = append(selected, target.ID)
		}
		return selected, removedNames, nil

	case models.CategoryExtra:
		if contains(selected, target.ID) {
			return remove(selected, target.ID), removedNames, nil
		}
		return append(selected, target.ID), removedNames, nil

	case models.CategoryAccompaniment:
		if contains(selected, target.ID) {
			if !contains(removedNames, target.Name) {
				removedNames = append(removedNames, target.Name)
			}
			return remove(selected, target.ID), removedNames, nil
		}
		if countInCategory(items, selected, target.Category) >= target.SelectionCap() {
			return current, removed, &CapExceededError{Limit: target.SelectionCap()}
		}
		return append(selected, target.ID), remove(removedNames, target.Name), nil

	default:
		if contains(selected, target.ID) {
			return remove(selected, target.ID), removedNames, nil
		}
		if countInCategory(items, selected, target.Category) >= target.SelectionCap() {
			return current, removed, &CapExceededError{Limit: target.SelectionCap()}
		}
		return append(selected, target.ID), removedNames, nil
	}
}

// withoutCategory strips every selected id belonging to the given
// category, keeping only available items in scope as the UI does.
func withoutCategory(items []models.MenuItem, selected []string, cat models.Category) []string {
	inCategory := make(map[string]bool)
	for _, item := range items {
		if item.Category == cat && item.Available {
			inCategory[item.ID] = true
		}
	}
	var out []string
	for _, id := range selected {
		if !inCategory[id] {
			out = append(out, id)
		}
	}
	return out
}

func countInCategory(items []models.MenuItem, selected []string, cat models.Category) int {
	inCategory := make(map[string]bool)
	for _, item := range items {
		if item.Category == cat && item.Available {
			inCategory[item.ID] = true
		}
	}
	n := 0
	for _, id := range selected {
		if inCategory[id] {
			n++
		}
	}
	return n
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func remove(list []string, v string) []string {
	var out []string
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
