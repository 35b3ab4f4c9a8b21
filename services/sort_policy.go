package services

import (
	"fmt"
	"strings"

	"salestracker/constants"
	"salestracker/errors"

	"github.com/schollz/closestmatch"
)

// Sort is a validated sort field and direction.
type Sort struct {
	Field     string
	Direction string
}

// DefaultSort is month ascending.
var DefaultSort = Sort{Field: constants.DefaultSortBy, Direction: constants.DefaultSortDirection}

// Desc reports whether the direction is descending.
func (s Sort) Desc() bool {
	return s.Direction == constants.SortDesc
}

var (
	sortFieldsByKey = func() map[string]string {
		m := make(map[string]string, len(constants.SortFields))
		for _, f := range constants.SortFields {
			m[strings.ToLower(f)] = f
		}
		return m
	}()
	sortFieldMatcher = closestmatch.New(constants.SortFields, []int{2, 3})
)

// ParseSort applies the sort policy: empty values take the defaults,
// matching is case-insensitive, anything else fails with InvalidSort.
func ParseSort(sortBy, direction string) (Sort, error) {
	s := DefaultSort

	if sortBy = strings.TrimSpace(sortBy); sortBy != "" {
		field, ok := sortFieldsByKey[strings.ToLower(sortBy)]
		if !ok {
			msg := fmt.Sprintf("Invalid sortBy %q. Allowed values: %s.", sortBy, strings.Join(constants.SortFields, ", "))
			if hint := sortFieldMatcher.Closest(sortBy); hint != "" {
				msg += fmt.Sprintf(" Did you mean %q?", hint)
			}
			return Sort{}, errors.InvalidSort(msg)
		}
		s.Field = field
	}

	if direction = strings.TrimSpace(direction); direction != "" {
		switch strings.ToUpper(direction) {
		case constants.SortAsc:
			s.Direction = constants.SortAsc
		case constants.SortDesc:
			s.Direction = constants.SortDesc
		default:
			return Sort{}, errors.InvalidSort(fmt.Sprintf("Invalid sortDirection %q. Allowed values: ASC, DESC.", direction))
		}
	}

	return s, nil
}
