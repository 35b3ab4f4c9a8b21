package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"salestracker/constants"
	"salestracker/dto"
	"salestracker/errors"
	"salestracker/validator"

	"github.com/samber/lo"
)

// MonthWindow is an inclusive range of "YYYY-MM" keys. Zero padding makes
// lexicographic order match calendar order.
type MonthWindow struct {
	From string
	To   string
}

// NewMonthWindow validates the four window fields and builds the window.
func NewMonthWindow(fromMonth, fromYear, toMonth, toYear string) (MonthWindow, error) {
	fromMonth, fromYear = strings.TrimSpace(fromMonth), strings.TrimSpace(fromYear)
	toMonth, toYear = strings.TrimSpace(toMonth), strings.TrimSpace(toYear)

	if err := validator.ValidateMonth("fromMonth", fromMonth); err != nil {
		return MonthWindow{}, err
	}
	if err := validator.ValidateYear("fromYear", fromYear); err != nil {
		return MonthWindow{}, err
	}
	if err := validator.ValidateMonth("toMonth", toMonth); err != nil {
		return MonthWindow{}, err
	}
	if err := validator.ValidateYear("toYear", toYear); err != nil {
		return MonthWindow{}, err
	}

	w := MonthWindow{From: fromYear + "-" + fromMonth, To: toYear + "-" + toMonth}
	if w.From > w.To {
		return MonthWindow{}, errors.InvalidRange(fmt.Sprintf("The window start %s is after its end %s", w.From, w.To))
	}
	return w, nil
}

// MonthWindowOf returns the single-month window containing t.
func MonthWindowOf(t time.Time) MonthWindow {
	key := t.Format(constants.MonthKeyLayout)
	return MonthWindow{From: key, To: key}
}

// Contains reports whether the month key lies inside the window.
func (w MonthWindow) Contains(month string) bool {
	return month >= w.From && month <= w.To
}

func (w MonthWindow) String() string {
	return w.From + ".." + w.To
}

// RevenueFilter is the normalized form of an aggregation request.
type RevenueFilter struct {
	Window               MonthWindow
	GroupIDs             []uint
	Roles                []string
	Sort                 Sort
	IncludeUserBreakdown bool
}

// NewRevenueFilter validates a raw query. Every check here runs before any
// store access.
func NewRevenueFilter(q dto.RevenueQuery) (RevenueFilter, error) {
	window, err := NewMonthWindow(q.FromMonth, q.FromYear, q.ToMonth, q.ToYear)
	if err != nil {
		return RevenueFilter{}, err
	}

	s, err := ParseSort(q.SortBy, q.SortDirection)
	if err != nil {
		return RevenueFilter{}, err
	}

	groupIDs, err := parseGroupIDs(append(splitList(q.GroupID), splitList(q.GroupIDs)...))
	if err != nil {
		return RevenueFilter{}, err
	}

	roles, err := parseRoles(append(splitList(q.Role), splitList(q.Roles)...))
	if err != nil {
		return RevenueFilter{}, err
	}

	breakdown, err := parseFlag("getUserInfo", q.GetUserInfo)
	if err != nil {
		return RevenueFilter{}, err
	}
	includeBreakdown, err := parseFlag("includeUserBreakdown", q.IncludeUserBreakdown)
	if err != nil {
		return RevenueFilter{}, err
	}

	return RevenueFilter{
		Window:               window,
		GroupIDs:             groupIDs,
		Roles:                roles,
		Sort:                 s,
		IncludeUserBreakdown: breakdown || includeBreakdown,
	}, nil
}

// NewUserRevenueWindow validates the window and sort of a per-user query.
func NewUserRevenueWindow(q dto.UserRevenueQuery) (MonthWindow, Sort, error) {
	window, err := NewMonthWindow(q.FromMonth, q.FromYear, q.ToMonth, q.ToYear)
	if err != nil {
		return MonthWindow{}, Sort{}, err
	}
	s, err := ParseSort(q.SortBy, q.SortDirection)
	if err != nil {
		return MonthWindow{}, Sort{}, err
	}
	return window, s, nil
}

// CacheKey is a deterministic encoding of the filter.
func (f RevenueFilter) CacheKey() string {
	groups := lo.Map(f.GroupIDs, func(id uint, _ int) string { return strconv.FormatUint(uint64(id), 10) })
	return fmt.Sprintf("%s|g=%s|r=%s|%s|%s|u=%t",
		f.Window, strings.Join(groups, ","), strings.Join(f.Roles, ","),
		f.Sort.Field, f.Sort.Direction, f.IncludeUserBreakdown)
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseGroupIDs(raw []string) ([]uint, error) {
	ids := make([]uint, 0, len(raw))
	for _, r := range raw {
		id, err := strconv.ParseUint(r, 10, 32)
		if err != nil || id == 0 {
			return nil, errors.Validation(fmt.Sprintf("groupId %q must be a positive integer", r))
		}
		ids = append(ids, uint(id))
	}
	ids = lo.Uniq(ids)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// parseRoles canonicalizes roles. A role outside the closed set is rejected
// with NotFound(role), the same fail-fast policy ParseSort applies.
func parseRoles(raw []string) ([]string, error) {
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		role, ok := validator.CanonicalRole(r)
		if !ok {
			return nil, errors.NotFound(errors.ResourceRole, validator.UnknownRoleMessage(r))
		}
		roles = append(roles, role)
	}
	roles = lo.Uniq(roles)
	sort.Strings(roles)
	return roles, nil
}

func parseFlag(name, raw string) (bool, error) {
	if raw = strings.TrimSpace(raw); raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Validation(fmt.Sprintf("%s must be true or false", name))
	}
	return v, nil
}
