package services

import (
	"testing"
	"time"

	"salestracker/constants"
	"salestracker/dto"
	"salestracker/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowQuery() dto.RevenueQuery {
	return dto.RevenueQuery{FromMonth: "01", FromYear: "2023", ToMonth: "03", ToYear: "2023"}
}

func TestNewMonthWindow(t *testing.T) {
	w, err := NewMonthWindow("01", "2023", "03", "2023")
	require.NoError(t, err)
	assert.Equal(t, MonthWindow{From: "2023-01", To: "2023-03"}, w)
	assert.True(t, w.Contains("2023-02"))
	assert.True(t, w.Contains("2023-03"))
	assert.False(t, w.Contains("2023-04"))
	assert.False(t, w.Contains("2022-12"))
}

func TestNewMonthWindow_InvalidRange(t *testing.T) {
	tests := map[string][4]string{
		"missing field":     {"", "2023", "03", "2023"},
		"single digit":      {"1", "2023", "03", "2023"},
		"month thirteen":    {"01", "2023", "13", "2023"},
		"two digit year":    {"01", "23", "03", "2023"},
		"start after end":   {"05", "2023", "03", "2023"},
		"year after year":   {"01", "2024", "12", "2023"},
		"non numeric month": {"ab", "2023", "03", "2023"},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewMonthWindow(in[0], in[1], in[2], in[3])
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRange))
		})
	}
}

func TestMonthWindowOf(t *testing.T) {
	w := MonthWindowOf(time.Date(2023, time.February, 28, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2023-02", w.From)
	assert.Equal(t, "2023-02", w.To)
}

func TestNewRevenueFilter_Normalizes(t *testing.T) {
	q := windowQuery()
	q.GroupID = []string{"3,1"}
	q.GroupIDs = []string{"1", "2"}
	q.Roles = []string{"sales  manager", "Sales Associate", "SALES MANAGER"}
	q.SortBy = "numberOfSales"
	q.SortDirection = "desc"
	q.GetUserInfo = "true"

	f, err := NewRevenueFilter(q)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, f.GroupIDs)
	assert.Equal(t, []string{constants.RoleSalesAssociate, constants.RoleSalesManager}, f.Roles)
	assert.Equal(t, Sort{constants.SortBySaleCount, constants.SortDesc}, f.Sort)
	assert.True(t, f.IncludeUserBreakdown)
}

func TestNewRevenueFilter_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *dto.RevenueQuery)
		code   errors.ErrorCode
	}{
		{"bad window", func(q *dto.RevenueQuery) { q.ToYear = "" }, errors.ErrCodeInvalidRange},
		{"bad sort", func(q *dto.RevenueQuery) { q.SortBy = "profit" }, errors.ErrCodeInvalidSort},
		{"bad group id", func(q *dto.RevenueQuery) { q.GroupIDs = []string{"x"} }, errors.ErrCodeValidation},
		{"zero group id", func(q *dto.RevenueQuery) { q.GroupID = []string{"0"} }, errors.ErrCodeValidation},
		{"unknown role", func(q *dto.RevenueQuery) { q.Role = []string{"Janitor"} }, errors.ErrCodeNotFound},
		{"bad flag", func(q *dto.RevenueQuery) { q.IncludeUserBreakdown = "maybe" }, errors.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := windowQuery()
			tt.mutate(&q)
			_, err := NewRevenueFilter(q)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}

func TestNewRevenueFilter_WindowCheckedFirst(t *testing.T) {
	q := windowQuery()
	q.FromMonth = "00"
	q.SortBy = "profit"
	_, err := NewRevenueFilter(q)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRange))
}

func TestRevenueFilter_CacheKeyIsDeterministic(t *testing.T) {
	a := windowQuery()
	a.GroupIDs = []string{"2", "1"}
	b := windowQuery()
	b.GroupID = []string{"1,2"}

	fa, err := NewRevenueFilter(a)
	require.NoError(t, err)
	fb, err := NewRevenueFilter(b)
	require.NoError(t, err)
	assert.Equal(t, fa.CacheKey(), fb.CacheKey())

	fb.IncludeUserBreakdown = true
	assert.NotEqual(t, fa.CacheKey(), fb.CacheKey())
}
