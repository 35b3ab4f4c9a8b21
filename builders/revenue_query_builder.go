package builders

import (
	"fmt"
	"strconv"
	"time"

	"salestracker/dto"
)

// RevenueQueryBuilder assembles a revenue query step by step, the way an
// HTTP client would send it.
type RevenueQueryBuilder struct {
	query dto.RevenueQuery
}

func NewRevenueQueryBuilder() *RevenueQueryBuilder {
	return &RevenueQueryBuilder{}
}

// Between sets the window to the months containing from and to.
func (b *RevenueQueryBuilder) Between(from, to time.Time) *RevenueQueryBuilder {
	b.query.FromMonth = fmt.Sprintf("%02d", int(from.Month()))
	b.query.FromYear = strconv.Itoa(from.Year())
	b.query.ToMonth = fmt.Sprintf("%02d", int(to.Month()))
	b.query.ToYear = strconv.Itoa(to.Year())
	return b
}

// Month sets a single-month window.
func (b *RevenueQueryBuilder) Month(t time.Time) *RevenueQueryBuilder {
	return b.Between(t, t)
}

func (b *RevenueQueryBuilder) WithGroups(ids ...uint) *RevenueQueryBuilder {
	for _, id := range ids {
		b.query.GroupIDs = append(b.query.GroupIDs, strconv.FormatUint(uint64(id), 10))
	}
	return b
}

func (b *RevenueQueryBuilder) WithRoles(roles ...string) *RevenueQueryBuilder {
	b.query.Roles = append(b.query.Roles, roles...)
	return b
}

func (b *RevenueQueryBuilder) SortBy(field, direction string) *RevenueQueryBuilder {
	b.query.SortBy = field
	b.query.SortDirection = direction
	return b
}

func (b *RevenueQueryBuilder) WithUserBreakdown() *RevenueQueryBuilder {
	b.query.IncludeUserBreakdown = "true"
	return b
}

func (b *RevenueQueryBuilder) Build() dto.RevenueQuery {
	return b.query
}
