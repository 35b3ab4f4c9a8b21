package services

import (
	"context"

	"salestracker/constants"
	"salestracker/dto"
	"salestracker/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns maps every allowed sort field to the SQL it orders by. Only
// values from this map reach the ORDER BY clause.
var sortColumns = map[string]string{
	constants.SortByMonth:        "month",
	constants.SortByTotalRevenue: "total_revenue",
	constants.SortBySaleCount:    "sale_count",
	constants.SortByAverage:      "SUM(sales.amount) * 1.0 / COUNT(*)",
}

type monthRow struct {
	Month        string
	TotalRevenue decimal.Decimal
	SaleCount    int64
}

type userMonthRow struct {
	Month        string
	UserID       uint
	UserName     string
	TotalRevenue decimal.Decimal
	SaleCount    int64
}

// AggregationEngine computes monthly revenue aggregates in the store.
type AggregationEngine struct {
	db *gorm.DB
}

func NewAggregationEngine(db *gorm.DB) *AggregationEngine {
	return &AggregationEngine{db: db}
}

// monthExpr is the dialect's "YYYY-MM" expression over sales.date.
func (e *AggregationEngine) monthExpr() string {
	switch e.db.Dialector.Name() {
	case "postgres":
		return "to_char(sales.date, 'YYYY-MM')"
	case "sqlite":
		return "strftime('%Y-%m', sales.date)"
	default:
		return "SUBSTR(CAST(sales.date AS TEXT), 1, 7)"
	}
}

// scoped restricts the sales table to the window and the eligible users.
func (e *AggregationEngine) scoped(ctx context.Context, window MonthWindow, eligible EligibleUsers) *gorm.DB {
	q := e.db.WithContext(ctx).Model(&models.Sale{}).
		Where(e.monthExpr()+" BETWEEN ? AND ?", window.From, window.To)
	if eligible.Restricted {
		q = q.Where("sales.user_id IN ?", eligible.UserIDs)
	}
	return q
}

func orderBy(s Sort, tiebreakers ...string) clause.OrderBy {
	columns := []clause.OrderByColumn{{
		Column: clause.Column{Name: sortColumns[s.Field], Raw: true},
		Desc:   s.Desc(),
	}}
	for _, t := range tiebreakers {
		if t == sortColumns[s.Field] {
			continue
		}
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: t, Raw: true}})
	}
	return clause.OrderBy{Columns: columns}
}

// AggregateByMonth returns one bucket per month of the window holding at
// least one eligible sale, ordered by s.
func (e *AggregationEngine) AggregateByMonth(ctx context.Context, window MonthWindow, eligible EligibleUsers, s Sort) ([]dto.MonthBucket, error) {
	if eligible.Empty() {
		return []dto.MonthBucket{}, nil
	}

	month := e.monthExpr()
	var rows []monthRow
	err := e.scoped(ctx, window, eligible).
		Select(month + " AS month, SUM(sales.amount) AS total_revenue, COUNT(*) AS sale_count").
		Group(month).
		Clauses(orderBy(s, "month")).
		Scan(&rows).Error
	if err != nil {
		return nil, storeError(err)
	}

	buckets := make([]dto.MonthBucket, 0, len(rows))
	for _, r := range rows {
		total := r.TotalRevenue.Round(2)
		buckets = append(buckets, dto.MonthBucket{
			Month:                 r.Month,
			TotalSaleRevenue:      total,
			NumberOfSales:         r.SaleCount,
			AverageRevenueBySales: averageOf(total, r.SaleCount),
		})
	}
	return buckets, nil
}

// AggregateByUserMonth returns one contribution per (month, user) pair,
// grouped by month and ordered within each month by s.
func (e *AggregationEngine) AggregateByUserMonth(ctx context.Context, window MonthWindow, eligible EligibleUsers, s Sort) ([]dto.UserContribution, error) {
	if eligible.Empty() {
		return []dto.UserContribution{}, nil
	}

	month := e.monthExpr()
	var rows []userMonthRow
	q := e.scoped(ctx, window, eligible).
		Select(month + " AS month, sales.user_id AS user_id, users.name AS user_name, " +
			"SUM(sales.amount) AS total_revenue, COUNT(*) AS sale_count").
		Joins("JOIN users ON users.id = sales.user_id").
		Group(month + ", sales.user_id, users.name")

	order := clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "month", Raw: true}}}}
	if s.Field != constants.SortByMonth {
		order.Columns = append(order.Columns, orderBy(s).Columns...)
	}
	order.Columns = append(order.Columns, clause.OrderByColumn{Column: clause.Column{Name: "user_id", Raw: true}})

	if err := q.Clauses(order).Scan(&rows).Error; err != nil {
		return nil, storeError(err)
	}

	contributions := make([]dto.UserContribution, 0, len(rows))
	for _, r := range rows {
		total := r.TotalRevenue.Round(2)
		contributions = append(contributions, dto.UserContribution{
			UserID:                r.UserID,
			UserName:              r.UserName,
			Month:                 r.Month,
			TotalSaleRevenue:      total,
			NumberOfSales:         r.SaleCount,
			AverageRevenueBySales: averageOf(total, r.SaleCount),
		})
	}
	return contributions, nil
}
