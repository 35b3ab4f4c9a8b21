package services

import (
	"fmt"

	"salestracker/dto"
	"salestracker/errors"

	"github.com/shopspring/decimal"
)

// averageOf divides at full precision and rounds once, half away from zero.
func averageOf(total decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(count)).Round(2)
}

// MergeBreakdown appends each contribution to the bucket of its month. Bucket
// order and contribution order are both preserved. A contribution without a
// bucket means the two aggregations disagreed and is reported as Internal.
func MergeBreakdown(buckets []dto.MonthBucket, contributions []dto.UserContribution) ([]dto.MonthBucket, error) {
	index := make(map[string]int, len(buckets))
	for i, b := range buckets {
		index[b.Month] = i
	}

	for _, c := range contributions {
		i, ok := index[c.Month]
		if !ok {
			return nil, errors.Internal(
				fmt.Sprintf("Revenue breakdown for user %d has no bucket for %s", c.UserID, c.Month),
				errors.ErrInconsistentBreakdown)
		}
		buckets[i].Users = append(buckets[i].Users, c)
	}
	return buckets, nil
}

// Summarize totals a sequence of buckets over the window they came from.
func Summarize(window MonthWindow, buckets []dto.MonthBucket) dto.RevenueSummary {
	summary := dto.RevenueSummary{
		FromMonth:        window.From,
		ToMonth:          window.To,
		Months:           len(buckets),
		TotalSaleRevenue: decimal.Zero,
	}
	for _, b := range buckets {
		summary.TotalSaleRevenue = summary.TotalSaleRevenue.Add(b.TotalSaleRevenue)
		summary.NumberOfSales += b.NumberOfSales
	}
	summary.AverageRevenueBySales = averageOf(summary.TotalSaleRevenue, summary.NumberOfSales)
	return summary
}
