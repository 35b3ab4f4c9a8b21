package dto

import "github.com/shopspring/decimal"

// RevenueQuery carries the raw aggregation query parameters as received on
// the wire. Parsing and validation happen in services.NewRevenueFilter.
type RevenueQuery struct {
	FromMonth string `form:"fromMonth" json:"fromMonth"`
	FromYear  string `form:"fromYear" json:"fromYear"`
	ToMonth   string `form:"toMonth" json:"toMonth"`
	ToYear    string `form:"toYear" json:"toYear"`

	// Both singular and plural names are accepted; values may repeat or be
	// comma separated.
	GroupID  []string `form:"groupId" json:"groupId,omitempty"`
	GroupIDs []string `form:"groupIds" json:"groupIds,omitempty"`
	Role     []string `form:"role" json:"role,omitempty"`
	Roles    []string `form:"roles" json:"roles,omitempty"`

	SortBy        string `form:"sortBy" json:"sortBy,omitempty"`
	SortDirection string `form:"sortDirection" json:"sortDirection,omitempty"`

	GetUserInfo          string `form:"getUserInfo" json:"getUserInfo,omitempty"`
	IncludeUserBreakdown string `form:"includeUserBreakdown" json:"includeUserBreakdown,omitempty"`
}

// UserRevenueQuery is the window and sort of a single user's revenue.
type UserRevenueQuery struct {
	FromMonth     string `form:"fromMonth" json:"fromMonth"`
	FromYear      string `form:"fromYear" json:"fromYear"`
	ToMonth       string `form:"toMonth" json:"toMonth"`
	ToYear        string `form:"toYear" json:"toYear"`
	SortBy        string `form:"sortBy" json:"sortBy,omitempty"`
	SortDirection string `form:"sortDirection" json:"sortDirection,omitempty"`
}

// MonthBucket is one calendar month of aggregated revenue.
type MonthBucket struct {
	Month                 string             `json:"month"`
	TotalSaleRevenue      decimal.Decimal    `json:"totalSaleRevenue"`
	NumberOfSales         int64              `json:"numberOfSales"`
	AverageRevenueBySales decimal.Decimal    `json:"averageRevenueBySales"`
	Users                 []UserContribution `json:"users,omitempty"`
}

// UserContribution is one user's share of a month bucket.
type UserContribution struct {
	UserID                uint            `json:"userId"`
	UserName              string          `json:"userName"`
	Month                 string          `json:"month"`
	TotalSaleRevenue      decimal.Decimal `json:"totalSaleRevenue"`
	NumberOfSales         int64           `json:"numberOfSales"`
	AverageRevenueBySales decimal.Decimal `json:"averageRevenueBySales"`
}

// RevenueSummary totals a whole aggregation result.
type RevenueSummary struct {
	FromMonth             string          `json:"fromMonth"`
	ToMonth               string          `json:"toMonth"`
	Months                int             `json:"months"`
	TotalSaleRevenue      decimal.Decimal `json:"totalSaleRevenue"`
	NumberOfSales         int64           `json:"numberOfSales"`
	AverageRevenueBySales decimal.Decimal `json:"averageRevenueBySales"`
}
