package constants

// Sort fields accepted by the revenue endpoints. Values are the wire names.
const (
	SortByMonth        = "month"
	SortByTotalRevenue = "totalSaleRevenue"
	SortBySaleCount    = "numberOfSales"
	SortByAverage      = "averageRevenueBySales"
)

// Sort directions.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Defaults applied when the caller omits sortBy or sortDirection.
const (
	DefaultSortBy        = SortByMonth
	DefaultSortDirection = SortAsc
)

// SortFields lists the allowed sortBy values in display order.
var SortFields = []string{SortByMonth, SortByTotalRevenue, SortBySaleCount, SortByAverage}

// Sale listing limits.
const (
	DefaultSalesLimit = 10
	MaxSalesLimit     = 50
)

// MonthKeyLayout is the Go layout of a month bucket key ("YYYY-MM").
const MonthKeyLayout = "2006-01"
