package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"salestracker/builders"
	"salestracker/constants"
	"salestracker/dto"
	"salestracker/errors"
	"salestracker/internal/testutil"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type revenueFixture struct {
	db            *gorm.DB
	west, east    uint
	ann, bob, cid uint
	service       *RevenueService
	jan, mar      time.Time
}

// newRevenueFixture seeds four months of sales:
//
//	2023-01  ann 10, ann 10, bob 11   total 31,    3 sales
//	2023-02  ann 100, cid 50          total 150,   2 sales
//	2023-03  cid 20.50                total 20.50, 1 sale
//	2023-04  bob 500                  total 500,   1 sale
func newRevenueFixture(t *testing.T) *revenueFixture {
	db := testutil.OpenTestDB(t)
	f := &revenueFixture{db: db}
	f.west = testutil.Group(t, db, "West")
	f.east = testutil.Group(t, db, "East")
	f.ann = testutil.User(t, db, "Ann", constants.RoleSalesManager, f.west)
	f.bob = testutil.User(t, db, "Bob", constants.RoleSalesAssociate, f.west)
	f.cid = testutil.User(t, db, "Cid", constants.RoleSalesManager, f.east)

	testutil.Sale(t, db, f.ann, "10", "2023-01-05")
	testutil.Sale(t, db, f.ann, "10", "2023-01-20")
	testutil.Sale(t, db, f.bob, "11", "2023-01-31")
	testutil.Sale(t, db, f.ann, "100", "2023-02-01")
	testutil.Sale(t, db, f.cid, "50", "2023-02-14")
	testutil.Sale(t, db, f.cid, "20.50", "2023-03-31")
	testutil.Sale(t, db, f.bob, "500", "2023-04-01")

	f.jan = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	f.mar = time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	f.service = NewRevenueService(RevenueServiceOptions{DB: db})
	return f
}

func (f *revenueFixture) query() *builders.RevenueQueryBuilder {
	return builders.NewRevenueQueryBuilder().Between(f.jan, f.mar)
}

func (f *revenueFixture) aggregate(t *testing.T, q dto.RevenueQuery) ([]dto.MonthBucket, error) {
	t.Helper()
	filter, err := NewRevenueFilter(q)
	require.NoError(t, err)
	return f.service.Aggregate(context.Background(), filter)
}

func months(buckets []dto.MonthBucket) []string {
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = b.Month
	}
	return out
}

func TestAggregate_WindowIsInclusive(t *testing.T) {
	f := newRevenueFixture(t)
	buckets, err := f.aggregate(t, f.query().Build())
	require.NoError(t, err)

	assert.Equal(t, []string{"2023-01", "2023-02", "2023-03"}, months(buckets))
	for _, b := range buckets {
		assert.Nil(t, b.Users)
	}

	jan := buckets[0]
	assertDecimal(t, "31", jan.TotalSaleRevenue)
	assert.Equal(t, int64(3), jan.NumberOfSales)
	assertDecimal(t, "10.33", jan.AverageRevenueBySales)

	assertDecimal(t, "20.5", buckets[2].TotalSaleRevenue)
	assertDecimal(t, "20.5", buckets[2].AverageRevenueBySales)
}

func TestAggregate_SortByTotalDesc(t *testing.T) {
	f := newRevenueFixture(t)
	buckets, err := f.aggregate(t, f.query().SortBy("totalSaleRevenue", "DESC").Build())
	require.NoError(t, err)

	assert.Equal(t, []string{"2023-02", "2023-01", "2023-03"}, months(buckets))
	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i-1].TotalSaleRevenue.GreaterThanOrEqual(buckets[i].TotalSaleRevenue))
	}
}

func TestAggregate_SortByOtherFields(t *testing.T) {
	f := newRevenueFixture(t)

	buckets, err := f.aggregate(t, f.query().SortBy("averageRevenueBySales", "desc").Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-02", "2023-03", "2023-01"}, months(buckets))

	buckets, err = f.aggregate(t, f.query().SortBy("numberOfSales", "asc").Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-03", "2023-02", "2023-01"}, months(buckets))

	buckets, err = f.aggregate(t, f.query().SortBy("month", "desc").Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-03", "2023-02", "2023-01"}, months(buckets))
}

func TestAggregate_GroupFilter(t *testing.T) {
	f := newRevenueFixture(t)
	buckets, err := f.aggregate(t, f.query().WithGroups(f.west).Build())
	require.NoError(t, err)

	assert.Equal(t, []string{"2023-01", "2023-02"}, months(buckets))
	assertDecimal(t, "100", buckets[1].TotalSaleRevenue)
}

func TestAggregate_GroupAndRoleIntersect(t *testing.T) {
	f := newRevenueFixture(t)
	buckets, err := f.aggregate(t, f.query().WithGroups(f.west).WithRoles("sales manager").WithUserBreakdown().Build())
	require.NoError(t, err)

	require.Equal(t, []string{"2023-01", "2023-02"}, months(buckets))
	assertDecimal(t, "20", buckets[0].TotalSaleRevenue)
	assert.Equal(t, int64(2), buckets[0].NumberOfSales)
	for _, b := range buckets {
		for _, u := range b.Users {
			assert.Equal(t, f.ann, u.UserID)
		}
	}
}

func TestAggregate_UserBreakdown(t *testing.T) {
	f := newRevenueFixture(t)
	buckets, err := f.aggregate(t, f.query().WithUserBreakdown().Build())
	require.NoError(t, err)
	require.Len(t, buckets, 3)

	jan := buckets[0].Users
	require.Len(t, jan, 2)
	assert.Equal(t, f.ann, jan[0].UserID)
	assert.Equal(t, "Ann", jan[0].UserName)
	assert.Equal(t, "2023-01", jan[0].Month)
	assertDecimal(t, "20", jan[0].TotalSaleRevenue)
	assertDecimal(t, "10", jan[0].AverageRevenueBySales)
	assert.Equal(t, f.bob, jan[1].UserID)

	for _, b := range buckets {
		var total int64
		for _, u := range b.Users {
			assert.Equal(t, b.Month, u.Month)
			total += u.NumberOfSales
		}
		assert.Equal(t, b.NumberOfSales, total)
	}
}

func TestAggregate_BreakdownFollowsSortWithinMonth(t *testing.T) {
	f := newRevenueFixture(t)
	buckets, err := f.aggregate(t, f.query().SortBy("totalSaleRevenue", "DESC").WithUserBreakdown().Build())
	require.NoError(t, err)

	feb := buckets[0]
	require.Equal(t, "2023-02", feb.Month)
	require.Len(t, feb.Users, 2)
	assert.Equal(t, f.ann, feb.Users[0].UserID)
	assert.Equal(t, f.cid, feb.Users[1].UserID)
}

func TestAggregate_NoSalesIsNotFound(t *testing.T) {
	f := newRevenueFixture(t)
	q := builders.NewRevenueQueryBuilder().Month(time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)).Build()
	_, err := f.aggregate(t, q)
	assert.ErrorIs(t, err, &errors.AppError{Code: errors.ErrCodeNotFound, Resource: errors.ResourceRevenue})
}

func TestAggregate_EmptyEligibleSetIsNotFound(t *testing.T) {
	f := newRevenueFixture(t)
	empty := testutil.Group(t, f.db, "Empty")
	_, err := f.aggregate(t, f.query().WithGroups(empty).Build())
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestAggregate_UnknownGroup(t *testing.T) {
	f := newRevenueFixture(t)
	_, err := f.aggregate(t, f.query().WithGroups(f.west, 404).Build())
	assert.ErrorIs(t, err, &errors.AppError{Code: errors.ErrCodeNotFound, Resource: errors.ResourceGroup})
}

func TestAggregate_RoleWithoutUsers(t *testing.T) {
	f := newRevenueFixture(t)
	_, err := f.aggregate(t, f.query().WithRoles("Regional Director").Build())
	assert.ErrorIs(t, err, &errors.AppError{Code: errors.ErrCodeNotFound, Resource: errors.ResourceRole})
}

func TestAggregate_ClosedStoreIsUnavailable(t *testing.T) {
	f := newRevenueFixture(t)
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = f.aggregate(t, f.query().Build())
	assert.True(t, errors.HasCode(err, errors.ErrCodeStoreUnavailable))
}

func TestAggregateForUser(t *testing.T) {
	f := newRevenueFixture(t)
	w, err := NewMonthWindow("01", "2023", "03", "2023")
	require.NoError(t, err)

	buckets, err := f.service.AggregateForUser(context.Background(), f.cid, w, DefaultSort)
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-02", "2023-03"}, months(buckets))

	_, err = f.service.AggregateForUser(context.Background(), 999, w, DefaultSort)
	assert.ErrorIs(t, err, &errors.AppError{Code: errors.ErrCodeNotFound, Resource: errors.ResourceUser})
}

func TestSummary(t *testing.T) {
	f := newRevenueFixture(t)
	filter, err := NewRevenueFilter(f.query().WithUserBreakdown().Build())
	require.NoError(t, err)

	s, err := f.service.Summary(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Months)
	assert.Equal(t, int64(6), s.NumberOfSales)
	assertDecimal(t, "201.5", s.TotalSaleRevenue)
	assertDecimal(t, "33.58", s.AverageRevenueBySales)
}

func TestReportMonth(t *testing.T) {
	f := newRevenueFixture(t)
	s, err := f.service.ReportMonth(context.Background(), time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2023-02", s.FromMonth)
	assertDecimal(t, "150", s.TotalSaleRevenue)
	assertDecimal(t, "75", s.AverageRevenueBySales)

	s, err = f.service.ReportMonth(context.Background(), time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, s.NumberOfSales)
}

// memoryCache is a RevenueCache over a map, stamping and encoding like the
// Redis cache.
type memoryCache struct {
	mu         sync.Mutex
	generation int
	entries    map[string][]byte
	hits       int
}

func (c *memoryCache) Stamp(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("%d:%s", c.generation, key), nil
}

func (c *memoryCache) Get(_ context.Context, stamped string, target any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[stamped]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(data, target)
}

func (c *memoryCache) Set(_ context.Context, stamped string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[stamped] = data
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return nil
}

func TestAggregate_CacheIsInvalidatedByWrites(t *testing.T) {
	f := newRevenueFixture(t)
	cache := &memoryCache{entries: map[string][]byte{}}
	f.service = NewRevenueService(RevenueServiceOptions{DB: f.db, Cache: cache})
	sales := NewSaleService(SaleServiceOptions{DB: f.db, Invalidator: f.service})

	first, err := f.aggregate(t, f.query().Build())
	require.NoError(t, err)
	second, err := f.aggregate(t, f.query().Build())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assertDecimal(t, first[0].TotalSaleRevenue.String(), second[0].TotalSaleRevenue)

	_, err = sales.Create(context.Background(), dto.CreateSaleRequest{UserID: f.bob, Amount: dec("9"), Date: "2023-01-02"})
	require.NoError(t, err)

	third, err := f.aggregate(t, f.query().Build())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assertDecimal(t, "40", third[0].TotalSaleRevenue)
}
