package queries_test

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
)

func (suite *QueryHandlersTestSuite) dailyReport(date string, loc *time.Location) queries.GetDailySalesReportQueryResponse {
	query, err := queries.NewGetDailySalesReportQuery(date, loc, time.Now())
	suite.Require().NoError(err)
	got, err := queries.NewGetDailySalesReportQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	return got
}

func (suite *QueryHandlersTestSuite) TestDailySalesReport_NoOrders() {
	got := suite.dailyReport("2026-03-01", time.UTC)

	suite.Equal("2026-03-01", got.Date)
	suite.Equal("0.00", got.TotalSales.String())
	suite.Equal(int64(0), got.TotalOrders)
	suite.NotNil(got.Items)
	suite.Empty(got.Items)
}

func (suite *QueryHandlersTestSuite) TestDailySalesReport_FiltersByDeliveryDay() {
	burger := suite.addMenuItem("Burger", "5.00")
	fries := suite.addMenuItem("Fries", "2.00")
	soup := suite.addMenuItem("Soup", "4.00")
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// inside the day, at both edges
	suite.deliveredOrder(day,
		order.Line{MenuItem: burger, Quantity: 2},
		order.Line{MenuItem: fries, Quantity: 1},
	)
	suite.deliveredOrder(day.Add(24*time.Hour-time.Second),
		order.Line{MenuItem: fries, Quantity: 3},
	)
	// next day and previous day
	suite.deliveredOrder(day.Add(24*time.Hour), order.Line{MenuItem: soup, Quantity: 9})
	suite.deliveredOrder(day.Add(-time.Second), order.Line{MenuItem: soup, Quantity: 9})
	// same day but not delivered
	ready := suite.placeOrder(day.Add(time.Hour), order.Line{MenuItem: soup, Quantity: 9})
	suite.advance(ready, order.Ready, day.Add(2*time.Hour))

	got := suite.dailyReport("2026-03-01", time.UTC)

	suite.Equal(int64(2), got.TotalOrders)
	suite.Equal("18.00", got.TotalSales.String())
	suite.Require().Len(got.Items, 2)
	suite.Equal("Burger", got.Items[0].MenuItemName)
	suite.Equal(int64(2), got.Items[0].TotalQuantity)
	suite.Equal("10.00", got.Items[0].Revenue.String())
	suite.Equal("Fries", got.Items[1].MenuItemName)
	suite.Equal(int64(4), got.Items[1].TotalQuantity)
	suite.Equal("8.00", got.Items[1].Revenue.String())
}

func (suite *QueryHandlersTestSuite) TestDailySalesReport_RevenueTiesOrderedByName() {
	tea := suite.addMenuItem("Tea", "2.00")
	coffee := suite.addMenuItem("Coffee", "4.00")
	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.deliveredOrder(day,
		order.Line{MenuItem: tea, Quantity: 2},
		order.Line{MenuItem: coffee, Quantity: 1},
	)

	got := suite.dailyReport("2026-03-01", time.UTC)

	suite.Require().Len(got.Items, 2)
	suite.Equal("Coffee", got.Items[0].MenuItemName)
	suite.Equal("Tea", got.Items[1].MenuItemName)
}

func (suite *QueryHandlersTestSuite) TestDailySalesReport_RevenueUsesCurrentPrice() {
	ctx := context.Background()
	burger := suite.addMenuItem("Burger", "5.00")
	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.deliveredOrder(day, order.Line{MenuItem: burger, Quantity: 2})
	suite.Require().NoError(burger.ChangePrice(suite.price("6.00")))
	suite.Require().NoError(suite.menuRepo.Update(ctx, burger))

	got := suite.dailyReport("2026-03-01", time.UTC)

	suite.Equal("10.00", got.TotalSales.String())
	suite.Require().Len(got.Items, 1)
	suite.Equal("12.00", got.Items[0].Revenue.String())
}

func (suite *QueryHandlersTestSuite) TestDailySalesReport_UsesConfiguredTimezone() {
	loc, err := time.LoadLocation("America/New_York")
	suite.Require().NoError(err)
	burger := suite.addMenuItem("Burger", "5.00")
	// 2026-03-02 03:00 UTC is 2026-03-01 22:00 in New York
	suite.deliveredOrder(time.Date(2026, 3, 2, 3, 0, 0, 0, time.UTC), order.Line{MenuItem: burger, Quantity: 1})

	suite.Equal(int64(1), suite.dailyReport("2026-03-01", loc).TotalOrders)
	suite.Equal(int64(0), suite.dailyReport("2026-03-02", loc).TotalOrders)
	suite.Equal(int64(0), suite.dailyReport("2026-03-01", time.UTC).TotalOrders)
	suite.Equal(int64(1), suite.dailyReport("2026-03-02", time.UTC).TotalOrders)
}
