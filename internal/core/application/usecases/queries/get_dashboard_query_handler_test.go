package queries_test

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
)

func (suite *QueryHandlersTestSuite) dashboard() queries.GetDashboardQueryResponse {
	got, err := queries.NewGetDashboardQueryHandler(suite.db).Handle(context.Background(), queries.NewGetDashboardQuery())
	suite.Require().NoError(err)
	return got
}

func (suite *QueryHandlersTestSuite) TestDashboard_EmptyStore() {
	got := suite.dashboard()

	suite.Equal("0.00", got.TotalSales.String())
	suite.Equal(int64(0), got.TotalOrders)
	suite.Nil(got.MostOrderedItem)
}

func (suite *QueryHandlersTestSuite) TestDashboard_SalesCountDeliveredOnly() {
	burger := suite.addMenuItem("Burger", "5.00")
	fries := suite.addMenuItem("Fries", "2.50")
	now := time.Now()

	// delivered: 10.00 + 2.50
	suite.deliveredOrder(now, order.Line{MenuItem: burger, Quantity: 2})
	suite.deliveredOrder(now, order.Line{MenuItem: fries, Quantity: 1})
	// not delivered, counted in orders only
	suite.placeOrder(now, order.Line{MenuItem: fries, Quantity: 7})
	ready := suite.placeOrder(now, order.Line{MenuItem: burger, Quantity: 1})
	suite.advance(ready, order.Ready, now)

	got := suite.dashboard()

	suite.Equal("12.50", got.TotalSales.String())
	suite.Equal(int64(4), got.TotalOrders)
	suite.Require().NotNil(got.MostOrderedItem)
	// fries 8 across all statuses beats burger 3
	suite.Equal("Fries", *got.MostOrderedItem)
}

func (suite *QueryHandlersTestSuite) TestDashboard_MostOrderedTieGoesToFirstName() {
	soup := suite.addMenuItem("Soup", "3.00")
	bread := suite.addMenuItem("Bread", "1.00")
	now := time.Now()
	suite.placeOrder(now, order.Line{MenuItem: soup, Quantity: 2})
	suite.placeOrder(now,
		order.Line{MenuItem: bread, Quantity: 1},
		order.Line{MenuItem: bread, Quantity: 1},
	)

	got := suite.dashboard()

	suite.Require().NotNil(got.MostOrderedItem)
	suite.Equal("Bread", *got.MostOrderedItem)
}

func (suite *QueryHandlersTestSuite) TestDashboard_MostOrderedCountsSharedNamesTogether() {
	burger := suite.addMenuItem("Burger", "5.00")
	doubleBurger := suite.addMenuItem("Burger", "9.00")
	pizza := suite.addMenuItem("Pizza", "7.00")
	now := time.Now()
	suite.placeOrder(now, order.Line{MenuItem: burger, Quantity: 3})
	suite.placeOrder(now, order.Line{MenuItem: doubleBurger, Quantity: 3})
	suite.placeOrder(now, order.Line{MenuItem: pizza, Quantity: 5})

	got := suite.dashboard()

	// burger 3 + 3 beats pizza 5
	suite.Require().NotNil(got.MostOrderedItem)
	suite.Equal("Burger", *got.MostOrderedItem)
}

func (suite *QueryHandlersTestSuite) TestDashboard_RepeatedCallsAreIdempotent() {
	burger := suite.addMenuItem("Burger", "5.00")
	suite.deliveredOrder(time.Now(), order.Line{MenuItem: burger, Quantity: 1})

	first := suite.dashboard()
	second := suite.dashboard()

	suite.Equal(first.TotalSales.String(), second.TotalSales.String())
	suite.Equal(first.TotalOrders, second.TotalOrders)
	suite.Equal(first.MostOrderedItem, second.MostOrderedItem)
}
