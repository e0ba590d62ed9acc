package queries_test

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsItemsInPlacementOrder() {
	ctx := context.Background()
	burger := suite.addMenuItem("Burger", "5.00")
	fries := suite.addMenuItem("Fries", "2.35")
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	placed := suite.placeOrder(createdAt,
		order.Line{MenuItem: fries, Quantity: 3},
		order.Line{MenuItem: burger, Quantity: 2},
	)
	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)

	got, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(placed.ID(), got.ID)
	suite.Equal("pending", got.Status)
	suite.Equal("17.05", got.TotalPrice.String())
	suite.True(createdAt.Equal(got.CreatedAt))
	suite.Nil(got.DeliveredAt)
	suite.Require().Len(got.Items, 2)
	suite.Equal(fries.ID(), got.Items[0].MenuItemID)
	suite.Equal("Fries", got.Items[0].MenuItemName)
	suite.Equal("2.35", got.Items[0].MenuItemPrice.String())
	suite.Equal(3, got.Items[0].Quantity)
	suite.Equal(burger.ID(), got.Items[1].MenuItemID)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_Delivered_HasDeliveredAt() {
	burger := suite.addMenuItem("Burger", "5.00")
	deliveredAt := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	o := suite.deliveredOrder(deliveredAt, order.Line{MenuItem: burger, Quantity: 1})
	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	got, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("delivered", got.Status)
	suite.Require().NotNil(got.DeliveredAt)
	suite.True(deliveredAt.Equal(*got.DeliveredAt))
}

func (suite *QueryHandlersTestSuite) TestGetOrder_KeepsStoredTotalAfterPriceChange() {
	ctx := context.Background()
	burger := suite.addMenuItem("Burger", "5.00")
	o := suite.placeOrder(time.Now(), order.Line{MenuItem: burger, Quantity: 2})
	suite.Require().NoError(burger.ChangePrice(suite.price("7.00")))
	suite.Require().NoError(suite.menuRepo.Update(ctx, burger))
	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	got, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("10.00", got.TotalPrice.String())
	suite.Equal("7.00", got.Items[0].MenuItemPrice.String())
}

func (suite *QueryHandlersTestSuite) TestGetOrder_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_UnconstructedQuery() {
	_, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), queries.GetOrderQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}
