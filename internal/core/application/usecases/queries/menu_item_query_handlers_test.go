package queries_test

import (
	"context"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

func (suite *QueryHandlersTestSuite) TestListMenuItems_OrderedByName() {
	suite.addMenuItem("Soup", "3.00")
	suite.addMenuItem("Burger", "5.00")
	suite.addMenuItem("Fries", "2.35")

	items, err := queries.NewListMenuItemsQueryHandler(suite.db).Handle(context.Background(), queries.NewListMenuItemsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(items, 3)
	suite.Equal("Burger", items[0].Name)
	suite.Equal("Fries", items[1].Name)
	suite.Equal("Soup", items[2].Name)
	suite.Equal("2.35", items[1].Price.String())
}

func (suite *QueryHandlersTestSuite) TestListMenuItems_Empty() {
	items, err := queries.NewListMenuItemsQueryHandler(suite.db).Handle(context.Background(), queries.NewListMenuItemsQuery())

	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func (suite *QueryHandlersTestSuite) TestGetMenuItem() {
	ctx := context.Background()
	burger := suite.addMenuItem("Burger", "5.00")
	handler := queries.NewGetMenuItemQueryHandler(suite.db)

	query, err := queries.NewGetMenuItemQuery(burger.ID())
	suite.Require().NoError(err)
	got, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(burger.ID(), got.ID)
	suite.Equal("Burger", got.Name)
	suite.Equal("5.00", got.Price.String())

	query, err = queries.NewGetMenuItemQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
