package http

import (
	"context"

	"restaurant/internal/core/application/reports"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateMenuItemHandler struct{ mock.Mock }

func (m *MockCreateMenuItemHandler) Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateMenuItemHandler struct{ mock.Mock }

func (m *MockUpdateMenuItemHandler) Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteMenuItemHandler struct{ mock.Mock }

func (m *MockDeleteMenuItemHandler) Handle(ctx context.Context, cmd commands.DeleteMenuItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(queries.GetOrderQueryResponse)
	return resp, args.Error(1)
}

type MockGetMenuItemHandler struct{ mock.Mock }

func (m *MockGetMenuItemHandler) Handle(ctx context.Context, query queries.GetMenuItemQuery) (queries.MenuItemResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(queries.MenuItemResponse)
	return resp, args.Error(1)
}

type MockListMenuItemsHandler struct{ mock.Mock }

func (m *MockListMenuItemsHandler) Handle(ctx context.Context, query queries.ListMenuItemsQuery) ([]queries.MenuItemResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).([]queries.MenuItemResponse)
	return resp, args.Error(1)
}

type MockGetDashboardHandler struct{ mock.Mock }

func (m *MockGetDashboardHandler) Handle(
	ctx context.Context,
	query queries.GetDashboardQuery,
) (queries.GetDashboardQueryResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(queries.GetDashboardQueryResponse)
	return resp, args.Error(1)
}

type MockGetDailySalesReportHandler struct{ mock.Mock }

func (m *MockGetDailySalesReportHandler) Handle(
	ctx context.Context,
	query queries.GetDailySalesReportQuery,
) (queries.GetDailySalesReportQueryResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(queries.GetDailySalesReportQueryResponse)
	return resp, args.Error(1)
}

type MockDailySalesExporter struct{ mock.Mock }

func (m *MockDailySalesExporter) Export(ctx context.Context, query queries.GetDailySalesReportQuery) (reports.DailySalesCSV, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(reports.DailySalesCSV)
	return resp, args.Error(1)
}

type mockHandlers struct {
	placeOrder          *MockPlaceOrderHandler
	updateOrderStatus   *MockUpdateOrderStatusHandler
	createMenuItem      *MockCreateMenuItemHandler
	updateMenuItem      *MockUpdateMenuItemHandler
	deleteMenuItem      *MockDeleteMenuItemHandler
	getOrder            *MockGetOrderHandler
	getMenuItem         *MockGetMenuItemHandler
	listMenuItems       *MockListMenuItemsHandler
	getDashboard        *MockGetDashboardHandler
	getDailySalesReport *MockGetDailySalesReportHandler
	exportDailySales    *MockDailySalesExporter
}

func newMockHandlers() *mockHandlers {
	return &mockHandlers{
		placeOrder:          new(MockPlaceOrderHandler),
		updateOrderStatus:   new(MockUpdateOrderStatusHandler),
		createMenuItem:      new(MockCreateMenuItemHandler),
		updateMenuItem:      new(MockUpdateMenuItemHandler),
		deleteMenuItem:      new(MockDeleteMenuItemHandler),
		getOrder:            new(MockGetOrderHandler),
		getMenuItem:         new(MockGetMenuItemHandler),
		listMenuItems:       new(MockListMenuItemsHandler),
		getDashboard:        new(MockGetDashboardHandler),
		getDailySalesReport: new(MockGetDailySalesReportHandler),
		exportDailySales:    new(MockDailySalesExporter),
	}
}

func (m *mockHandlers) handlers() Handlers {
	return Handlers{
		PlaceOrder:          m.placeOrder,
		UpdateOrderStatus:   m.updateOrderStatus,
		CreateMenuItem:      m.createMenuItem,
		UpdateMenuItem:      m.updateMenuItem,
		DeleteMenuItem:      m.deleteMenuItem,
		GetOrder:            m.getOrder,
		GetMenuItem:         m.getMenuItem,
		ListMenuItems:       m.listMenuItems,
		GetDashboard:        m.getDashboard,
		GetDailySalesReport: m.getDailySalesReport,
		ExportDailySales:    m.exportDailySales,
	}
}
