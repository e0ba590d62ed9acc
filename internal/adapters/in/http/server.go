package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"restaurant/internal/core/application/reports"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case ports the server depends on. Command and query handlers from the
// application layer satisfy them.
type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}
	CreateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) error
	}
	UpdateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) error
	}
	DeleteMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteMenuItemCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetMenuItemHandler interface {
		Handle(ctx context.Context, query queries.GetMenuItemQuery) (queries.MenuItemResponse, error)
	}
	ListMenuItemsHandler interface {
		Handle(ctx context.Context, query queries.ListMenuItemsQuery) ([]queries.MenuItemResponse, error)
	}
	GetDashboardHandler interface {
		Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error)
	}
	GetDailySalesReportHandler interface {
		Handle(ctx context.Context, query queries.GetDailySalesReportQuery) (queries.GetDailySalesReportQueryResponse, error)
	}
	DailySalesExporter interface {
		Export(ctx context.Context, query queries.GetDailySalesReportQuery) (reports.DailySalesCSV, error)
	}
)

// Handlers groups every use case the HTTP API exposes.
type Handlers struct {
	PlaceOrder          PlaceOrderHandler
	UpdateOrderStatus   UpdateOrderStatusHandler
	CreateMenuItem      CreateMenuItemHandler
	UpdateMenuItem      UpdateMenuItemHandler
	DeleteMenuItem      DeleteMenuItemHandler
	GetOrder            GetOrderHandler
	GetMenuItem         GetMenuItemHandler
	ListMenuItems       ListMenuItemsHandler
	GetDashboard        GetDashboardHandler
	GetDailySalesReport GetDailySalesReportHandler
	ExportDailySales    DailySalesExporter
}

// Server translates HTTP requests into commands and queries.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	location *time.Location
	now      func() time.Time
}

// NewServer creates a server. Report dates are interpreted in location.
func NewServer(handlers Handlers, location *time.Location) *Server {
	return &Server{
		handlers: handlers,
		location: location,
		now:      time.Now,
	}
}

// RegisterRoutes mounts the API under g, typically the /api/v1 group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.GET("/menu", s.ListMenuItems)
	g.POST("/menu", s.CreateMenuItem)
	g.GET("/menu/:menuItemId", s.GetMenuItem)
	g.PUT("/menu/:menuItemId", s.UpdateMenuItem)
	g.DELETE("/menu/:menuItemId", s.DeleteMenuItem)

	g.POST("/orders", s.PlaceOrder)
	g.GET("/orders/:orderId", s.GetOrder)
	g.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)

	g.GET("/dashboard", s.GetDashboard)
	g.GET("/reports/daily-sales", s.GetDailySalesReport)
	g.GET("/reports/daily-sales/export", s.ExportDailySalesReport)
}

// ListMenuItems handles GET /api/v1/menu.
func (s *Server) ListMenuItems(c echo.Context) error {
	items, err := s.handlers.ListMenuItems.Handle(c.Request().Context(), queries.NewListMenuItemsQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]menuItemResponse, len(items))
	for i, item := range items {
		response[i] = toMenuItemResponse(item)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu.
func (s *Server) CreateMenuItem(c echo.Context) error {
	var input menuItemInput
	if err := c.Bind(&input); err != nil {
		return writeErrorResponse(c, http.StatusBadRequest, "Invalid request body")
	}

	price, err := kernel.PriceFromString(input.Price)
	if err != nil {
		return writeError(c, err)
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(menuItemID, input.Name, price)
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	if err = s.handlers.CreateMenuItem.Handle(ctx, cmd); err != nil {
		return writeError(c, err)
	}

	return s.respondMenuItem(c, http.StatusCreated, menuItemID)
}

// GetMenuItem handles GET /api/v1/menu/{menuItemId}.
func (s *Server) GetMenuItem(c echo.Context) error {
	menuItemID, err := bindUUIDParam(c, "menuItemId")
	if err != nil {
		return writeError(c, err)
	}

	return s.respondMenuItem(c, http.StatusOK, menuItemID)
}

// UpdateMenuItem handles PUT /api/v1/menu/{menuItemId}.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	menuItemID, err := bindUUIDParam(c, "menuItemId")
	if err != nil {
		return writeError(c, err)
	}

	var input menuItemInput
	if err = c.Bind(&input); err != nil {
		return writeErrorResponse(c, http.StatusBadRequest, "Invalid request body")
	}

	price, err := kernel.PriceFromString(input.Price)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(menuItemID, input.Name, price)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.handlers.UpdateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return s.respondMenuItem(c, http.StatusOK, menuItemID)
}

// DeleteMenuItem handles DELETE /api/v1/menu/{menuItemId}.
// Items referenced by an order answer 409.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	menuItemID, err := bindUUIDParam(c, "menuItemId")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(menuItemID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.handlers.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders and answers with the stored order.
func (s *Server) PlaceOrder(c echo.Context) error {
	var input newOrder
	if err := c.Bind(&input); err != nil {
		return writeErrorResponse(c, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.PlaceOrderLine, 0, len(input.Items))
	for _, item := range input.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return writeError(c, err)
		}
		line, err := commands.NewPlaceOrderLine(menuItemID, item.Quantity)
		if err != nil {
			return writeError(c, err)
		}
		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, lines)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return s.respondOrder(c, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := bindUUIDParam(c, "orderId")
	if err != nil {
		return writeError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := bindUUIDParam(c, "orderId")
	if err != nil {
		return writeError(c, err)
	}

	var input statusChange
	if err = c.Bind(&input); err != nil {
		return writeErrorResponse(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, input.Status)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return s.respondOrder(c, http.StatusOK, orderID)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	dashboard, err := s.handlers.GetDashboard.Handle(c.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toDashboardResponse(dashboard))
}

// GetDailySalesReport handles GET /api/v1/reports/daily-sales?date=YYYY-MM-DD.
func (s *Server) GetDailySalesReport(c echo.Context) error {
	query, err := s.dailySalesQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	report, err := s.handlers.GetDailySalesReport.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toDailySalesReportResponse(report))
}

// ExportDailySalesReport handles GET /api/v1/reports/daily-sales/export?date=YYYY-MM-DD.
func (s *Server) ExportDailySalesReport(c echo.Context) error {
	query, err := s.dailySalesQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	file, err := s.handlers.ExportDailySales.Export(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Blob(http.StatusOK, "text/csv", file.Content)
}

func (s *Server) respondMenuItem(c echo.Context, status int, menuItemID kernel.UUID) error {
	query, err := queries.NewGetMenuItemQuery(menuItemID)
	if err != nil {
		return writeError(c, err)
	}

	item, err := s.handlers.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(status, toMenuItemResponse(item))
}

func (s *Server) respondOrder(c echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(c, err)
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(status, toOrderResponse(o))
}

func (s *Server) dailySalesQuery(c echo.Context) (queries.GetDailySalesReportQuery, error) {
	var date *openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, false, "date", c.QueryParams(), &date); err != nil {
		return queries.GetDailySalesReportQuery{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}

	var day string
	if date != nil {
		day = date.String()
	}

	return queries.NewGetDailySalesReportQuery(day, s.location, s.now())
}

func bindUUIDParam(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return kernel.UUIDFromBytes(id[:])
}
