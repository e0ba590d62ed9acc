package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// DateLayout is the only accepted report date format.
const DateLayout = "2006-01-02"

var (
	ErrGetDailySalesReportQueryIsNotConstructed = errors.New(
		"GetDailySalesReportQuery must be created via NewGetDailySalesReportQuery constructor",
	)
)

// GetDailySalesReportQuery selects one calendar day in the restaurant's
// timezone. A day runs from local midnight up to, but excluding, the next
// local midnight, so days across a DST switch are 23 or 25 hours long.
//
// Example:
//
//	loc, _ := time.LoadLocation("Europe/Berlin")
//	query, err := NewGetDailySalesReportQuery("2026-03-01", loc, time.Now())
//	if err != nil {
//	    return err // malformed date
//	}
type GetDailySalesReportQuery struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewGetDailySalesReportQuery parses date strictly as YYYY-MM-DD in location.
// An empty date selects the day now falls on in location.
func NewGetDailySalesReportQuery(date string, location *time.Location, now time.Time) (GetDailySalesReportQuery, error) {
	if location == nil {
		return GetDailySalesReportQuery{}, errs.NewValueIsRequiredError("location")
	}

	var day time.Time
	if date == "" {
		local := now.In(location)
		day = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
	} else {
		parsed, err := time.ParseInLocation(DateLayout, date, location)
		if err != nil {
			return GetDailySalesReportQuery{}, errs.NewValueIsInvalidErrorWithCause("date", err)
		}
		day = parsed
	}

	return GetDailySalesReportQuery{
		start: day,
		end:   day.AddDate(0, 0, 1),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDailySalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySalesReportQueryIsNotConstructed)
}

// Date returns the selected day as YYYY-MM-DD.
func (q GetDailySalesReportQuery) Date() string {
	return q.start.Format(DateLayout)
}

// Start is local midnight of the selected day.
func (q GetDailySalesReportQuery) Start() time.Time {
	return q.start
}

// End is local midnight of the following day, exclusive.
func (q GetDailySalesReportQuery) End() time.Time {
	return q.end
}

// GetDailySalesReportQueryResponse is the sales report of one day.
// Items are ordered by revenue descending, then name, then menu item ID.
type GetDailySalesReportQueryResponse struct {
	Date        string
	TotalSales  kernel.Price
	TotalOrders int64
	Items       []DailySalesItem
}

// DailySalesItem is one menu item's share of a day. Revenue is computed from
// the item's current menu price, so it can differ from the stored order
// totals after a price change.
type DailySalesItem struct {
	MenuItemID    kernel.UUID
	MenuItemName  string
	TotalQuantity int64
	Revenue       kernel.Price
}
