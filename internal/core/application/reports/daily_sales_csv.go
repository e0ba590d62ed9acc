// Package reports renders read-side results into downloadable documents.
package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"restaurant/internal/core/application/usecases/queries"
)

// DailySalesReporter produces the aggregated report the CSV is rendered from.
type DailySalesReporter interface {
	Handle(ctx context.Context, query queries.GetDailySalesReportQuery) (queries.GetDailySalesReportQueryResponse, error)
}

// DailySalesCSV is a rendered report together with its suggested file name.
type DailySalesCSV struct {
	Filename string
	Content  []byte
}

// DailySalesExporter turns a daily sales report into CSV.
//
// Example:
//
//	exporter := reports.NewDailySalesExporter(reportHandler)
//	query, _ := queries.NewGetDailySalesReportQuery("2024-01-15", loc, time.Now())
//	file, err := exporter.Export(ctx, query)
//	// file.Filename == "daily_sales_2024-01-15.csv"
type DailySalesExporter struct {
	reporter DailySalesReporter
}

func NewDailySalesExporter(reporter DailySalesReporter) DailySalesExporter {
	return DailySalesExporter{reporter: reporter}
}

// Export runs the report for the query's date and renders it.
func (e DailySalesExporter) Export(ctx context.Context, query queries.GetDailySalesReportQuery) (DailySalesCSV, error) {
	report, err := e.reporter.Handle(ctx, query)
	if err != nil {
		return DailySalesCSV{}, err
	}

	var buf bytes.Buffer
	if err = WriteDailySalesCSV(&buf, report); err != nil {
		return DailySalesCSV{}, err
	}

	return DailySalesCSV{
		Filename: DailySalesFilename(report.Date),
		Content:  buf.Bytes(),
	}, nil
}

// DailySalesFilename returns the file name a report for date is saved under.
func DailySalesFilename(date string) string {
	return fmt.Sprintf("daily_sales_%s.csv", date)
}

// WriteDailySalesCSV writes the summary rows, a blank separator row and the
// per item breakdown in report order. The breakdown header is written even when
// there are no items.
func WriteDailySalesCSV(w io.Writer, report queries.GetDailySalesReportQueryResponse) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Date", report.Date},
		{"Total Orders", strconv.FormatInt(report.TotalOrders, 10)},
		{"Total Sales", report.TotalSales.String()},
		{},
		{"Menu Item", "Quantity Sold", "Revenue"},
	}
	for _, item := range report.Items {
		rows = append(rows, []string{
			item.MenuItemName,
			strconv.FormatInt(item.TotalQuantity, 10),
			item.Revenue.String(),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write daily sales csv: %w", err)
	}
	return nil
}
