package reports

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ChartPoint is one per-date accumulator: the summed quantity plus the
// distinct product names and first actor seen that date.
type ChartPoint struct {
	Date          string   `json:"date"`
	TotalQuantity int64    `json:"total_quantity"`
	Products      []string `json:"products,omitempty"`
	Actor         string   `json:"actor,omitempty"`
}

// GroupQuantityByDate buckets entries by calendar date, summing quantities.
// Points come back sorted ascending by date, ready for time-series display.
// Entries whose grouping key is missing (malformed source date) are excluded
// from aggregation and returned as the second value so callers can report
// them; they are never silently dropped.
func GroupQuantityByDate(entries []Entry) ([]ChartPoint, []Entry) {
	buckets := map[string]*ChartPoint{}
	seenProduct := map[string]map[string]bool{}
	var skipped []Entry

	for _, e := range entries {
		if e.Date == "" {
			skipped = append(skipped, e)
			continue
		}
		point, ok := buckets[e.Date]
		if !ok {
			point = &ChartPoint{Date: e.Date, Actor: e.Actor}
			buckets[e.Date] = point
			seenProduct[e.Date] = map[string]bool{}
		}
		point.TotalQuantity += e.Quantity
		if e.Product != "" && !seenProduct[e.Date][e.Product] {
			seenProduct[e.Date][e.Product] = true
			point.Products = append(point.Products, e.Product)
		}
	}

	points := make([]ChartPoint, 0, len(buckets))
	for _, point := range buckets {
		sort.Strings(point.Products)
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, skipped
}

// LedgerRow is one transaction annotated with the running quantity as of that
// transaction and the derived total cost at that row's unit price.
type LedgerRow struct {
	LedgerEntry
	RunningQuantity int64           `json:"running_quantity"`
	TotalCost       decimal.Decimal `json:"total_cost"`
}

// RunningBalance folds one item's transactions into running quantities.
// Entries are first ordered ascending by timestamp; ties keep the original
// fetch order (Seq). An Addition adds its quantity to the running total, an
// Update replaces the running total outright, a Removal subtracts. The
// replace-versus-add asymmetry is domain behavior and must not be "fixed".
func RunningBalance(entries []LedgerEntry) []LedgerRow {
	ordered := make([]LedgerEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].At.Equal(ordered[j].At) {
			return ordered[i].At.Before(ordered[j].At)
		}
		return ordered[i].Seq < ordered[j].Seq
	})

	rows := make([]LedgerRow, 0, len(ordered))
	var running int64
	for _, e := range ordered {
		switch e.Type {
		case "Addition":
			running += e.Quantity
		case "Update":
			running = e.Quantity
		case "Removal":
			running -= e.Quantity
		}
		rows = append(rows, LedgerRow{
			LedgerEntry:     e,
			RunningQuantity: running,
			TotalCost:       e.UnitPrice.Mul(decimal.NewFromInt(running)),
		})
	}
	return rows
}
