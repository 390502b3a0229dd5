package entity

// MonthlyRevenue is one row of the revenue report: completed-order totals
// grouped by calendar month.
type MonthlyRevenue struct {
	Month  int     `db:"month"`
	Total  float64 `db:"total"`
	Orders int64   `db:"orders"`
}
