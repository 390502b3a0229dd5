package response

type MonthlyRevenueResponse struct {
	Month  int     `json:"month"`
	Total  float64 `json:"total"`
	Orders int64   `json:"orders"`
}

type RevenueReportResponse struct {
	Year        int                      `json:"year"`
	Months      []MonthlyRevenueResponse `json:"months"`
	YearTotal   float64                  `json:"year_total"`
	TotalOrders int64                    `json:"total_orders"`
}
