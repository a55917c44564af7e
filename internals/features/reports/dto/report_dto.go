package dto

// 🔹 Response statistik dashboard
type StatsResponse struct {
	Pending   int `json:"pending"`    // menunggu match
	Matched   int `json:"matched"`    // sedang berjalan
	Completed int `json:"completed"`  // edukasi selesai
	ThisMonth int `json:"this_month"` // target_date di bulan berjalan
	Total     int `json:"total"`
}
