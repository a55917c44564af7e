// file: internals/features/reports/service/report_service.go
//
// Reporting/Filter Engine: fungsi murni atas kumpulan baris dashboard
// (RequestListRow). Tidak menyentuh DB — caller yang memuat datanya.
package service

import (
	"sort"
	"time"

	"gurubank_backend/internals/constants"
	"gurubank_backend/internals/features/requests/dto"
	requestService "gurubank_backend/internals/features/requests/service"
)

// CountByStatus menghitung baris dengan status tertentu.
func CountByStatus(rows []dto.RequestListRow, status string) int {
	n := 0
	for i := range rows {
		if rows[i].Status == status {
			n++
		}
	}
	return n
}

// CountThisMonth menghitung baris yang target_date-nya jatuh di bulan-tahun
// referenceDate. Perbandingan prefix "YYYY-MM" atas string ISO; target_date
// kosong tidak pernah ikut.
func CountThisMonth(rows []dto.RequestListRow, referenceDate time.Time) int {
	prefix := referenceDate.Format("2006-01")
	n := 0
	for i := range rows {
		if matchesMonth(&rows[i], prefix) {
			n++
		}
	}
	return n
}

// Filter mengembalikan subsequence baris sesuai mode
// (pending|matched|completed|this-month|all). Mode selalu parameter
// eksplisit, bukan state bersama. Mode yang tidak dikenal = "all".
func Filter(rows []dto.RequestListRow, mode string, referenceDate time.Time) []dto.RequestListRow {
	if mode == constants.FilterAll || mode == "" {
		return rows
	}

	monthPrefix := referenceDate.Format("2006-01")
	out := make([]dto.RequestListRow, 0, len(rows))
	for i := range rows {
		switch mode {
		case constants.FilterPending, constants.FilterMatched, constants.FilterCompleted:
			if rows[i].Status == mode {
				out = append(out, rows[i])
			}
		case constants.FilterThisMonth:
			if matchesMonth(&rows[i], monthPrefix) {
				out = append(out, rows[i])
			}
		default:
			out = append(out, rows[i])
		}
	}
	return out
}

// SortByTargetDateDesc mengurutkan stabil, tanggal terbaru dulu. Baris tanpa
// target_date memakai sentinel minimal sehingga jatuh di urutan paling akhir.
func SortByTargetDateDesc(rows []dto.RequestListRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return dateKey(&rows[i]) > dateKey(&rows[j])
	})
}

// DocumentCompletionCount: jumlah flag dokumen yang true (0..4).
// Baris tanpa match dihitung 0.
func DocumentCompletionCount(row *dto.RequestListRow) int {
	n := 0
	for _, f := range []*bool{row.DocAgreement, row.DocEstimate, row.DocPlan, row.DocSexOffender} {
		if f != nil && *f {
			n++
		}
	}
	return n
}

// IsOverdue: lihat requestService.IsOverdue — completed tidak pernah overdue.
func IsOverdue(row *dto.RequestListRow, today time.Time) bool {
	return requestService.IsOverdue(row.Status, row.TargetDate, today.Format("2006-01-02"))
}

// Enrich mengisi field turunan (is_overdue, doc_count) pada tiap baris.
func Enrich(rows []dto.RequestListRow, now time.Time) {
	today := now.Format("2006-01-02")
	for i := range rows {
		rows[i].IsOverdue = requestService.IsOverdue(rows[i].Status, rows[i].TargetDate, today)
		rows[i].DocCount = DocumentCompletionCount(&rows[i])
	}
}

func matchesMonth(row *dto.RequestListRow, prefix string) bool {
	return row.TargetDate != nil && len(*row.TargetDate) >= len(prefix) &&
		(*row.TargetDate)[:len(prefix)] == prefix
}

func dateKey(row *dto.RequestListRow) string {
	if row.TargetDate == nil || *row.TargetDate == "" {
		return constants.MinDateSentinel
	}
	return *row.TargetDate
}
