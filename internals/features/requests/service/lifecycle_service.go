// file: internals/features/requests/service/lifecycle_service.go
package service

import (
	"errors"

	"gurubank_backend/internals/constants"
)

// Status lifecycle request: pending → matched → completed, tidak boleh mundur.
// Transisi ke status yang sama dianggap no-op (idempotent), bukan error.
// pending → completed diizinkan: operator boleh menutup permohonan yang
// tidak jadi dimatch.

var (
	ErrUnknownStatus      = errors.New("status tidak dikenal")
	ErrBackwardTransition = errors.New("status lifecycle tidak boleh mundur")
)

// CheckTransition memvalidasi perpindahan status.
// Mengembalikan noop=true kalau from == to.
func CheckTransition(from, to string) (noop bool, err error) {
	fromRank := constants.StatusRank(from)
	toRank := constants.StatusRank(to)
	if fromRank < 0 || toRank < 0 {
		return false, ErrUnknownStatus
	}
	if fromRank == toRank {
		return true, nil
	}
	if toRank < fromRank {
		return false, ErrBackwardTransition
	}
	return false, nil
}

// IsOverdue: status belum completed, target_date terisi, dan sudah lewat
// dari 'today' (keduanya string ISO YYYY-MM-DD). Tanggal kosong/rusak
// diperlakukan sebagai sentinel minimal sehingga tidak pernah overdue
// (string kosong bukan tanggal lampau yang valid).
func IsOverdue(status string, targetDate *string, today string) bool {
	if status == constants.StatusCompleted {
		return false
	}
	if targetDate == nil || *targetDate == "" {
		return false
	}
	return *targetDate < today
}
