// file: internals/features/matches/service/matching_service.go
package service

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"gurubank_backend/internals/constants"
	groupModel "gurubank_backend/internals/features/groups/model"
	"gurubank_backend/internals/features/matches/model"
	requestModel "gurubank_backend/internals/features/requests/model"
)

var (
	ErrRequestNotFound  = errors.New("request tidak ditemukan")
	ErrGroupNotFound    = errors.New("group tidak ditemukan")
	ErrRequestCompleted = errors.New("request sudah completed")
	ErrMatchConflict    = errors.New("match sedang diproses oleh request lain")
)

// AdminStatusFor menentukan admin_status awal sebuah match menurut policy:
//   - default:    selalu "assigned"
//   - group-type: CLUB → waiting_docs (kumpulkan dokumen dulu),
//     COOP → contact_shared (kontak langsung dibagikan)
func AdminStatusFor(policy, groupType string) string {
	if policy == constants.AdminStatusPolicyGroupType {
		switch groupType {
		case constants.GroupTypeClub:
			return constants.AdminStatusWaitingDocs
		case constants.GroupTypeCoop:
			return constants.AdminStatusContactShared
		}
	}
	return constants.AdminStatusAssigned
}

type MatchingService struct {
	DB     *gorm.DB
	Policy string
}

func NewMatchingService(db *gorm.DB, policy string) *MatchingService {
	return &MatchingService{DB: db, Policy: policy}
}

// Match menjalankan upsert match + update status request dalam SATU transaksi:
//   - request harus ada dan belum completed (rematch request completed ditolak)
//   - group harus ada (tidak boleh bikin match nggantung)
//   - kalau match untuk request_id sudah ada → overwrite group_id dan reset
//     admin_status; flag dokumen TIDAK disentuh
//   - status request di-set "matched" di transaksi yang sama
//
// Race dua caller yang insert bersamaan ditangkap unique index request_id
// dan diterjemahkan ke ErrMatchConflict.
func (s *MatchingService) Match(requestID, groupID int) (*model.MatchModel, error) {
	var match model.MatchModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var request requestModel.RequestModel
		if err := tx.First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if request.Status == constants.StatusCompleted {
			return ErrRequestCompleted
		}

		var group groupModel.GroupModel
		if err := tx.First(&group, groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroupNotFound
			}
			return err
		}

		adminStatus := AdminStatusFor(s.Policy, group.Type)

		err := tx.Where("request_id = ?", requestID).First(&match).Error
		switch {
		case err == nil:
			// rematch: overwrite group + reset admin_status, dokumen dibiarkan
			if err := tx.Model(&match).Updates(map[string]interface{}{
				"group_id":     groupID,
				"admin_status": adminStatus,
			}).Error; err != nil {
				return err
			}
			match.GroupID = groupID
			match.AdminStatus = adminStatus
		case errors.Is(err, gorm.ErrRecordNotFound):
			match = model.MatchModel{
				RequestID:   requestID,
				GroupID:     groupID,
				AdminStatus: adminStatus,
			}
			if err := tx.Create(&match).Error; err != nil {
				if isUniqueViolation(err) {
					return ErrMatchConflict
				}
				return err
			}
		default:
			return err
		}

		return tx.Model(&request).Update("status", constants.StatusMatched).Error
	})
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// isUniqueViolation: deteksi pelanggaran unique index dari DB
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
