package constants

// ==========================
// ✅ Status Request (lifecycle)
// ==========================
const (
	StatusPending   = "pending"
	StatusMatched   = "matched"
	StatusCompleted = "completed"
)

var RequestStatuses = []string{
	StatusPending,
	StatusMatched,
	StatusCompleted,
}

// statusRank: urutan lifecycle, tidak boleh mundur
var statusRank = map[string]int{
	StatusPending:   0,
	StatusMatched:   1,
	StatusCompleted: 2,
}

func IsValidRequestStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// StatusRank mengembalikan posisi status di lifecycle (-1 kalau tidak dikenal)
func StatusRank(s string) int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

// ==========================
// ✅ Tipe Group
// ==========================
const (
	GroupTypeClub = "CLUB"
	GroupTypeCoop = "COOP"
)

var GroupTypes = []string{GroupTypeClub, GroupTypeCoop}

func IsValidGroupType(t string) bool {
	return t == GroupTypeClub || t == GroupTypeCoop
}

// ==========================
// ✅ Bidang Edukasi
// ==========================
const (
	EducationJobExperience   = "job-experience"
	EducationStudyCoaching   = "study-coaching"
	EducationSeniorCognitive = "senior-cognitive"
	EducationOther           = "other"
)

var EducationTypes = []string{
	EducationJobExperience,
	EducationStudyCoaching,
	EducationSeniorCognitive,
	EducationOther,
}

func IsValidEducationType(t string) bool {
	for _, v := range EducationTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ==========================
// ✅ Admin Status Match
// ==========================
// Satu kosakata kanonik. Nilai default "assigned"; dua nilai lain dipakai
// kalau policy "group-type" aktif (lihat configs.MatchAdminStatusPolicy).
const (
	AdminStatusAssigned      = "assigned"
	AdminStatusWaitingDocs   = "waiting_docs"
	AdminStatusContactShared = "contact_shared"
)

var MatchAdminStatuses = []string{
	AdminStatusAssigned,
	AdminStatusWaitingDocs,
	AdminStatusContactShared,
}

// Policy penentuan admin_status saat matching
const (
	AdminStatusPolicyDefault   = "default"    // selalu "assigned"
	AdminStatusPolicyGroupType = "group-type" // CLUB → waiting_docs, COOP → contact_shared
)

// ==========================
// ✅ Mode Filter Dashboard
// ==========================
const (
	FilterPending   = "pending"
	FilterMatched   = "matched"
	FilterCompleted = "completed"
	FilterThisMonth = "this-month"
	FilterAll       = "all"
)

var FilterModes = []string{
	FilterPending,
	FilterMatched,
	FilterCompleted,
	FilterThisMonth,
	FilterAll,
}

// Sentinel tanggal minimal untuk target_date kosong/rusak.
// Perbandingan tanggal memakai string ISO (YYYY-MM-DD), jadi sentinel ini
// selalu kalah dari tanggal valid mana pun.
const MinDateSentinel = "0000-00-00"
