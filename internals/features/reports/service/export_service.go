// file: internals/features/reports/service/export_service.go
package service

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"gurubank_backend/internals/constants"
	"gurubank_backend/internals/features/requests/dto"
)

// Header kolom export, urutan mengikuti laporan operasional.
var ExportHeaders = []string{
	"received_at",
	"institution",
	"education_type",
	"target_date",
	"time",
	"total_hours",
	"class_count",
	"student_count",
	"budget",
	"matched_group",
	"group_type",
	"status",
	"doc_agreement",
	"doc_estimate",
	"doc_plan",
	"doc_sex_offender",
}

// BuildCSV membentuk isi file export: UTF-8 BOM di depan supaya Excel
// membaca encoding dengan benar, lalu header + satu baris per request.
// Flag dokumen ditulis O/X seperti laporan manual yang digantikannya.
func BuildCSV(rows []dto.RequestListRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(ExportHeaders); err != nil {
		return nil, err
	}

	for i := range rows {
		if err := w.Write(ExportRow(&rows[i])); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportRow memetakan satu baris dashboard ke record CSV.
func ExportRow(row *dto.RequestListRow) []string {
	status := "in-progress"
	if row.Status == constants.StatusCompleted {
		status = "completed"
	}

	return []string{
		row.CreatedAt.Format("2006-01-02"),
		row.InstitutionName,
		row.EducationType,
		strOrEmpty(row.TargetDate),
		row.EduTime,
		strconv.Itoa(row.TotalHours),
		strconv.Itoa(row.ClassCount),
		strconv.Itoa(row.StudentCount),
		strconv.Itoa(row.Budget),
		strOrEmpty(row.MatchedGroupName),
		strOrEmpty(row.MatchedGroupType),
		status,
		oxMark(row.DocAgreement),
		oxMark(row.DocEstimate),
		oxMark(row.DocPlan),
		oxMark(row.DocSexOffender),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func oxMark(b *bool) string {
	if b != nil && *b {
		return "O"
	}
	return "X"
}
