package attendancehandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jung-kurt/gofpdf"

	"backoffice/internal/domain/attendance"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

var statusLabels = map[string]string{
	attendance.StatusPresent: "Hadir",
	attendance.StatusAbsent:  "Tidak Hadir",
	attendance.StatusLate:    "Terlambat",
	attendance.StatusLeave:   "Cuti",
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func exportFilter(r *http.Request) attendance.Filter {
	return attendance.Filter{
		EmployeeID: shared.QueryInt64(r, "employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		Status:     r.URL.Query().Get("status"),
	}
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ExportRows(r.Context(), exportFilter(r))
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal export data absensi", err)
		return
	}

	headers := []string{"Tanggal", "Kode Karyawan", "Nama Karyawan", "Check In", "Check Out", "Status", "Catatan"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			shared.FormatDateID(rec.Date),
			shared.Deref(rec.EmployeeCode, ""),
			shared.Deref(rec.EmployeeName, ""),
			shared.Deref(rec.CheckIn, "-"),
			shared.Deref(rec.CheckOut, "-"),
			statusLabel(rec.Status),
			shared.Deref(rec.Notes, ""),
		})
	}
	shared.WriteCSV(w, "absensi", headers, rows)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ExportRows(r.Context(), exportFilter(r))
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal export data absensi", err)
		return
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Laporan Absensi")
	pdf.Ln(12)

	colWidths := []float64{28, 35, 70, 25, 25, 30, 60}
	headers := []string{"Tanggal", "Kode", "Nama Karyawan", "Check In", "Check Out", "Status", "Catatan"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, rec := range records {
		cells := []string{
			shared.FormatDateID(rec.Date),
			shared.Deref(rec.EmployeeCode, ""),
			shared.Deref(rec.EmployeeName, ""),
			shared.Deref(rec.CheckIn, "-"),
			shared.Deref(rec.CheckOut, "-"),
			statusLabel(rec.Status),
			shared.Deref(rec.Notes, ""),
		}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	filename := fmt.Sprintf("absensi_%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := pdf.Output(w); err != nil {
		slog.Warn("pdf output failed", "err", err)
	}
}
