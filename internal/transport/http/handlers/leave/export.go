package leavehandler

import (
	"net/http"

	"backoffice/internal/domain/leave"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/shared"
)

var leaveTypeLabels = map[string]string{
	"annual":    "Cuti Tahunan",
	"sick":      "Cuti Sakit",
	"maternity": "Cuti Melahirkan",
	"unpaid":    "Cuti Tanpa Gaji",
	"other":     "Lainnya",
}

var leaveStatusLabels = map[string]string{
	leave.StatusPending:  "Menunggu",
	leave.StatusApproved: "Disetujui",
	leave.StatusRejected: "Ditolak",
}

func label(labels map[string]string, key string) string {
	if value, ok := labels[key]; ok {
		return value
	}
	return key
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	filter := leave.Filter{
		EmployeeID: shared.QueryInt64(r, "employee_id"),
		Status:     r.URL.Query().Get("status"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	leaves, err := h.Store.List(r.Context(), filter)
	if err != nil {
		api.FailError(w, http.StatusInternalServerError, "Gagal export data cuti", err)
		return
	}

	headers := []string{"Kode Karyawan", "Nama Karyawan", "Jenis Cuti", "Tanggal Mulai", "Tanggal Selesai", "Alasan", "Status", "Tanggal Pengajuan", "Diproses Oleh", "Tanggal Diproses"}
	rows := make([][]string, 0, len(leaves))
	for _, l := range leaves {
		approvedAt := "-"
		if l.ApprovedAt != nil {
			approvedAt = shared.FormatDateID(*l.ApprovedAt)
		}
		rows = append(rows, []string{
			shared.Deref(l.EmployeeCode, ""),
			shared.Deref(l.EmployeeName, ""),
			label(leaveTypeLabels, l.LeaveType),
			shared.FormatDateID(l.StartDate),
			shared.FormatDateID(l.EndDate),
			shared.Deref(l.Reason, ""),
			label(leaveStatusLabels, l.Status),
			shared.FormatDateID(l.CreatedAt),
			shared.Deref(l.ApprovedByName, "-"),
			approvedAt,
		})
	}
	shared.WriteCSV(w, "cuti", headers, rows)
}
