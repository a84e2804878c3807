package shared

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// WriteCSV streams a CSV attachment with a UTF-8 BOM so spreadsheet apps
// pick up the encoding. The filename gets today's date appended.
func WriteCSV(w http.ResponseWriter, baseName string, headers []string, rows [][]string) {
	filename := fmt.Sprintf("%s_%s.csv", baseName, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		slog.Warn("csv bom write failed", "err", err)
		return
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		slog.Warn("csv header write failed", "err", err)
		return
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			slog.Warn("csv row write failed", "err", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		slog.Warn("csv flush failed", "err", err)
	}
}

// Deref returns the string value or a dash placeholder, the export
// convention for empty cells.
func Deref(value *string, placeholder string) string {
	if value == nil || *value == "" {
		return placeholder
	}
	return *value
}
