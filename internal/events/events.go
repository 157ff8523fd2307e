package events

import "time"

const TopicPayrollExported = "sips.payroll.exported"

// PayrollExported dipublikasikan setelah satu batch upload attendance selesai
// ditulis ke kedua ledger. Consumer di sisi payroll memakai ini untuk memicu
// regenerasi laporan gaji.
type PayrollExported struct {
	BatchID    string    `json:"batch_id"`
	LineCount  int       `json:"line_count"`
	Documentno []int64   `json:"documentno"`
	ExportedAt time.Time `json:"exported_at"`
}
