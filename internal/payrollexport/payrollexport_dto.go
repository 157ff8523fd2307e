package payrollexport

// UploadAttendanceFilter adalah query param untuk pratinjau data generate
// absensi sebelum diunggah ke ledger payroll.
type UploadAttendanceFilter struct {
	Totalcount string `form:"totalcount"`
	Tanggal    string `form:"tanggal"`
	TanggalEnd string `form:"tanggal_end"`
	Fcba       string `form:"fcba"`
	Afdeling   string `form:"afdeling"`
	Gangcode   string `form:"gangcode"`
}

// CandidateRow adalah satu baris hasil derivasi, siap ditampilkan aplikasi
// mobile. Semua angka sudah dinormalisasi menjadi string tanpa trailing zero.
type CandidateRow struct {
	Totalcount             string  `json:"totalcount"`
	ID                     string  `json:"id"`
	Afdeling               string  `json:"afdeling"`
	Gangcode               string  `json:"gangcode"`
	Fddate                 string  `json:"fddate"`
	Supervision1           string  `json:"supervision_1"`
	Supervision2           string  `json:"supervision_2"`
	Supervision3           string  `json:"supervision_3"`
	Supervision4           *string `json:"supervision_4"`
	Supervision5           *string `json:"supervision_5"`
	Employeecode           string  `json:"employeecode"`
	Attendance             string  `json:"attendance"`
	Jobcode                string  `json:"jobcode"`
	Locationtype           string  `json:"locationtype"`
	Locationcode           string  `json:"locationcode"`
	Mandays                string  `json:"mandays"`
	Othrs                  string  `json:"othrs"`
	Rate                   string  `json:"rate"`
	Unit                   string  `json:"unit"`
	Output                 string  `json:"output"`
	Reference              *string `json:"reference"`
	Remarks                string  `json:"remarks"`
	Fcentry                string  `json:"fcentry"`
	Fcedit                 string  `json:"fcedit"`
	Fcip                   *string `json:"fcip"`
	Fcba                   string  `json:"fcba"`
	Lastupdate             string  `json:"lastupdate"`
	Lasttime               string  `json:"lasttime"`
	Linenokey              string  `json:"linenokey"`
	OvertimeHours          string  `json:"overtime_hours"`
	TypeOvertime           string  `json:"type_overtime"`
	Chargejob              string  `json:"chargejob"`
	Chargetype             string  `json:"chargetype"`
	Chargecode             string  `json:"chargecode"`
	Bucket                 *string `json:"bucket"`
	Spbno                  *string `json:"spbno"`
	KgBrondolan            string  `json:"kg_brondolan"`
	Rowstate               string  `json:"rowstate"`
	DocumentClassification string  `json:"document_classification"`
	BasisBm                string  `json:"basis_bm"`
	KgJanjang              string  `json:"kg_janjang"`
	Bjr                    string  `json:"bjr"`
	Documentno             string  `json:"documentno"`
	Sourcetime             string  `json:"sourcetime"`
	Janjang                string  `json:"janjang"`
	Generate               string  `json:"generate"`
	Generatetime           string  `json:"generatetime"`
	Fieldcode              string  `json:"fieldcode"`
}

// ExportLine adalah satu baris kiriman klien untuk ditulis ke kedua ledger.
// Field wajib divalidasi di binding; sisanya boleh null dan diteruskan apa
// adanya ke kolom nullable.
type ExportLine struct {
	Gangcode               *string  `json:"gangcode"`
	Fddate                 string   `json:"fddate" binding:"required"`
	Supervision1           *string  `json:"supervision_1"`
	Supervision2           *string  `json:"supervision_2"`
	Supervision3           *string  `json:"supervision_3"`
	Supervision4           *string  `json:"supervision_4"`
	Supervision5           *string  `json:"supervision_5"`
	Employeecode           string   `json:"employeecode" binding:"required"`
	Attendance             string   `json:"attendance" binding:"required"`
	Jobcode                *string  `json:"jobcode"`
	Locationtype           *string  `json:"locationtype"`
	Locationcode           *string  `json:"locationcode"`
	Mandays                *float64 `json:"mandays"`
	Othrs                  *float64 `json:"othrs"`
	Rate                   *float64 `json:"rate"`
	Unit                   *float64 `json:"unit"`
	Output                 *float64 `json:"output"`
	Reference              *string  `json:"reference"`
	Remarks                *string  `json:"remarks"`
	Fcentry                *string  `json:"fcentry"`
	Fcedit                 *string  `json:"fcedit"`
	Fcip                   *string  `json:"fcip"`
	Fcba                   string   `json:"fcba" binding:"required"`
	OvertimeHours          *float64 `json:"overtime_hours"`
	TypeOvertime           *int     `json:"type_overtime"`
	Chargejob              *string  `json:"chargejob"`
	Chargetype             *string  `json:"chargetype"`
	Chargecode             *string  `json:"chargecode"`
	Bucket                 *string  `json:"bucket"`
	Spbno                  *string  `json:"spbno"`
	KgJanjang              *float64 `json:"kg_janjang"`
	KgBrondolan            *float64 `json:"kg_brondolan"`
	Rowstate               *string  `json:"rowstate"`
	DocumentClassification *int     `json:"document_classification"`
	BasisBm                *float64 `json:"basis_bm"`
	Bjr                    *float64 `json:"bjr"`
	Documentno             int64    `json:"documentno" binding:"required"`
	Janjang                *float64 `json:"janjang"`
	Generate               *string  `json:"generate"`
}

// ExportRequest adalah payload POST /upload/attendance.
type ExportRequest struct {
	Data []ExportLine `json:"data" binding:"required,min=1,dive"`
}

// ExportResult berisi nomor dokumen yang berhasil ditulis, urut sesuai
// payload. Saat sebagian gagal, daftar ini tetap berisi baris yang sudah
// commit sebelum kegagalan.
type ExportResult struct {
	Documentno []int64 `json:"documentno"`
}
