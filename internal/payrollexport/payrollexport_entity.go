package payrollexport

import "time"

// Nama tabel ledger tujuan di sistem payroll. attendance_gad permanen,
// attendance_gad_temp bisa diregenerasi oleh sisi payroll.
const (
	LedgerPermanent = "attendance_gad"
	LedgerStaging   = "attendance_gad_temp"
)

// Nilai tetap yang dibawa setiap baris hasil generate.
const (
	DefaultJobcode       = "505030101"
	remarkSource         = "SIPS MOBILE"
	remarkGenerate       = "SIPS MOBILE GENERATE"
	rowstateApproved     = "Approved"
	documentClassHarvest = 501
	locationCodeAssist   = "BS"
)

// AttendanceGad adalah satu baris ledger permanen. Kolom mengikuti skema
// payroll apa adanya; field opsional nullable.
type AttendanceGad struct {
	Gangcode               *string   `gorm:"column:gangcode"`
	Fddate                 time.Time `gorm:"column:fddate"`
	Supervision1           *string   `gorm:"column:supervision_1"`
	Supervision2           *string   `gorm:"column:supervision_2"`
	Supervision3           *string   `gorm:"column:supervision_3"`
	Supervision4           *string   `gorm:"column:supervision_4"`
	Supervision5           *string   `gorm:"column:supervision_5"`
	Employeecode           string    `gorm:"column:employeecode"`
	Attendance             string    `gorm:"column:attendance"`
	Jobcode                string    `gorm:"column:jobcode"`
	Locationtype           *string   `gorm:"column:locationtype"`
	Locationcode           *string   `gorm:"column:locationcode"`
	Mandays                *float64  `gorm:"column:mandays"`
	Othrs                  *float64  `gorm:"column:othrs"`
	Rate                   *float64  `gorm:"column:rate"`
	Unit                   *float64  `gorm:"column:unit"`
	Output                 *float64  `gorm:"column:output"`
	Reference              *string   `gorm:"column:reference"`
	Remarks                *string   `gorm:"column:remarks"`
	Fcentry                *string   `gorm:"column:fcentry"`
	Fcedit                 *string   `gorm:"column:fcedit"`
	Fcip                   *string   `gorm:"column:fcip"`
	Fcba                   string    `gorm:"column:fcba"`
	Lastupdate             time.Time `gorm:"column:lastupdate"`
	Lasttime               string    `gorm:"column:lasttime"`
	Linenokey              int64     `gorm:"column:linenokey;uniqueIndex"`
	OvertimeHours          *float64  `gorm:"column:overtime_hours"`
	TypeOvertime           *int      `gorm:"column:type_overtime"`
	Chargejob              *string   `gorm:"column:chargejob"`
	Chargetype             *string   `gorm:"column:chargetype"`
	Chargecode             *string   `gorm:"column:chargecode"`
	Bucket                 *string   `gorm:"column:bucket"`
	Spbno                  *string   `gorm:"column:spbno"`
	KgJanjang              *float64  `gorm:"column:kg_janjang"`
	KgBrondolan            *float64  `gorm:"column:kg_brondolan"`
	Rowstate               *string   `gorm:"column:rowstate"`
	DocumentClassification *int      `gorm:"column:document_classification"`
	BasisBm                *float64  `gorm:"column:basis_bm"`
	Bjr                    *float64  `gorm:"column:bjr"`
	Documentno             int64     `gorm:"column:documentno;index"`
}

func (AttendanceGad) TableName() string {
	return LedgerPermanent
}

// AttendanceGadTemp adalah baris ledger staging; payload bisnisnya identik
// dengan AttendanceGad plus kolom janjang/generate/generatetime.
type AttendanceGadTemp struct {
	Gangcode               *string   `gorm:"column:gangcode"`
	Fddate                 time.Time `gorm:"column:fddate"`
	Supervision1           *string   `gorm:"column:supervision_1"`
	Supervision2           *string   `gorm:"column:supervision_2"`
	Supervision3           *string   `gorm:"column:supervision_3"`
	Supervision4           *string   `gorm:"column:supervision_4"`
	Supervision5           *string   `gorm:"column:supervision_5"`
	Employeecode           string    `gorm:"column:employeecode"`
	Attendance             string    `gorm:"column:attendance"`
	Jobcode                string    `gorm:"column:jobcode"`
	Locationtype           *string   `gorm:"column:locationtype"`
	Locationcode           *string   `gorm:"column:locationcode"`
	Mandays                *float64  `gorm:"column:mandays"`
	Othrs                  *float64  `gorm:"column:othrs"`
	Rate                   *float64  `gorm:"column:rate"`
	Unit                   *float64  `gorm:"column:unit"`
	Output                 *float64  `gorm:"column:output"`
	Reference              *string   `gorm:"column:reference"`
	Remarks                *string   `gorm:"column:remarks"`
	Fcentry                *string   `gorm:"column:fcentry"`
	Fcedit                 *string   `gorm:"column:fcedit"`
	Fcip                   *string   `gorm:"column:fcip"`
	Fcba                   string    `gorm:"column:fcba"`
	Lastupdate             time.Time `gorm:"column:lastupdate"`
	Lasttime               string    `gorm:"column:lasttime"`
	Linenokey              int64     `gorm:"column:linenokey;uniqueIndex"`
	OvertimeHours          *float64  `gorm:"column:overtime_hours"`
	TypeOvertime           *int      `gorm:"column:type_overtime"`
	Chargejob              *string   `gorm:"column:chargejob"`
	Chargetype             *string   `gorm:"column:chargetype"`
	Chargecode             *string   `gorm:"column:chargecode"`
	Janjang                *float64  `gorm:"column:janjang"`
	Rowstate               *string   `gorm:"column:rowstate"`
	DocumentClassification *int      `gorm:"column:document_classification"`
	Generate               *string   `gorm:"column:generate"`
	Generatetime           time.Time `gorm:"column:generatetime"`
	BasisBm                *float64  `gorm:"column:basis_bm"`
	KgJanjang              *float64  `gorm:"column:kg_janjang"`
	Bjr                    *float64  `gorm:"column:bjr"`
	Documentno             int64     `gorm:"column:documentno;index"`
}

func (AttendanceGadTemp) TableName() string {
	return LedgerStaging
}
