package masterdata

import "time"

// Registri referensi hasil tarik dari ERP. Semua read-only di sini; sinkronisasi
// dimiliki job import terpisah.

// Ancak adalah sub-plot kerja pemanen di dalam satu blok.
type Ancak struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Fcba      string    `gorm:"column:fcba;index"`
	Afdeling  string    `gorm:"column:afdeling"`
	Fieldcode string    `gorm:"column:fieldcode;index"`
	Noancak   string    `gorm:"column:noancak"`
	Luas      float64   `gorm:"column:luas"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Ancak) TableName() string {
	return "ancaks"
}

// Field adalah master blok dari ERP; PressemesterAbw (BJR) dipakai sebagai
// berat rata-rata janjang saat konversi ke kilogram.
type Field struct {
	ID             uint    `gorm:"column:id;primaryKey"`
	Fccode         string  `gorm:"column:fccode;index"`
	FieldInfo02    string  `gorm:"column:field_info_02;index"`
	Fcba           string  `gorm:"column:fcba"`
	PressemesterAbw float64 `gorm:"column:pressemester_abw"`
	Activation     string  `gorm:"column:activation"`
}

func (Field) TableName() string {
	return "fields"
}

type Employee struct {
	ID     uint   `gorm:"column:id;primaryKey"`
	Fccode string `gorm:"column:fccode;uniqueIndex"`
	Fcname string `gorm:"column:fcname"`
	Fcba   string `gorm:"column:fcba"`
}

func (Employee) TableName() string {
	return "employees"
}

type Vehicle struct {
	ID     uint   `gorm:"column:id;primaryKey"`
	Fccode string `gorm:"column:fccode;uniqueIndex"`
	Fcname string `gorm:"column:fcname"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// Job adalah master pekerjaan payroll; baris "POTONG BUAH" adalah job baseline
// untuk attendance panen reguler.
type Job struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	Fccode      string `gorm:"column:fccode;index"`
	Fcname      string `gorm:"column:fcname;index"`
	JobCategory string `gorm:"column:job_category"`
}

func (Job) TableName() string {
	return "jobs"
}

// BusinessUnitJobMapping memetakan unit bisnis tujuan assistensi ke job/charge
// payroll lintas estate.
type BusinessUnitJobMapping struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	Fcba        string `gorm:"column:fcba;uniqueIndex"`
	Fccode      string `gorm:"column:fccode"`
	JobCategory string `gorm:"column:job_category"`
}

func (BusinessUnitJobMapping) TableName() string {
	return "business_unit_job_mappings"
}
