package pengangkutan

import (
	"time"
)

// Type pengangkutan: langsir adalah leg antara ke titik staging, direct
// adalah leg final ke pabrik.
const (
	TypeLangsir = 1
	TypeDirect  = 2
)

// Pengangkutan adalah satu leg angkutan yang mereferensikan nodokumen panen.
// Satu dokumen panen bisa dikirim bertahap (beberapa baris per nodokumen).
type Pengangkutan struct {
	ID                 uint      `gorm:"column:id;primaryKey"`
	Nopengangkutan     string    `gorm:"column:nopengangkutan;index"`
	Nospb              string    `gorm:"column:nospb"`
	Nodokumen          string    `gorm:"column:nodokumen;index"`
	Tanggal            time.Time `gorm:"column:tanggal;type:date;index"`
	KodeKaryawanKerani string    `gorm:"column:kode_karyawan_kerani"`
	KodeKaryawanDriver string    `gorm:"column:kode_karyawan_driver"`
	Tkbm1              string    `gorm:"column:tkbm1"`
	Tkbm2              string    `gorm:"column:tkbm2"`
	Tkbm3              string    `gorm:"column:tkbm3"`
	Tkbm4              string    `gorm:"column:tkbm4"`
	Tkbm5              string    `gorm:"column:tkbm5"`
	TypePengangkutan   int       `gorm:"column:type_pengangkutan;index"`
	KodeKendaraan      string    `gorm:"column:kode_kendaraan"`
	Tph                string    `gorm:"column:tph"`
	Fieldcode          string    `gorm:"column:fieldcode"`
	Totaljanjang       float64   `gorm:"column:totaljanjang"`
	Output             float64   `gorm:"column:output"`
	Janjangnormal      float64   `gorm:"column:janjangnormal"`
	Brondolan          float64   `gorm:"column:brondolan"`
	StatusPengangkutan string    `gorm:"column:status_pengangkutan"`
	Afdeling           string    `gorm:"column:afdeling"`
	Fcba               string    `gorm:"column:fcba;index"`
	PabrikTujuan       string    `gorm:"column:pabrik_tujuan"`
	Flag               string    `gorm:"column:flag"`
	CreatedBy          string    `gorm:"column:created_by"`
	UpdatedBy          string    `gorm:"column:updated_by"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (Pengangkutan) TableName() string {
	return "pengangkutan"
}
