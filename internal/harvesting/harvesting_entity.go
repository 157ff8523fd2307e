package harvesting

import (
	"time"
)

// Status hasil panen mengikuti alur approval di aplikasi mobile.
const (
	StatusPlanned              = "Planned"
	StatusAuthorizedOnProgress = "AuthorizedOnProgress"
	StatusApproved             = "Approved"
	StatusReject               = "Reject"
)

// Harvesting adalah record panen per TPH yang ditulis oleh flow capture di
// lapangan. Service di repo ini hanya membaca; mutasi status dimiliki
// collaborator CRUD di luar scope.
type Harvesting struct {
	ID                      uint      `gorm:"column:id;primaryKey"`
	Nodokumen               string    `gorm:"column:nodokumen;index"`
	Tanggal                 time.Time `gorm:"column:tanggal;type:date;index"`
	KodeKaryawanMandor1     string    `gorm:"column:kode_karyawan_mandor1"`
	KodeKaryawanMandorPanen string    `gorm:"column:kode_karyawan_mandor_panen"`
	KodeKaryawanKerani      string    `gorm:"column:kode_karyawan_kerani"`
	KodeKaryawan            string    `gorm:"column:kode_karyawan;index"`
	Noancak                 string    `gorm:"column:noancak"`
	Tph                     string    `gorm:"column:tph"`
	Fieldcode               string    `gorm:"column:fieldcode;index"`
	Output                  float64   `gorm:"column:output"`
	Mentah                  float64   `gorm:"column:mentah"`
	Overripe                float64   `gorm:"column:overripe"`
	Busuk                   float64   `gorm:"column:busuk"`
	Busuk2                  float64   `gorm:"column:busuk2"`
	Buahkecil               float64   `gorm:"column:buahkecil"`
	Parteno                 float64   `gorm:"column:parteno"`
	Brondol                 float64   `gorm:"column:brondol"`
	Alasbrondol             float64   `gorm:"column:alasbrondol"`
	Tangkaipanjang          float64   `gorm:"column:tangkaipanjang"`
	StatusAssistensi        string    `gorm:"column:status_assistensi"`
	StatusHarvesting        string    `gorm:"column:status_harvesting"`
	Afdeling                string    `gorm:"column:afdeling"`
	Fcba                    string    `gorm:"column:fcba;index"`
	Flag                    string    `gorm:"column:flag"`
	CreatedBy               string    `gorm:"column:created_by"`
	UpdatedBy               string    `gorm:"column:updated_by"`
	CreatedAt               time.Time `gorm:"column:created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at"`
}

func (Harvesting) TableName() string {
	return "harvesting"
}
