package attendance

import (
	"time"
)

// AttendanceTypeRegular: karyawan bekerja di unit bisnisnya sendiri. Selain
// itu dianggap assistensi ke FcbaDestination.
const AttendanceTypeRegular = "REGULAR"

// Attendance adalah kehadiran satu karyawan per hari per konteks gang.
// Bisa berkorespondensi dengan 0..n record panen untuk hari yang sama.
type Attendance struct {
	ID                 uint      `gorm:"column:id;primaryKey"`
	Tanggal            time.Time `gorm:"column:tanggal;type:date;index"`
	KodeKaryawanMandor string    `gorm:"column:kode_karyawan_mandor"`
	KodeKaryawan       string    `gorm:"column:kode_karyawan;index"`
	TimeIn             *string   `gorm:"column:time_in"`
	TimeOut            *string   `gorm:"column:time_out"`
	AttendanceType     string    `gorm:"column:attendance_type"`
	Fcba               string    `gorm:"column:fcba;index"`
	FcbaDestination    string    `gorm:"column:fcba_destination"`
	Section            string    `gorm:"column:section"`
	Gang               string    `gorm:"column:gang"`
	Attendance         string    `gorm:"column:attendance"`
	Mandays            float64   `gorm:"column:mandays"`
	StatusAttendance   string    `gorm:"column:status_attendance"`
	MacAddress         *string   `gorm:"column:mac_address"`
	Flag               string    `gorm:"column:flag"`
	CreatedBy          string    `gorm:"column:created_by"`
	UpdatedBy          string    `gorm:"column:updated_by"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}
