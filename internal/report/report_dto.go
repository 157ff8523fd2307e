package report

import "time"

// Filter diterima apa adanya dari query string; semua optional. Tanggal harus
// YYYY-MM-DD dan rentang yang terbalik akan ditukar otomatis.

type HasilPanenFilter struct {
	Nodokumen     string
	TanggalDari   string
	TanggalSampai string
	Tph           string
	Blok          string
	Afdeling      string
	Fcba          string
	Status        string
}

type HasilLangsirFilter struct {
	Nopengangkutan string
	Nodokumen      string
	TanggalDari    string
	TanggalSampai  string
	KodeKendaraan  string
	Afdeling       string
	Fcba           string
	Tujuan         string
	Status         string
}

type PengangkutanFilter struct {
	Nopengangkutan     string
	Nospb              string
	Tanggal            string
	TanggalEnd         string
	KodeKaryawanKerani string
	KodeKaryawanDriver string
	Tkbm1              string
	Tkbm2              string
	Tkbm3              string
	Tkbm4              string
	Tkbm5              string
	TypePengangkutan   string
	KodeKendaraan      string
	Fcba               string
	PabrikTujuan       string
	Afdeling           string
}

// DateRange adalah hasil resolve filter tanggal: dua tanggal = rentang
// inklusif (sudah ditukar bila terbalik), satu tanggal = hari itu saja.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Status rekonsiliasi panen-vs-angkut.
const (
	StatusBelum   = "BELUM"
	StatusSelisih = "SELISIH"
	StatusSelesai = "SELESAI"
)

const (
	infoBelumDiangkut        = "BELUM DIANGKUT"
	infoBelumSelesaiDiangkut = "BELUM SELESAI DIANGKUT"
	infoSelesaiDiangkut      = "SELESAI DIANGKUT"
)

// HasilPanenRow adalah satu dokumen panen beserta status pengangkutannya.
type HasilPanenRow struct {
	Nodokumen string `json:"nodokumen"`
	Tanggal   string `json:"tanggal"`
	Tph       string `json:"tph"`
	Blok      string `json:"blok"`
	Afdeling  string `json:"afdeling"`
	Fcba      string `json:"fcba"`
	Janjang   string `json:"janjang"`
	Status    string `json:"status"`
	Informasi string `json:"informasi"`
}

// HasilLangsirRow membandingkan total leg langsir terhadap leg direct yang
// mereferensikan dokumen yang sama.
type HasilLangsirRow struct {
	Tanggal          string `json:"tanggal"`
	Nopengangkutan   string `json:"nopengangkutan"`
	Nodokumen        string `json:"nodokumen"`
	KodeKendaraan    string `json:"kode_kendaraan"`
	NamaKendaraan    string `json:"nama_kendaraan"`
	TypePengangkutan int    `json:"type_pengangkutan"`
	Fcba             string `json:"fcba"`
	Afdeling         string `json:"afdeling"`
	Tujuan           string `json:"tujuan"`
	Janjang          string `json:"janjang"`
	JanjangDiangkut  string `json:"janjang_diangkut"`
	Sisa             string `json:"sisa"`
	Status           string `json:"status"`
	Informasi        string `json:"informasi"`
}

// PengangkutanRow adalah ringkasan angkutan per nomor pengangkutan dengan
// nama-nama kru hasil lookup master data.
type PengangkutanRow struct {
	Nopengangkutan     string `json:"nopengangkutan"`
	Nospb              string `json:"nospb"`
	Tanggal            string `json:"tanggal"`
	KodeKaryawanKerani string `json:"kode_karyawan_kerani"`
	NamaKaryawanKerani string `json:"nama_karyawan_kerani"`
	KodeKaryawanDriver string `json:"kode_karyawan_driver"`
	NamaKaryawanDriver string `json:"nama_karyawan_driver"`
	Tkbm1              string `json:"tkbm1"`
	NamaTkbm1          string `json:"nama_tkbm1"`
	Tkbm2              string `json:"tkbm2"`
	NamaTkbm2          string `json:"nama_tkbm2"`
	Tkbm3              string `json:"tkbm3"`
	NamaTkbm3          string `json:"nama_tkbm3"`
	Tkbm4              string `json:"tkbm4"`
	NamaTkbm4          string `json:"nama_tkbm4"`
	Tkbm5              string `json:"tkbm5"`
	NamaTkbm5          string `json:"nama_tkbm5"`
	TypePengangkutan   int    `json:"type_pengangkutan"`
	KodeKendaraan      string `json:"kode_kendaraan"`
	NamaKendaraan      string `json:"nama_kendaraan"`
	Fcba               string `json:"fcba"`
	PabrikTujuan       string `json:"pabrik_tujuan"`
	Afdeling           string `json:"afdeling"`
	Totaljanjang       string `json:"totaljanjang"`
	Output             string `json:"output"`
	Janjangnormal      string `json:"janjangnormal"`
	Brondolan          string `json:"brondolan"`
}
