package numeric

import (
	"math"

	"github.com/shopspring/decimal"
)

// Paket ini menstabilkan representasi angka sebelum keluar dari sistem.
// Nilai fixed-point dari database sering membawa trailing zero atau presisi
// berlebih (1.5000, 0.4250001); payroll di sisi lain membandingkan hasil
// export secara tekstual, jadi formatnya harus deterministik.

// Normalize membulatkan ke 3 desimal lalu membuang trailing zero dan titik
// desimal menggantung. "0.5" selalu ditulis dengan leading zero, tidak ".5".
func Normalize(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return decimal.NewFromFloat(v).Round(3).String()
}

// NormalizePtr mempertahankan null: nil masuk, nil keluar.
func NormalizePtr(v *float64) *string {
	if v == nil {
		return nil
	}
	s := Normalize(*v)
	return &s
}

// NormalizeString menormalkan string numerik apa adanya; string yang tidak
// bisa diparse dikembalikan tanpa diubah.
func NormalizeString(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.Round(3).String()
}

// ZeroIfInvalid memaksa input numerik sumber menjadi 0 ketika negatif atau
// bukan angka. Share hasil pembagian tidak boleh membawa NaN/nilai liar.
func ZeroIfInvalid(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
