package report

import (
	"context"
	"time"

	"github.com/ridwanlawson/sips-api/internal/harvesting"
	"github.com/ridwanlawson/sips-api/internal/pengangkutan"

	"gorm.io/gorm"
)

// HarvestGroup adalah agregat panen per (dokumen, tanggal, tph, blok,
// afdeling, fcba).
type HarvestGroup struct {
	Nodokumen string
	Tanggal   time.Time
	Tph       string
	Fieldcode string
	Afdeling  string
	Fcba      string
	Output    float64
}

// ShuttleGroup adalah agregat leg langsir per header pengangkutan.
type ShuttleGroup struct {
	Tanggal        time.Time
	Nopengangkutan string
	Nodokumen      string
	KodeKendaraan  string
	Fcba           string
	Afdeling       string
	PabrikTujuan   string
	Output         float64
}

// TransportGroup adalah agregat semua leg per nomor pengangkutan.
type TransportGroup struct {
	Nopengangkutan     string
	Nospb              string
	Tanggal            time.Time
	KodeKaryawanKerani string
	KodeKaryawanDriver string
	Tkbm1              string
	Tkbm2              string
	Tkbm3              string
	Tkbm4              string
	Tkbm5              string
	TypePengangkutan   int
	KodeKendaraan      string
	Fcba               string
	Afdeling           string
	PabrikTujuan       string
	Totaljanjang       float64
	Output             float64
	Janjangnormal      float64
	Brondolan          float64
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	HarvestGroups(ctx context.Context, f HasilPanenFilter, dr DateRange) ([]HarvestGroup, error)
	// ShippedTotals: total output pengangkutan per nodokumen. Dokumen yang
	// belum pernah diangkut tidak punya entry di map.
	ShippedTotals(ctx context.Context, nodokumen []string) (map[string]float64, error)
	ShuttleGroups(ctx context.Context, f HasilLangsirFilter, dr DateRange) ([]ShuttleGroup, error)
	// DirectTotals: total output leg direct (type 2) per nodokumen.
	DirectTotals(ctx context.Context, nodokumen []string) (map[string]float64, error)
	TransportGroups(ctx context.Context, f PengangkutanFilter, dr DateRange) ([]TransportGroup, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) HarvestGroups(ctx context.Context, f HasilPanenFilter, dr DateRange) ([]HarvestGroup, error) {
	q := r.db.WithContext(ctx).
		Model(&harvesting.Harvesting{}).
		Select("nodokumen, tanggal, tph, fieldcode, afdeling, fcba, SUM(output) AS output").
		Where("nodokumen IS NOT NULL AND nodokumen <> ''")

	if f.Nodokumen != "" {
		q = q.Where("nodokumen = ?", f.Nodokumen)
	}
	q = applyDateRange(q, "tanggal", dr)
	if f.Tph != "" {
		q = q.Where("tph = ?", f.Tph)
	}
	if f.Blok != "" {
		q = q.Where("fieldcode = ?", f.Blok)
	}
	if f.Afdeling != "" {
		q = q.Where("afdeling = ?", f.Afdeling)
	}
	if f.Fcba != "" {
		q = q.Where("fcba = ?", f.Fcba)
	}

	var rows []HarvestGroup
	err := q.Group("nodokumen, tanggal, tph, fieldcode, afdeling, fcba").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ShippedTotals(ctx context.Context, nodokumen []string) (map[string]float64, error) {
	return r.transportTotals(ctx, nodokumen, 0)
}

func (r *repository) DirectTotals(ctx context.Context, nodokumen []string) (map[string]float64, error) {
	return r.transportTotals(ctx, nodokumen, pengangkutan.TypeDirect)
}

func (r *repository) transportTotals(ctx context.Context, nodokumen []string, legType int) (map[string]float64, error) {
	totals := make(map[string]float64, len(nodokumen))
	if len(nodokumen) == 0 {
		return totals, nil
	}

	q := r.db.WithContext(ctx).
		Model(&pengangkutan.Pengangkutan{}).
		Select("nodokumen, SUM(output) AS output").
		Where("nodokumen IN ?", nodokumen)
	if legType != 0 {
		q = q.Where("type_pengangkutan = ?", legType)
	}

	var rows []struct {
		Nodokumen string
		Output    float64
	}
	if err := q.Group("nodokumen").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		totals[row.Nodokumen] = row.Output
	}
	return totals, nil
}

func (r *repository) ShuttleGroups(ctx context.Context, f HasilLangsirFilter, dr DateRange) ([]ShuttleGroup, error) {
	q := r.db.WithContext(ctx).
		Model(&pengangkutan.Pengangkutan{}).
		Select("tanggal, nopengangkutan, nodokumen, kode_kendaraan, fcba, afdeling, pabrik_tujuan, SUM(output) AS output").
		Where("type_pengangkutan = ?", pengangkutan.TypeLangsir).
		Where("nodokumen IS NOT NULL AND nodokumen <> ''")

	if f.Nopengangkutan != "" {
		q = q.Where("nopengangkutan = ?", f.Nopengangkutan)
	}
	if f.Nodokumen != "" {
		q = q.Where("nodokumen = ?", f.Nodokumen)
	}
	q = applyDateRange(q, "tanggal", dr)
	if f.KodeKendaraan != "" {
		q = q.Where("kode_kendaraan = ?", f.KodeKendaraan)
	}
	if f.Fcba != "" {
		q = q.Where("fcba = ?", f.Fcba)
	}
	if f.Afdeling != "" {
		q = q.Where("afdeling = ?", f.Afdeling)
	}
	if f.Tujuan != "" {
		q = q.Where("pabrik_tujuan = ?", f.Tujuan)
	}

	var rows []ShuttleGroup
	err := q.Group("tanggal, nopengangkutan, nodokumen, kode_kendaraan, fcba, afdeling, pabrik_tujuan").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TransportGroups(ctx context.Context, f PengangkutanFilter, dr DateRange) ([]TransportGroup, error) {
	q := r.db.WithContext(ctx).
		Model(&pengangkutan.Pengangkutan{}).
		Select("nopengangkutan, nospb, tanggal, kode_karyawan_kerani, kode_karyawan_driver, " +
			"tkbm1, tkbm2, tkbm3, tkbm4, tkbm5, type_pengangkutan, kode_kendaraan, fcba, afdeling, pabrik_tujuan, " +
			"COALESCE(SUM(totaljanjang), 0) AS totaljanjang, COALESCE(SUM(output), 0) AS output, " +
			"COALESCE(SUM(janjangnormal), 0) AS janjangnormal, COALESCE(SUM(brondolan), 0) AS brondolan").
		Where("tanggal IS NOT NULL")

	if f.Nopengangkutan != "" {
		q = q.Where("nopengangkutan = ?", f.Nopengangkutan)
	}
	if f.Nospb != "" {
		q = q.Where("nospb = ?", f.Nospb)
	}
	q = applyDateRange(q, "tanggal", dr)
	if f.KodeKaryawanKerani != "" {
		q = q.Where("kode_karyawan_kerani = ?", f.KodeKaryawanKerani)
	}
	if f.KodeKaryawanDriver != "" {
		q = q.Where("kode_karyawan_driver = ?", f.KodeKaryawanDriver)
	}
	if f.Tkbm1 != "" {
		q = q.Where("tkbm1 = ?", f.Tkbm1)
	}
	if f.Tkbm2 != "" {
		q = q.Where("tkbm2 = ?", f.Tkbm2)
	}
	if f.Tkbm3 != "" {
		q = q.Where("tkbm3 = ?", f.Tkbm3)
	}
	if f.Tkbm4 != "" {
		q = q.Where("tkbm4 = ?", f.Tkbm4)
	}
	if f.Tkbm5 != "" {
		q = q.Where("tkbm5 = ?", f.Tkbm5)
	}
	if f.TypePengangkutan != "" {
		q = q.Where("type_pengangkutan = ?", f.TypePengangkutan)
	}
	if f.KodeKendaraan != "" {
		q = q.Where("kode_kendaraan = ?", f.KodeKendaraan)
	}
	if f.Fcba != "" {
		q = q.Where("fcba = ?", f.Fcba)
	}
	if f.PabrikTujuan != "" {
		q = q.Where("pabrik_tujuan = ?", f.PabrikTujuan)
	}
	if f.Afdeling != "" {
		q = q.Where("afdeling = ?", f.Afdeling)
	}

	var rows []TransportGroup
	err := q.Group("nopengangkutan, nospb, tanggal, kode_karyawan_kerani, kode_karyawan_driver, " +
		"tkbm1, tkbm2, tkbm3, tkbm4, tkbm5, type_pengangkutan, kode_kendaraan, fcba, afdeling, pabrik_tujuan").
		Order("tanggal DESC, nopengangkutan DESC, nospb DESC").
		Scan(&rows).Error
	return rows, err
}

// applyDateRange: dua tanggal = BETWEEN inklusif, satu tanggal = hari itu.
func applyDateRange(q *gorm.DB, column string, dr DateRange) *gorm.DB {
	switch {
	case dr.From != nil && dr.To != nil:
		return q.Where(column+" BETWEEN ? AND ?", *dr.From, *dr.To)
	case dr.From != nil:
		return q.Where(column+" = ?", *dr.From)
	default:
		return q
	}
}
