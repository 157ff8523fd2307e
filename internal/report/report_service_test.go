package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/ridwanlawson/sips-api/internal/masterdata"
	"github.com/ridwanlawson/sips-api/internal/report"

	"github.com/stretchr/testify/assert"
)

type fakeReportRepository struct {
	harvestGroupsFn   func(ctx context.Context, f report.HasilPanenFilter) ([]report.HarvestGroup, error)
	shippedTotalsFn   func(ctx context.Context, nodokumen []string) (map[string]float64, error)
	shuttleGroupsFn   func(ctx context.Context, f report.HasilLangsirFilter) ([]report.ShuttleGroup, error)
	directTotalsFn    func(ctx context.Context, nodokumen []string) (map[string]float64, error)
	transportGroupsFn func(ctx context.Context, f report.PengangkutanFilter) ([]report.TransportGroup, error)

	gotFrom *time.Time
	gotTo   *time.Time
}

func (f *fakeReportRepository) HarvestGroups(ctx context.Context, filter report.HasilPanenFilter, dr report.DateRange) ([]report.HarvestGroup, error) {
	f.gotFrom, f.gotTo = dr.From, dr.To
	if f.harvestGroupsFn != nil {
		return f.harvestGroupsFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeReportRepository) ShippedTotals(ctx context.Context, nodokumen []string) (map[string]float64, error) {
	if f.shippedTotalsFn != nil {
		return f.shippedTotalsFn(ctx, nodokumen)
	}
	return map[string]float64{}, nil
}

func (f *fakeReportRepository) ShuttleGroups(ctx context.Context, filter report.HasilLangsirFilter, dr report.DateRange) ([]report.ShuttleGroup, error) {
	f.gotFrom, f.gotTo = dr.From, dr.To
	if f.shuttleGroupsFn != nil {
		return f.shuttleGroupsFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeReportRepository) DirectTotals(ctx context.Context, nodokumen []string) (map[string]float64, error) {
	if f.directTotalsFn != nil {
		return f.directTotalsFn(ctx, nodokumen)
	}
	return map[string]float64{}, nil
}

func (f *fakeReportRepository) TransportGroups(ctx context.Context, filter report.PengangkutanFilter, dr report.DateRange) ([]report.TransportGroup, error) {
	f.gotFrom, f.gotTo = dr.From, dr.To
	if f.transportGroupsFn != nil {
		return f.transportGroupsFn(ctx, filter)
	}
	return nil, nil
}

type fakeNameRepository struct {
	employees map[string]string
	vehicles  map[string]string
}

func (f *fakeNameRepository) EmployeeName(ctx context.Context, code string) (string, error) {
	return f.employees[code], nil
}

func (f *fakeNameRepository) VehicleName(ctx context.Context, code string) (string, error) {
	return f.vehicles[code], nil
}

func (f *fakeNameRepository) HarvestJob(ctx context.Context) (masterdata.JobRef, error) {
	return masterdata.JobRef{}, nil
}

func (f *fakeNameRepository) DestinationJob(ctx context.Context, fcba string) (masterdata.JobRef, error) {
	return masterdata.JobRef{}, nil
}

func harvestGroup(doc string, output float64) report.HarvestGroup {
	return report.HarvestGroup{
		Nodokumen: doc,
		Tanggal:   time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Tph:       "T01",
		Fieldcode: "F001",
		Afdeling:  "AFD1",
		Fcba:      "BA01",
		Output:    output,
	}
}

func TestReportService_HasilPanen_StatusDerivation(t *testing.T) {
	repo := &fakeReportRepository{
		harvestGroupsFn: func(ctx context.Context, f report.HasilPanenFilter) ([]report.HarvestGroup, error) {
			return []report.HarvestGroup{
				harvestGroup("DOC-A", 120), // belum pernah diangkut
				harvestGroup("DOC-B", 120), // kurang angkut 20
				harvestGroup("DOC-C", 120), // pas
			}, nil
		},
		shippedTotalsFn: func(ctx context.Context, nodokumen []string) (map[string]float64, error) {
			assert.ElementsMatch(t, []string{"DOC-A", "DOC-B", "DOC-C"}, nodokumen)
			return map[string]float64{"DOC-B": 100, "DOC-C": 120}, nil
		},
	}
	svc := report.NewService(repo, &fakeNameRepository{})

	rows, err := svc.HasilPanen(context.Background(), report.HasilPanenFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	byDoc := map[string]report.HasilPanenRow{}
	for _, r := range rows {
		byDoc[r.Nodokumen] = r
	}
	assert.Equal(t, report.StatusBelum, byDoc["DOC-A"].Status)
	assert.Equal(t, "BELUM DIANGKUT", byDoc["DOC-A"].Informasi)
	assert.Equal(t, report.StatusSelisih, byDoc["DOC-B"].Status)
	assert.Equal(t, "SELISIH : 20 JJG", byDoc["DOC-B"].Informasi)
	assert.Equal(t, report.StatusSelesai, byDoc["DOC-C"].Status)
	assert.Equal(t, "SELESAI DIANGKUT", byDoc["DOC-C"].Informasi)
	assert.Equal(t, "120", byDoc["DOC-C"].Janjang)
}

func TestReportService_HasilPanen_StatusFilterAppliedAfterDerivation(t *testing.T) {
	repo := &fakeReportRepository{
		harvestGroupsFn: func(ctx context.Context, f report.HasilPanenFilter) ([]report.HarvestGroup, error) {
			return []report.HarvestGroup{harvestGroup("DOC-A", 120), harvestGroup("DOC-B", 120)}, nil
		},
		shippedTotalsFn: func(ctx context.Context, nodokumen []string) (map[string]float64, error) {
			return map[string]float64{"DOC-B": 120}, nil
		},
	}
	svc := report.NewService(repo, &fakeNameRepository{})

	rows, err := svc.HasilPanen(context.Background(), report.HasilPanenFilter{Status: report.StatusSelesai})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "DOC-B", rows[0].Nodokumen)
}

func TestReportService_HasilPanen_ReversedRangeSwapped(t *testing.T) {
	repo := &fakeReportRepository{}
	svc := report.NewService(repo, &fakeNameRepository{})

	_, err := svc.HasilPanen(context.Background(), report.HasilPanenFilter{
		TanggalDari:   "2025-07-31",
		TanggalSampai: "2025-07-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2025-07-01", repo.gotFrom.Format("2006-01-02"))
	assert.Equal(t, "2025-07-31", repo.gotTo.Format("2006-01-02"))
}

func TestReportService_HasilPanen_SingleDateExactDay(t *testing.T) {
	repo := &fakeReportRepository{}
	svc := report.NewService(repo, &fakeNameRepository{})

	_, err := svc.HasilPanen(context.Background(), report.HasilPanenFilter{TanggalDari: "2025-07-10"})

	assert.NoError(t, err)
	assert.Equal(t, "2025-07-10", repo.gotFrom.Format("2006-01-02"))
	assert.Nil(t, repo.gotTo)
}

func TestReportService_HasilPanen_BadDateRejected(t *testing.T) {
	svc := report.NewService(&fakeReportRepository{}, &fakeNameRepository{})

	_, err := svc.HasilPanen(context.Background(), report.HasilPanenFilter{TanggalDari: "10/07/2025"})

	assert.Error(t, err)
}

func shuttleGroup(doc string, output float64) report.ShuttleGroup {
	return report.ShuttleGroup{
		Tanggal:        time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Nopengangkutan: "PG-" + doc,
		Nodokumen:      doc,
		KodeKendaraan:  "V01",
		Fcba:           "BA01",
		Afdeling:       "AFD1",
		PabrikTujuan:   "PKS1",
		Output:         output,
	}
}

// Konvensi tanda langsir terbalik dari panen: sisa positif = masih tertahan,
// sisa negatif = leg direct mengangkut lebih banyak dari yang dilangsir.
func TestReportService_HasilLangsir_InvertedSign(t *testing.T) {
	repo := &fakeReportRepository{
		shuttleGroupsFn: func(ctx context.Context, f report.HasilLangsirFilter) ([]report.ShuttleGroup, error) {
			return []report.ShuttleGroup{
				shuttleGroup("DOC-A", 100), // direct 40 -> sisa 60
				shuttleGroup("DOC-B", 100), // direct 130 -> sisa -30
				shuttleGroup("DOC-C", 100), // direct 100 -> pas
			}, nil
		},
		directTotalsFn: func(ctx context.Context, nodokumen []string) (map[string]float64, error) {
			return map[string]float64{"DOC-A": 40, "DOC-B": 130, "DOC-C": 100}, nil
		},
	}
	svc := report.NewService(repo, &fakeNameRepository{vehicles: map[string]string{"V01": "TRUCK 01"}})

	rows, err := svc.HasilLangsir(context.Background(), report.HasilLangsirFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	byDoc := map[string]report.HasilLangsirRow{}
	for _, r := range rows {
		byDoc[r.Nodokumen] = r
	}

	assert.Equal(t, report.StatusBelum, byDoc["DOC-A"].Status)
	assert.Equal(t, "BELUM SELESAI DIANGKUT", byDoc["DOC-A"].Informasi)
	assert.Equal(t, "60", byDoc["DOC-A"].Sisa)

	assert.Equal(t, report.StatusSelisih, byDoc["DOC-B"].Status)
	assert.Equal(t, "SELISIH : -30 JJG", byDoc["DOC-B"].Informasi)
	assert.Equal(t, "-30", byDoc["DOC-B"].Sisa)

	assert.Equal(t, report.StatusSelesai, byDoc["DOC-C"].Status)
	assert.Equal(t, "0", byDoc["DOC-C"].Sisa)
	assert.Equal(t, "TRUCK 01", byDoc["DOC-C"].NamaKendaraan)
}

func TestReportService_HasilPengangkutan_NameLookups(t *testing.T) {
	repo := &fakeReportRepository{
		transportGroupsFn: func(ctx context.Context, f report.PengangkutanFilter) ([]report.TransportGroup, error) {
			return []report.TransportGroup{{
				Nopengangkutan:     "PG-001",
				Tanggal:            time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
				KodeKaryawanKerani: "E001",
				KodeKaryawanDriver: "E002",
				Tkbm1:              "E003",
				KodeKendaraan:      "V01",
				Totaljanjang:       150.5000,
				Output:             150.5,
			}}, nil
		},
	}
	master := &fakeNameRepository{
		employees: map[string]string{"E001": "ANDI", "E002": "BUDI", "E003": "CITRA"},
		vehicles:  map[string]string{"V01": "TRUCK 01"},
	}
	svc := report.NewService(repo, master)

	rows, err := svc.HasilPengangkutan(context.Background(), report.PengangkutanFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "ANDI", rows[0].NamaKaryawanKerani)
	assert.Equal(t, "BUDI", rows[0].NamaKaryawanDriver)
	assert.Equal(t, "CITRA", rows[0].NamaTkbm1)
	assert.Equal(t, "", rows[0].NamaTkbm2) // kode kosong tidak di-lookup
	assert.Equal(t, "TRUCK 01", rows[0].NamaKendaraan)
	assert.Equal(t, "150.5", rows[0].Totaljanjang)
}
