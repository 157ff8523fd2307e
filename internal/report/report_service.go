package report

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/ridwanlawson/sips-api/internal/masterdata"
	"github.com/ridwanlawson/sips-api/internal/shared/apperror"
	"github.com/ridwanlawson/sips-api/internal/shared/numeric"
)

const dateLayout = "2006-01-02"
const timestampLayout = "2006-01-02 15:04:05"

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	HasilPanen(ctx context.Context, f HasilPanenFilter) ([]HasilPanenRow, error)
	HasilLangsir(ctx context.Context, f HasilLangsirFilter) ([]HasilLangsirRow, error)
	HasilPengangkutan(ctx context.Context, f PengangkutanFilter) ([]PengangkutanRow, error)
}

type service struct {
	repo   Repository
	master masterdata.Repository
}

func NewService(repo Repository, master masterdata.Repository) Service {
	return &service{repo: repo, master: master}
}

// HasilPanen membandingkan total panen per dokumen dengan total yang sudah
// diangkut. Status filter diterapkan setelah derivasi karena status bukan
// kolom tersimpan.
func (s *service) HasilPanen(ctx context.Context, f HasilPanenFilter) ([]HasilPanenRow, error) {
	dr, err := resolveDateRange(f.TanggalDari, f.TanggalSampai)
	if err != nil {
		return nil, err
	}

	groups, err := s.repo.HarvestGroups(ctx, f, dr)
	if err != nil {
		return nil, err
	}

	shipped, err := s.repo.ShippedTotals(ctx, dokumenOfHarvest(groups))
	if err != nil {
		return nil, err
	}

	rows := make([]HasilPanenRow, 0, len(groups))
	for _, g := range groups {
		status, informasi := deriveStatus(g.Output, shipped, g.Nodokumen)
		if f.Status != "" && status != f.Status {
			continue
		}
		rows = append(rows, HasilPanenRow{
			Nodokumen: g.Nodokumen,
			Tanggal:   g.Tanggal.Format(timestampLayout),
			Tph:       g.Tph,
			Blok:      g.Fieldcode,
			Afdeling:  g.Afdeling,
			Fcba:      g.Fcba,
			Janjang:   numeric.Normalize(g.Output),
			Status:    status,
			Informasi: informasi,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Nodokumen != b.Nodokumen {
			return a.Nodokumen < b.Nodokumen
		}
		if a.Tanggal != b.Tanggal {
			return a.Tanggal < b.Tanggal
		}
		if a.Status != b.Status {
			return a.Status < b.Status
		}
		if a.Tph != b.Tph {
			return a.Tph < b.Tph
		}
		return a.Blok < b.Blok
	})

	return rows, nil
}

// HasilLangsir membandingkan total leg langsir dengan total leg direct untuk
// dokumen yang sama. Konvensi tanda sengaja terbalik dari HasilPanen: sisa
// positif berarti masih ada janjang yang belum diteruskan ke leg direct.
func (s *service) HasilLangsir(ctx context.Context, f HasilLangsirFilter) ([]HasilLangsirRow, error) {
	dr, err := resolveDateRange(f.TanggalDari, f.TanggalSampai)
	if err != nil {
		return nil, err
	}

	groups, err := s.repo.ShuttleGroups(ctx, f, dr)
	if err != nil {
		return nil, err
	}

	direct, err := s.repo.DirectTotals(ctx, dokumenOfShuttle(groups))
	if err != nil {
		return nil, err
	}

	rows := make([]HasilLangsirRow, 0, len(groups))
	for _, g := range groups {
		sisa := g.Output - direct[g.Nodokumen]

		var status, informasi string
		switch {
		case sisa > 0:
			status = StatusBelum
			informasi = infoBelumSelesaiDiangkut
		case sisa < 0:
			status = StatusSelisih
			informasi = fmt.Sprintf("SELISIH : %s JJG", numeric.Normalize(sisa))
		default:
			status = StatusSelesai
			informasi = infoSelesaiDiangkut
		}
		if f.Status != "" && status != f.Status {
			continue
		}

		namaKendaraan, err := s.master.VehicleName(ctx, g.KodeKendaraan)
		if err != nil {
			return nil, err
		}

		rows = append(rows, HasilLangsirRow{
			Tanggal:          g.Tanggal.Format(timestampLayout),
			Nopengangkutan:   g.Nopengangkutan,
			Nodokumen:        g.Nodokumen,
			KodeKendaraan:    g.KodeKendaraan,
			NamaKendaraan:    namaKendaraan,
			TypePengangkutan: 1,
			Fcba:             g.Fcba,
			Afdeling:         g.Afdeling,
			Tujuan:           g.PabrikTujuan,
			Janjang:          numeric.Normalize(g.Output),
			JanjangDiangkut:  numeric.Normalize(direct[g.Nodokumen]),
			Sisa:             numeric.Normalize(sisa),
			Status:           status,
			Informasi:        informasi,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Tanggal != b.Tanggal {
			return a.Tanggal > b.Tanggal
		}
		if a.Nopengangkutan != b.Nopengangkutan {
			return a.Nopengangkutan > b.Nopengangkutan
		}
		return a.Nodokumen > b.Nodokumen
	})

	return rows, nil
}

func (s *service) HasilPengangkutan(ctx context.Context, f PengangkutanFilter) ([]PengangkutanRow, error) {
	dr, err := resolveDateRange(f.Tanggal, f.TanggalEnd)
	if err != nil {
		return nil, err
	}

	groups, err := s.repo.TransportGroups(ctx, f, dr)
	if err != nil {
		return nil, err
	}

	rows := make([]PengangkutanRow, 0, len(groups))
	for _, g := range groups {
		row := PengangkutanRow{
			Nopengangkutan:     g.Nopengangkutan,
			Nospb:              g.Nospb,
			Tanggal:            g.Tanggal.Format(timestampLayout),
			KodeKaryawanKerani: g.KodeKaryawanKerani,
			KodeKaryawanDriver: g.KodeKaryawanDriver,
			Tkbm1:              g.Tkbm1,
			Tkbm2:              g.Tkbm2,
			Tkbm3:              g.Tkbm3,
			Tkbm4:              g.Tkbm4,
			Tkbm5:              g.Tkbm5,
			TypePengangkutan:   g.TypePengangkutan,
			KodeKendaraan:      g.KodeKendaraan,
			Fcba:               g.Fcba,
			PabrikTujuan:       g.PabrikTujuan,
			Afdeling:           g.Afdeling,
			Totaljanjang:       numeric.Normalize(g.Totaljanjang),
			Output:             numeric.Normalize(g.Output),
			Janjangnormal:      numeric.Normalize(g.Janjangnormal),
			Brondolan:          numeric.Normalize(g.Brondolan),
		}

		if row.NamaKaryawanKerani, err = s.lookupName(ctx, g.KodeKaryawanKerani); err != nil {
			return nil, err
		}
		if row.NamaKaryawanDriver, err = s.lookupName(ctx, g.KodeKaryawanDriver); err != nil {
			return nil, err
		}
		if row.NamaTkbm1, err = s.lookupName(ctx, g.Tkbm1); err != nil {
			return nil, err
		}
		if row.NamaTkbm2, err = s.lookupName(ctx, g.Tkbm2); err != nil {
			return nil, err
		}
		if row.NamaTkbm3, err = s.lookupName(ctx, g.Tkbm3); err != nil {
			return nil, err
		}
		if row.NamaTkbm4, err = s.lookupName(ctx, g.Tkbm4); err != nil {
			return nil, err
		}
		if row.NamaTkbm5, err = s.lookupName(ctx, g.Tkbm5); err != nil {
			return nil, err
		}
		if row.NamaKendaraan, err = s.master.VehicleName(ctx, g.KodeKendaraan); err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func (s *service) lookupName(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", nil
	}
	return s.master.EmployeeName(ctx, code)
}

// deriveStatus: belum pernah diangkut => BELUM; total beda => SELISIH dengan
// selisih bertanda dalam satuan janjang; sama persis => SELESAI.
func deriveStatus(harvested float64, shipped map[string]float64, nodokumen string) (string, string) {
	total, ok := shipped[nodokumen]
	switch {
	case !ok:
		return StatusBelum, infoBelumDiangkut
	case harvested != total:
		return StatusSelisih, fmt.Sprintf("SELISIH : %s JJG", numeric.Normalize(harvested-total))
	default:
		return StatusSelesai, infoSelesaiDiangkut
	}
}

func dokumenOfHarvest(groups []HarvestGroup) []string {
	seen := make(map[string]struct{}, len(groups))
	docs := make([]string, 0, len(groups))
	for _, g := range groups {
		if _, ok := seen[g.Nodokumen]; ok {
			continue
		}
		seen[g.Nodokumen] = struct{}{}
		docs = append(docs, g.Nodokumen)
	}
	return docs
}

func dokumenOfShuttle(groups []ShuttleGroup) []string {
	seen := make(map[string]struct{}, len(groups))
	docs := make([]string, 0, len(groups))
	for _, g := range groups {
		if _, ok := seen[g.Nodokumen]; ok {
			continue
		}
		seen[g.Nodokumen] = struct{}{}
		docs = append(docs, g.Nodokumen)
	}
	return docs
}

// resolveDateRange memvalidasi format tanggal dan menukar rentang yang
// terbalik. Satu tanggal saja berarti filter hari itu persis.
func resolveDateRange(dari, sampai string) (DateRange, error) {
	var dr DateRange

	parse := func(v string) (*time.Time, error) {
		if v == "" {
			return nil, nil
		}
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, apperror.New(apperror.CodeInvalidInput, "Format tanggal harus YYYY-MM-DD", http.StatusBadRequest)
		}
		return &t, nil
	}

	from, err := parse(dari)
	if err != nil {
		return dr, err
	}
	to, err := parse(sampai)
	if err != nil {
		return dr, err
	}

	switch {
	case from != nil && to != nil:
		if from.After(*to) {
			from, to = to, from
		}
		dr.From, dr.To = from, to
	case from != nil:
		dr.From = from
	case to != nil:
		dr.From = to
	}
	return dr, nil
}
