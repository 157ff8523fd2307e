package payrollexport

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridwanlawson/sips-api/internal/attendance"
	"github.com/ridwanlawson/sips-api/internal/events"
	"github.com/ridwanlawson/sips-api/internal/masterdata"
	"github.com/ridwanlawson/sips-api/internal/shared/apperror"
	"github.com/ridwanlawson/sips-api/internal/shared/numeric"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
	clockLayout     = "15:04"
)

// EventPublisher menyiarkan batch yang sudah commit. Publikasi best-effort;
// kegagalan tidak membatalkan data yang sudah tertulis.
type EventPublisher interface {
	PublishExported(ctx context.Context, evt events.PayrollExported) error
}

//go:generate mockgen -source=payrollexport_service.go -destination=mock/payrollexport_service_mock.go -package=mock
type Service interface {
	Candidates(ctx context.Context, f UploadAttendanceFilter) ([]CandidateRow, error)
	Export(ctx context.Context, req ExportRequest) (ExportResult, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	master    masterdata.Repository
	publisher EventPublisher
}

func NewService(db *sql.DB, repo Repository, master masterdata.Repository, publisher EventPublisher) Service {
	return &service{db: db, repo: repo, master: master, publisher: publisher}
}

// Candidates menderivasi baris payroll dari absensi yang punya hasil panen.
// Output panen seorang karyawan dibagi rata ke semua blok yang dia kerjakan
// hari itu; baris yang attendance-nya sudah pernah diupload tidak ikut.
func (s *service) Candidates(ctx context.Context, f UploadAttendanceFilter) ([]CandidateRow, error) {
	from, to, err := resolveDates(f.Tanggal, f.TanggalEnd)
	if err != nil {
		return nil, err
	}

	minCount := 0
	if f.Totalcount != "" {
		minCount, err = strconv.Atoi(f.Totalcount)
		if err != nil {
			return nil, apperror.New(apperror.CodeInvalidInput, "Parameter totalcount harus angka", http.StatusBadRequest)
		}
	}

	rows, err := s.repo.DerivationRows(ctx, f, from, to)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []CandidateRow{}, nil
	}

	// Pembagi apportionment: jumlah blok per (tanggal, karyawan). Dihitung
	// sebelum exclude supaya stabil terhadap upload parsial.
	divisor := make(map[string]int, len(rows))
	ids := make([]int64, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		divisor[empDayKey(row)]++
		if _, ok := seen[row.AttendanceID]; !ok {
			seen[row.AttendanceID] = struct{}{}
			ids = append(ids, row.AttendanceID)
		}
	}

	exported, err := s.repo.ExportedDocumentNos(ctx, ids)
	if err != nil {
		return nil, err
	}

	baseMax, err := s.repo.PermanentMaxKey(ctx)
	if err != nil {
		return nil, err
	}

	var harvestJob masterdata.JobRef
	harvestJobLoaded := false
	destJobs := make(map[string]masterdata.JobRef)
	fieldRefs := make(map[string]FieldRef)

	now := time.Now()
	out := make([]CandidateRow, 0, len(rows))
	running := int64(0)

	for _, row := range rows {
		if _, ok := exported[row.AttendanceID]; ok {
			continue
		}

		n := divisor[empDayKey(row)]
		if minCount > 0 && n <= minCount {
			continue
		}

		if !harvestJobLoaded {
			if harvestJob, err = s.master.HarvestJob(ctx); err != nil {
				return nil, err
			}
			harvestJobLoaded = true
		}

		fieldKey := row.Fieldcode + "|" + row.Fcba
		ref, ok := fieldRefs[fieldKey]
		if !ok {
			if ref, err = s.repo.FieldRef(ctx, row.Fieldcode, row.Fcba); err != nil {
				return nil, err
			}
			fieldRefs[fieldKey] = ref
		}

		shares := apportion(row, n, ref.Bjr)

		var job masterdata.JobRef
		var locationcode, chargejob, chargetype, chargecode string
		if row.AttendanceType == attendance.AttendanceTypeRegular {
			job = harvestJob
			locationcode = ref.Code
		} else {
			// Assistensi: job ikut unit bisnis tujuan, biaya tetap dibebankan
			// ke job panen dan blok asal.
			job, ok = destJobs[row.FcbaDestination]
			if !ok {
				if job, err = s.master.DestinationJob(ctx, row.FcbaDestination); err != nil {
					return nil, err
				}
				destJobs[row.FcbaDestination] = job
			}
			locationcode = locationCodeAssist
			chargejob = harvestJob.Code
			chargetype = harvestJob.Category
			chargecode = ref.Code
		}

		jobcode := job.Code
		if jobcode == "" {
			jobcode = DefaultJobcode
		}

		running++
		out = append(out, CandidateRow{
			Totalcount:             numeric.Normalize(float64(n)),
			ID:                     strconv.FormatInt(row.AttendanceID, 10),
			Afdeling:               row.Afdeling,
			Gangcode:               row.Gang,
			Fddate:                 row.Tanggal.Format(timestampLayout),
			Supervision1:           row.Mandor1,
			Supervision2:           row.MandorPanen,
			Supervision3:           row.Kerani,
			Employeecode:           row.KodeKaryawan,
			Attendance:             row.AttendanceCode,
			Jobcode:                jobcode,
			Locationtype:           job.Category,
			Locationcode:           locationcode,
			Mandays:                numeric.Normalize(shares.mandays),
			Othrs:                  "0",
			Rate:                   "0",
			Unit:                   numeric.Normalize(shares.unit),
			Output:                 numeric.Normalize(shares.output),
			Remarks:                remarkSource,
			Fcentry:                row.CreatedBy,
			Fcedit:                 row.UpdatedBy,
			Fcip:                   row.MacAddress,
			Fcba:                   row.Fcba,
			Lastupdate:             now.Format(timestampLayout),
			Lasttime:               now.Format(clockLayout),
			Linenokey:              strconv.FormatInt(baseMax+running, 10),
			OvertimeHours:          "0",
			TypeOvertime:           "0",
			Chargejob:              chargejob,
			Chargetype:             chargetype,
			Chargecode:             chargecode,
			KgBrondolan:            numeric.Normalize(shares.kgBrondolan),
			Rowstate:               rowstateApproved,
			DocumentClassification: strconv.Itoa(documentClassHarvest),
			BasisBm:                "0",
			KgJanjang:              numeric.Normalize(shares.kgJanjang),
			Bjr:                    numeric.Normalize(ref.Bjr),
			Documentno:             strconv.FormatInt(row.AttendanceID, 10),
			Sourcetime:             row.SourceCreatedAt.Format(timestampLayout),
			Janjang:                "0",
			Generate:               remarkGenerate,
			Generatetime:           now.Format(timestampLayout),
			Fieldcode:              row.Fieldcode,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Fddate != b.Fddate {
			return a.Fddate < b.Fddate
		}
		if a.Fcba != b.Fcba {
			return a.Fcba < b.Fcba
		}
		if a.Afdeling != b.Afdeling {
			return a.Afdeling < b.Afdeling
		}
		if a.Gangcode != b.Gangcode {
			return a.Gangcode < b.Gangcode
		}
		if a.Employeecode != b.Employeecode {
			return a.Employeecode < b.Employeecode
		}
		return a.Locationcode < b.Locationcode
	})

	return out, nil
}

// Export menulis tiap baris payload ke ledger permanen dan staging dalam satu
// transaksi per baris. Baris yang sudah commit tidak dibatalkan saat baris
// berikutnya gagal; klien bisa mengulang sisa baris tanpa duplikasi karena
// nomor urut sudah diklaim di muka.
func (s *service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	n := len(req.Data)
	result := ExportResult{Documentno: make([]int64, 0, n)}

	permStart, err := s.repo.ClaimKeyRange(ctx, LedgerPermanent, n)
	if err != nil {
		return result, err
	}
	stagStart, err := s.repo.ClaimKeyRange(ctx, LedgerStaging, n)
	if err != nil {
		return result, err
	}

	now := time.Now()

	for i, line := range req.Data {
		fddate, err := parseFddate(line.Fddate)
		if err != nil {
			return result, err
		}

		if err := s.exportLine(ctx, line, fddate, now, permStart+int64(i), stagStart+int64(i)); err != nil {
			return result, fmt.Errorf("line %d (documentno %d): %w", i+1, line.Documentno, err)
		}
		result.Documentno = append(result.Documentno, line.Documentno)
	}

	if s.publisher != nil {
		evt := events.PayrollExported{
			BatchID:    uuid.NewString(),
			LineCount:  n,
			Documentno: result.Documentno,
			ExportedAt: now,
		}
		if err := s.publisher.PublishExported(ctx, evt); err != nil {
			zap.L().Warn("publish payroll exported event failed", zap.Error(err))
		}
	}

	return result, nil
}

func (s *service) exportLine(ctx context.Context, line ExportLine, fddate, now time.Time, permKey, stagKey int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	jobcode := DefaultJobcode
	if line.Jobcode != nil && *line.Jobcode != "" {
		jobcode = *line.Jobcode
	}

	remarks := line.Remarks
	if remarks == nil {
		remarks = ptr(remarkSource)
	}
	generate := line.Generate
	if generate == nil {
		generate = ptr(remarkGenerate)
	}

	lastupdate := now
	lasttime := now.Format(clockLayout)

	perm := AttendanceGad{
		Gangcode:               line.Gangcode,
		Fddate:                 fddate,
		Supervision1:           line.Supervision1,
		Supervision2:           line.Supervision2,
		Supervision3:           line.Supervision3,
		Supervision4:           line.Supervision4,
		Supervision5:           line.Supervision5,
		Employeecode:           line.Employeecode,
		Attendance:             line.Attendance,
		Jobcode:                jobcode,
		Locationtype:           line.Locationtype,
		Locationcode:           line.Locationcode,
		Mandays:                line.Mandays,
		Othrs:                  line.Othrs,
		Rate:                   line.Rate,
		Unit:                   line.Unit,
		Output:                 line.Output,
		Reference:              line.Reference,
		Remarks:                remarks,
		Fcentry:                line.Fcentry,
		Fcedit:                 line.Fcedit,
		Fcip:                   line.Fcip,
		Fcba:                   line.Fcba,
		Lastupdate:             lastupdate,
		Lasttime:               lasttime,
		Linenokey:              permKey,
		OvertimeHours:          line.OvertimeHours,
		TypeOvertime:           line.TypeOvertime,
		Chargejob:              line.Chargejob,
		Chargetype:             line.Chargetype,
		Chargecode:             line.Chargecode,
		Bucket:                 line.Bucket,
		Spbno:                  line.Spbno,
		KgJanjang:              line.KgJanjang,
		KgBrondolan:            line.KgBrondolan,
		Rowstate:               line.Rowstate,
		DocumentClassification: line.DocumentClassification,
		BasisBm:                line.BasisBm,
		Bjr:                    line.Bjr,
		Documentno:             line.Documentno,
	}

	stag := AttendanceGadTemp{
		Gangcode:               line.Gangcode,
		Fddate:                 fddate,
		Supervision1:           line.Supervision1,
		Supervision2:           line.Supervision2,
		Supervision3:           line.Supervision3,
		Supervision4:           line.Supervision4,
		Supervision5:           line.Supervision5,
		Employeecode:           line.Employeecode,
		Attendance:             line.Attendance,
		Jobcode:                jobcode,
		Locationtype:           line.Locationtype,
		Locationcode:           line.Locationcode,
		Mandays:                line.Mandays,
		Othrs:                  line.Othrs,
		Rate:                   line.Rate,
		Unit:                   line.Unit,
		Output:                 line.Output,
		Reference:              line.Reference,
		Remarks:                remarks,
		Fcentry:                line.Fcentry,
		Fcedit:                 line.Fcedit,
		Fcip:                   line.Fcip,
		Fcba:                   line.Fcba,
		Lastupdate:             lastupdate,
		Lasttime:               lasttime,
		Linenokey:              stagKey,
		OvertimeHours:          line.OvertimeHours,
		TypeOvertime:           line.TypeOvertime,
		Chargejob:              line.Chargejob,
		Chargetype:             line.Chargetype,
		Chargecode:             line.Chargecode,
		Janjang:                line.Janjang,
		Rowstate:               line.Rowstate,
		DocumentClassification: line.DocumentClassification,
		Generate:               generate,
		Generatetime:           now,
		BasisBm:                line.BasisBm,
		KgJanjang:              line.KgJanjang,
		Bjr:                    line.Bjr,
		Documentno:             line.Documentno,
	}

	if err := qtx.InsertPermanent(ctx, &perm); err != nil {
		return err
	}
	if err := qtx.InsertStaging(ctx, &stag); err != nil {
		return err
	}

	return tx.Commit()
}

type shareSet struct {
	mandays     float64
	unit        float64
	output      float64
	kgJanjang   float64
	kgBrondolan float64
}

// apportion membagi hasil seorang karyawan di satu hari ke n blok. Input
// negatif atau bukan angka dianggap nol sebelum dibagi.
func apportion(row DerivationRow, n int, bjr float64) shareSet {
	if n <= 0 {
		return shareSet{}
	}
	div := float64(n)
	unit := numeric.ZeroIfInvalid(row.Output) / div
	return shareSet{
		mandays:     numeric.ZeroIfInvalid(row.Mandays) / div,
		unit:        unit,
		output:      unit * numeric.ZeroIfInvalid(row.Luas),
		kgJanjang:   unit * numeric.ZeroIfInvalid(bjr),
		kgBrondolan: numeric.ZeroIfInvalid(row.Brondol) / div,
	}
}

func empDayKey(row DerivationRow) string {
	return row.Tanggal.Format(dateLayout) + "|" + row.KodeKaryawan
}

func parseFddate(v string) (time.Time, error) {
	if t, err := time.Parse(timestampLayout, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, apperror.New(apperror.CodeInvalidInput, "Format fddate harus YYYY-MM-DD HH:MM:SS atau YYYY-MM-DD", http.StatusBadRequest)
	}
	return t, nil
}

func resolveDates(dari, sampai string) (*time.Time, *time.Time, error) {
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
		return nil, nil, err
	}
	to, err := parse(sampai)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case from != nil && to != nil:
		if from.After(*to) {
			from, to = to, from
		}
		return from, to, nil
	case from != nil:
		return from, nil, nil
	case to != nil:
		return to, nil, nil
	default:
		return nil, nil, nil
	}
}

func ptr[T any](v T) *T {
	return &v
}
