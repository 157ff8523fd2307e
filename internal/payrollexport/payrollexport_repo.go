package payrollexport

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ridwanlawson/sips-api/internal/attendance"

	"gorm.io/gorm"
)

// DerivationRow adalah satu pasangan (attendance, agregat panen per blok)
// hasil join; bahan mentah apportionment di service.
type DerivationRow struct {
	AttendanceID    int64
	Tanggal         time.Time
	Gang            string
	Section         string
	Fcba            string
	FcbaDestination string
	AttendanceType  string
	AttendanceCode  string
	Mandays         float64
	CreatedBy       string
	UpdatedBy       string
	MacAddress      *string
	SourceCreatedAt time.Time
	Mandor1         string
	MandorPanen     string
	Kerani          string
	KodeKaryawan    string
	Fieldcode       string
	Afdeling        string
	Output          float64
	Brondol         float64
	Luas            float64
}

// FieldRef adalah kode lokasi payroll + BJR blok, hasil lookup master fields.
type FieldRef struct {
	Code string
	Bjr  float64
}

//go:generate mockgen -source=payrollexport_repo.go -destination=mock/payrollexport_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	DerivationRows(ctx context.Context, f UploadAttendanceFilter, from, to *time.Time) ([]DerivationRow, error)
	// ExportedDocumentNos mengembalikan himpunan id attendance yang sudah
	// pernah ditulis ke ledger permanen.
	ExportedDocumentNos(ctx context.Context, ids []int64) (map[int64]struct{}, error)
	FieldRef(ctx context.Context, fieldcode, fcba string) (FieldRef, error)
	PermanentMaxKey(ctx context.Context) (int64, error)
	// ClaimKeyRange mengklaim n nomor urut untuk ledger tersebut secara atomik
	// dan mengembalikan nomor pertama dari rentang yang diklaim.
	ClaimKeyRange(ctx context.Context, ledger string, n int) (int64, error)
	InsertPermanent(ctx context.Context, row *AttendanceGad) error
	InsertStaging(ctx context.Context, row *AttendanceGadTemp) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) DerivationRows(ctx context.Context, f UploadAttendanceFilter, from, to *time.Time) ([]DerivationRow, error) {
	harvest := r.db.Table("harvesting").
		Select("harvesting.tanggal, harvesting.kode_karyawan, harvesting.fieldcode, harvesting.afdeling, harvesting.fcba, "+
			"MAX(harvesting.kode_karyawan_mandor1) AS mandor1, "+
			"MAX(harvesting.kode_karyawan_mandor_panen) AS mandor_panen, "+
			"MAX(harvesting.kode_karyawan_kerani) AS kerani, "+
			"COALESCE(SUM(harvesting.output), 0) AS output, "+
			"COALESCE(SUM(harvesting.brondol), 0) AS brondol, "+
			"COALESCE(SUM(ancaks.luas), 0) AS luas").
		Joins("LEFT JOIN ancaks ON ancaks.noancak = harvesting.noancak "+
			"AND ancaks.fieldcode = harvesting.fieldcode "+
			"AND ancaks.afdeling = harvesting.afdeling "+
			"AND ancaks.fcba = harvesting.fcba").
		Group("harvesting.tanggal, harvesting.kode_karyawan, harvesting.fieldcode, harvesting.afdeling, harvesting.fcba")

	q := r.db.WithContext(ctx).
		Model(&attendance.Attendance{}).
		Select("attendance.id AS attendance_id, attendance.tanggal, attendance.gang, attendance.section, "+
			"attendance.fcba, attendance.fcba_destination, attendance.attendance_type, "+
			"attendance.attendance AS attendance_code, attendance.mandays, "+
			"attendance.created_by, attendance.updated_by, attendance.mac_address, "+
			"attendance.created_at AS source_created_at, "+
			"h.mandor1, h.mandor_panen AS mandor_panen, h.kerani, h.kode_karyawan, "+
			"h.fieldcode, h.afdeling, h.output, h.brondol, h.luas").
		Joins("INNER JOIN (?) h ON h.fcba = attendance.fcba "+
			"AND h.tanggal = attendance.tanggal "+
			"AND h.kode_karyawan = attendance.kode_karyawan", harvest)

	switch {
	case from != nil && to != nil:
		q = q.Where("attendance.tanggal BETWEEN ? AND ?", *from, *to)
	case from != nil:
		q = q.Where("attendance.tanggal = ?", *from)
	}
	if f.Fcba != "" {
		q = q.Where("attendance.fcba = ?", f.Fcba)
	}
	if f.Afdeling != "" {
		q = q.Where("h.afdeling = ?", f.Afdeling)
	}
	if f.Gangcode != "" {
		q = q.Where("attendance.gang = ?", f.Gangcode)
	}

	var rows []DerivationRow
	err := q.Order("attendance.tanggal, attendance.kode_karyawan, h.fieldcode").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ExportedDocumentNos(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	exported := make(map[int64]struct{}, len(ids))
	if len(ids) == 0 {
		return exported, nil
	}

	var docs []int64
	err := r.db.WithContext(ctx).
		Model(&AttendanceGad{}).
		Distinct("documentno").
		Where("documentno IN ?", ids).
		Pluck("documentno", &docs).Error
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		exported[d] = struct{}{}
	}
	return exported, nil
}

func (r *repository) FieldRef(ctx context.Context, fieldcode, fcba string) (FieldRef, error) {
	var ref FieldRef
	err := r.db.WithContext(ctx).
		Table("fields").
		Select("fccode AS code, pressemester_abw AS bjr").
		Where("field_info_02 = ? AND fcba = ? AND activation = ?", fieldcode, fcba, "Y").
		Limit(1).
		Scan(&ref).Error
	return ref, err
}

func (r *repository) PermanentMaxKey(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Model(&AttendanceGad{}).
		Select("COALESCE(MAX(linenokey), 0)").
		Scan(&max).Error
	return max, err
}

// ClaimKeyRange: UPSERT atomik pada tabel counter, seeded dari MAX(linenokey)
// ledger supaya tetap nyambung dengan baris lama yang ditulis sistem lain.
// Dua request paralel mendapat rentang yang tidak beririsan.
func (r *repository) ClaimKeyRange(ctx context.Context, ledger string, n int) (int64, error) {
	if ledger != LedgerPermanent && ledger != LedgerStaging {
		return 0, fmt.Errorf("unknown ledger %q", ledger)
	}

	var last int64
	query := fmt.Sprintf(`
		INSERT INTO export_line_counters (ledger, last_value, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(linenokey), 0) FROM %s) + ?, now())
		ON CONFLICT (ledger) DO UPDATE
		SET last_value = GREATEST(export_line_counters.last_value, (SELECT COALESCE(MAX(linenokey), 0) FROM %s)) + ?,
		    updated_at = now()
		RETURNING last_value
	`, ledger, ledger)

	err := r.db.WithContext(ctx).Raw(query, ledger, n, n).Scan(&last).Error
	if err != nil {
		return 0, err
	}
	return last - int64(n) + 1, nil
}

const insertPermanentSQL = `
	INSERT INTO attendance_gad (
		gangcode, fddate, supervision_1, supervision_2, supervision_3,
		supervision_4, supervision_5, employeecode, attendance, jobcode,
		locationtype, locationcode, mandays, othrs, rate, unit, output,
		reference, remarks, fcentry, fcedit, fcip, fcba, lastupdate, lasttime,
		linenokey, overtime_hours, type_overtime, chargejob, chargetype,
		chargecode, bucket, spbno, kg_janjang, kg_brondolan, rowstate,
		document_classification, basis_bm, bjr, documentno
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		$31, $32, $33, $34, $35, $36, $37, $38, $39, $40
	)`

func (r *repository) InsertPermanent(ctx context.Context, row *AttendanceGad) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, insertPermanentSQL,
			row.Gangcode, row.Fddate, row.Supervision1, row.Supervision2, row.Supervision3,
			row.Supervision4, row.Supervision5, row.Employeecode, row.Attendance, row.Jobcode,
			row.Locationtype, row.Locationcode, row.Mandays, row.Othrs, row.Rate, row.Unit, row.Output,
			row.Reference, row.Remarks, row.Fcentry, row.Fcedit, row.Fcip, row.Fcba, row.Lastupdate, row.Lasttime,
			row.Linenokey, row.OvertimeHours, row.TypeOvertime, row.Chargejob, row.Chargetype,
			row.Chargecode, row.Bucket, row.Spbno, row.KgJanjang, row.KgBrondolan, row.Rowstate,
			row.DocumentClassification, row.BasisBm, row.Bjr, row.Documentno,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(row).Error
}

const insertStagingSQL = `
	INSERT INTO attendance_gad_temp (
		gangcode, fddate, supervision_1, supervision_2, supervision_3,
		supervision_4, supervision_5, employeecode, attendance, jobcode,
		locationtype, locationcode, mandays, othrs, rate, unit, output,
		reference, remarks, fcentry, fcedit, fcip, fcba, lastupdate, lasttime,
		linenokey, overtime_hours, type_overtime, chargejob, chargetype,
		chargecode, janjang, rowstate, document_classification, generate,
		generatetime, basis_bm, kg_janjang, bjr, documentno
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		$31, $32, $33, $34, $35, $36, $37, $38, $39, $40
	)`

func (r *repository) InsertStaging(ctx context.Context, row *AttendanceGadTemp) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, insertStagingSQL,
			row.Gangcode, row.Fddate, row.Supervision1, row.Supervision2, row.Supervision3,
			row.Supervision4, row.Supervision5, row.Employeecode, row.Attendance, row.Jobcode,
			row.Locationtype, row.Locationcode, row.Mandays, row.Othrs, row.Rate, row.Unit, row.Output,
			row.Reference, row.Remarks, row.Fcentry, row.Fcedit, row.Fcip, row.Fcba, row.Lastupdate, row.Lasttime,
			row.Linenokey, row.OvertimeHours, row.TypeOvertime, row.Chargejob, row.Chargetype,
			row.Chargecode, row.Janjang, row.Rowstate, row.DocumentClassification, row.Generate,
			row.Generatetime, row.BasisBm, row.KgJanjang, row.Bjr, row.Documentno,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(row).Error
}
