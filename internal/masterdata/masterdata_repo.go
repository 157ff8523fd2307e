package masterdata

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const nameCacheTTL = time.Hour

// JobRef adalah pasangan kode job + kategori yang dibawa baris payroll.
type JobRef struct {
	Code     string
	Category string
}

//go:generate mockgen -source=masterdata_repo.go -destination=mock/masterdata_repo_mock.go -package=mock
type Repository interface {
	// EmployeeName / VehicleName mengembalikan "" tanpa error saat kode tidak
	// dikenal, mengikuti semantik left join pada report.
	EmployeeName(ctx context.Context, code string) (string, error)
	VehicleName(ctx context.Context, code string) (string, error)
	HarvestJob(ctx context.Context) (JobRef, error)
	DestinationJob(ctx context.Context, fcba string) (JobRef, error)
}

type repository struct {
	db    *gorm.DB
	rdb   *redis.Client
	group singleflight.Group
}

func NewRepository(db *gorm.DB, rdb *redis.Client) Repository {
	return &repository{db: db, rdb: rdb}
}

func (r *repository) EmployeeName(ctx context.Context, code string) (string, error) {
	return r.cachedName(ctx, "md:emp:"+code, func() (string, error) {
		var e Employee
		err := r.db.WithContext(ctx).Where("fccode = ?", code).First(&e).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return e.Fcname, err
	})
}

func (r *repository) VehicleName(ctx context.Context, code string) (string, error) {
	return r.cachedName(ctx, "md:veh:"+code, func() (string, error) {
		var v Vehicle
		err := r.db.WithContext(ctx).Where("fccode = ?", code).First(&v).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return v.Fcname, err
	})
}

func (r *repository) HarvestJob(ctx context.Context) (JobRef, error) {
	var j Job
	err := r.db.WithContext(ctx).
		Where("fcname LIKE ?", "%POTONG BUAH%").
		First(&j).Error
	if err != nil {
		return JobRef{}, err
	}
	return JobRef{Code: j.Fccode, Category: j.JobCategory}, nil
}

func (r *repository) DestinationJob(ctx context.Context, fcba string) (JobRef, error) {
	var m BusinessUnitJobMapping
	err := r.db.WithContext(ctx).Where("fcba = ?", fcba).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JobRef{}, nil
	}
	if err != nil {
		return JobRef{}, err
	}
	return JobRef{Code: m.Fccode, Category: m.JobCategory}, nil
}

// cachedName: redis dulu, miss digabungkan per key lewat singleflight supaya
// burst report tidak menembak query yang sama berkali-kali.
func (r *repository) cachedName(ctx context.Context, key string, load func() (string, error)) (string, error) {
	if r.rdb != nil {
		if val, err := r.rdb.Get(ctx, key).Result(); err == nil {
			return val, nil
		}
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		name, err := load()
		if err != nil {
			return "", err
		}
		if r.rdb != nil && name != "" {
			r.rdb.Set(ctx, key, name, nameCacheTTL)
		}
		return name, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
