package payrollexport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ridwanlawson/sips-api/internal/shared/apperror"
	"github.com/ridwanlawson/sips-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyCacheTTL = 24 * time.Hour

const (
	msgDataNotFound   = "Data tidak ditemukan."
	msgReadFault      = "Terjadi kesalahan saat mengambil data."
	msgWriteFault     = "Terjadi kesalahan saat menyimpan data. Silakan coba lagi."
	msgInvalidPayload = "Data tidak valid atau kosong."
	msgUploadSuccess  = "Data Karyawan berhasil ditambahkan."
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

// UploadAttendancePreview melayani pratinjau baris derivasi sebelum klien
// mengirim batch upload.
func (h *Handler) UploadAttendancePreview(c *gin.Context) {
	f := UploadAttendanceFilter{
		Totalcount: c.Query("totalcount"),
		Tanggal:    c.Query("tanggal"),
		TanggalEnd: c.Query("tanggal_end"),
		Fcba:       c.Query("fcba"),
		Afdeling:   c.Query("afdeling"),
		Gangcode:   c.Query("gangcode"),
	}

	rows, err := h.service.Candidates(c.Request.Context(), f)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Status >= http.StatusInternalServerError {
			zap.L().Error("upload attendance preview failed", zap.Error(err))
			response.Error(c, httpErr.Status, msgReadFault, httpErr.Details)
			return
		}
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
		return
	}
	if len(rows) == 0 {
		response.NotFound(c, msgDataNotFound)
		return
	}
	response.Success(c, http.StatusOK, "List Data Upload Attendance", rows)
}

func (h *Handler) UploadAttendance(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	// Lock dari middleware dilepas apapun hasilnya; request ulang setelah
	// sukses dijawab dari cache, bukan ditolak 409 sampai lock kedaluwarsa.
	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, httpErr.Message)
		return
	}

	result, err := h.service.Export(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Status >= http.StatusInternalServerError {
			// Sebagian baris mungkin sudah commit; catat berapa yang masuk
			// supaya operator bisa merekonsiliasi sebelum retry.
			zap.L().Error("upload attendance failed",
				zap.Int("committed", len(result.Documentno)),
				zap.Int("total", len(req.Data)),
				zap.Error(err))
			response.Error(c, httpErr.Status, msgWriteFault, httpErr.Details)
			return
		}
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(result.Documentno); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, idempotencyCacheTTL).Err()
			}
		}
	}

	// data berisi daftar documentno polos, urut sesuai payload; klien mobile
	// mencocokkan per posisi.
	response.Success(c, http.StatusOK, msgUploadSuccess, result.Documentno)
}
