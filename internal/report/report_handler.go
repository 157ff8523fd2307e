package report

import (
	"net/http"

	"github.com/ridwanlawson/sips-api/internal/shared/apperror"
	"github.com/ridwanlawson/sips-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgDataNotFound = "Data tidak ditemukan."
const msgReadFault = "Terjadi kesalahan saat mengambil data."

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		zap.L().Error("report query failed", zap.Error(err))
		response.Error(c, httpErr.Status, msgReadFault, httpErr.Details)
		return
	}
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) HasilPanen(c *gin.Context) {
	f := HasilPanenFilter{
		Nodokumen:     c.Query("nodokumen"),
		TanggalDari:   c.Query("tanggaldari"),
		TanggalSampai: c.Query("tanggalsampai"),
		Tph:           c.Query("tph"),
		Blok:          c.Query("blok"),
		Afdeling:      c.Query("afdeling"),
		Fcba:          c.Query("fcba"),
		Status:        c.Query("status"),
	}

	rows, err := h.service.HasilPanen(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if len(rows) == 0 {
		response.NotFound(c, msgDataNotFound)
		return
	}
	response.Success(c, http.StatusOK, "List Data Hasil Panen", rows)
}

func (h *Handler) HasilLangsir(c *gin.Context) {
	f := HasilLangsirFilter{
		Nopengangkutan: c.Query("nopengangkutan"),
		Nodokumen:      c.Query("nodokumen"),
		TanggalDari:    c.Query("tanggaldari"),
		TanggalSampai:  c.Query("tanggalsampai"),
		KodeKendaraan:  c.Query("kode_kendaraan"),
		Afdeling:       c.Query("afdeling"),
		Fcba:           c.Query("fcba"),
		Tujuan:         c.Query("tujuan"),
		Status:         c.Query("status"),
	}

	rows, err := h.service.HasilLangsir(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if len(rows) == 0 {
		response.NotFound(c, msgDataNotFound)
		return
	}
	response.Success(c, http.StatusOK, "List Data Hasil Langsir", rows)
}

func (h *Handler) HasilPengangkutan(c *gin.Context) {
	f := PengangkutanFilter{
		Nopengangkutan:     c.Query("nopengangkutan"),
		Nospb:              c.Query("nospb"),
		Tanggal:            c.Query("tanggal"),
		TanggalEnd:         c.Query("tanggal_end"),
		KodeKaryawanKerani: c.Query("kode_karyawan_kerani"),
		KodeKaryawanDriver: c.Query("kode_karyawan_driver"),
		Tkbm1:              c.Query("tkbm1"),
		Tkbm2:              c.Query("tkbm2"),
		Tkbm3:              c.Query("tkbm3"),
		Tkbm4:              c.Query("tkbm4"),
		Tkbm5:              c.Query("tkbm5"),
		TypePengangkutan:   c.Query("type_pengangkutan"),
		KodeKendaraan:      c.Query("kode_kendaraan"),
		Fcba:               c.Query("fcba"),
		PabrikTujuan:       c.Query("pabrik_tujuan"),
		Afdeling:           c.Query("afdeling"),
	}

	rows, err := h.service.HasilPengangkutan(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if len(rows) == 0 {
		response.NotFound(c, msgDataNotFound)
		return
	}
	response.Success(c, http.StatusOK, "List Data Pengangkutan", rows)
}
