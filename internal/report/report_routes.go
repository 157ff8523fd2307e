package report

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/report")
	{
		reports.GET("/hasil-panen", h.HasilPanen)
		reports.GET("/hasil-langsir", h.HasilLangsir)
		reports.GET("/pengangkutan", h.HasilPengangkutan)
	}
}
