package payrollexport

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, idempotency gin.HandlerFunc) {
	r.GET("/report/upload-attendance", h.UploadAttendancePreview)

	upload := r.Group("/upload")
	if idempotency != nil {
		upload.Use(idempotency)
	}
	upload.POST("/attendance", h.UploadAttendance)
}
