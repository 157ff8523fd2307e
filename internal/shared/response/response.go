package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the JSON shape every endpoint answers with. SIPS Mobile keys on
// `success` + `message`; `error` carries technical detail for diagnostics only.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Error   any    `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NotFound melaporkan query valid yang tidak menemukan baris apapun.
// Kebijakan: ini bukan failure, data tetap dikirim sebagai list kosong.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{
		Success: true,
		Message: message,
		Data:    []any{},
	})
}

func Error(c *gin.Context, status int, message string, detail any) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
