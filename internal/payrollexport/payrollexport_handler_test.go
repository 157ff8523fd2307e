package payrollexport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ridwanlawson/sips-api/internal/payrollexport"
	"github.com/ridwanlawson/sips-api/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeExportService struct {
	candidatesFn func(ctx context.Context, f payrollexport.UploadAttendanceFilter) ([]payrollexport.CandidateRow, error)
	exportFn     func(ctx context.Context, req payrollexport.ExportRequest) (payrollexport.ExportResult, error)
}

func (f *fakeExportService) Candidates(ctx context.Context, filter payrollexport.UploadAttendanceFilter) ([]payrollexport.CandidateRow, error) {
	if f.candidatesFn != nil {
		return f.candidatesFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeExportService) Export(ctx context.Context, req payrollexport.ExportRequest) (payrollexport.ExportResult, error) {
	if f.exportFn != nil {
		return f.exportFn(ctx, req)
	}
	return payrollexport.ExportResult{}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func performRequest(h *payrollexport.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	payrollexport.RegisterRoutes(r.Group("/api/v1"), h, nil)

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestUploadAttendance_EmptyPayloadRejected(t *testing.T) {
	h := payrollexport.NewHandler(&fakeExportService{})

	w := performRequest(h, http.MethodPost, "/api/v1/upload/attendance", []byte(`{"data":[]}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Data tidak valid atau kosong.", resp.Message)
}

func TestUploadAttendance_MissingRequiredFieldRejected(t *testing.T) {
	h := payrollexport.NewHandler(&fakeExportService{})

	// employeecode hilang
	body := []byte(`{"data":[{"fddate":"2025-07-10","attendance":"H","fcba":"BA01","documentno":11}]}`)
	w := performRequest(h, http.MethodPost, "/api/v1/upload/attendance", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadAttendance_Success(t *testing.T) {
	svc := &fakeExportService{
		exportFn: func(ctx context.Context, req payrollexport.ExportRequest) (payrollexport.ExportResult, error) {
			assert.Len(t, req.Data, 1)
			return payrollexport.ExportResult{Documentno: []int64{11}}, nil
		},
	}
	h := payrollexport.NewHandler(svc)

	body := []byte(`{"data":[{"fddate":"2025-07-10","employeecode":"E100","attendance":"H","fcba":"BA01","documentno":11}]}`)
	w := performRequest(h, http.MethodPost, "/api/v1/upload/attendance", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Data Karyawan berhasil ditambahkan.", resp.Message)

	// data adalah array documentno polos, bukan objek pembungkus.
	var docs []int64
	assert.NoError(t, json.Unmarshal(resp.Data, &docs))
	assert.Equal(t, []int64{11}, docs)
}

func TestUploadAttendance_DataIsBareDocumentnoList(t *testing.T) {
	svc := &fakeExportService{
		exportFn: func(ctx context.Context, req payrollexport.ExportRequest) (payrollexport.ExportResult, error) {
			return payrollexport.ExportResult{Documentno: []int64{368, 368}}, nil
		},
	}
	h := payrollexport.NewHandler(svc)

	body := []byte(`{"data":[` +
		`{"fddate":"2025-07-10","employeecode":"E100","attendance":"H","fcba":"BA01","documentno":368},` +
		`{"fddate":"2025-07-10","employeecode":"E100","attendance":"H","fcba":"BA01","documentno":368}]}`)
	w := performRequest(h, http.MethodPost, "/api/v1/upload/attendance", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var docs []int64
	assert.NoError(t, json.Unmarshal(resp.Data, &docs))
	assert.Equal(t, []int64{368, 368}, docs)
}

func TestUploadAttendance_ServiceFailureMasked(t *testing.T) {
	svc := &fakeExportService{
		exportFn: func(ctx context.Context, req payrollexport.ExportRequest) (payrollexport.ExportResult, error) {
			return payrollexport.ExportResult{}, errors.New("pq: connection reset")
		},
	}
	h := payrollexport.NewHandler(svc)

	body := []byte(`{"data":[{"fddate":"2025-07-10","employeecode":"E100","attendance":"H","fcba":"BA01","documentno":11}]}`)
	w := performRequest(h, http.MethodPost, "/api/v1/upload/attendance", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Terjadi kesalahan saat menyimpan data. Silakan coba lagi.", resp.Message)
}

func TestUploadAttendancePreview_EmptyReturns404Envelope(t *testing.T) {
	svc := &fakeExportService{
		candidatesFn: func(ctx context.Context, f payrollexport.UploadAttendanceFilter) ([]payrollexport.CandidateRow, error) {
			return []payrollexport.CandidateRow{}, nil
		},
	}
	h := payrollexport.NewHandler(svc)

	w := performRequest(h, http.MethodGet, "/api/v1/report/upload-attendance?tanggal=2025-07-10", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Data tidak ditemukan.", resp.Message)
	assert.Equal(t, "[]", string(resp.Data))
}

func TestUploadAttendancePreview_FilterPassthrough(t *testing.T) {
	var got payrollexport.UploadAttendanceFilter
	svc := &fakeExportService{
		candidatesFn: func(ctx context.Context, f payrollexport.UploadAttendanceFilter) ([]payrollexport.CandidateRow, error) {
			got = f
			return []payrollexport.CandidateRow{{Employeecode: "E100"}}, nil
		},
	}
	h := payrollexport.NewHandler(svc)

	w := performRequest(h, http.MethodGet, "/api/v1/report/upload-attendance?tanggal=2025-07-01&tanggal_end=2025-07-31&fcba=BA01&afdeling=AFD1&gangcode=G01&totalcount=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-07-01", got.Tanggal)
	assert.Equal(t, "2025-07-31", got.TanggalEnd)
	assert.Equal(t, "BA01", got.Fcba)
	assert.Equal(t, "AFD1", got.Afdeling)
	assert.Equal(t, "G01", got.Gangcode)
	assert.Equal(t, "1", got.Totalcount)
}
