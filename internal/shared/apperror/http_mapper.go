package apperror

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP menerjemahkan error dari service menjadi bentuk siap-response.
// Semua error non-AppError dianggap ProcessingFault (500) dan pesan teknis
// aslinya dipindahkan ke Details, bukan menggantikan Message.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: detailOf(appErr.Err),
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return HTTPError{
			Status:  http.StatusConflict,
			Code:    CodeConflict,
			Message: "Duplicate record",
			Details: pgErr.Error(),
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
		Details: detailOf(err),
	}
}

func detailOf(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}
