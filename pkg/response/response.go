package response

import "errors"

type Response struct {
	ResponseError `json:"error,omitzero"`
}

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

//Error Codes
type ErrCode string

var (
	FAILED_REQUEST        ErrCode = "REQUEST_FAILED"
	BAD_REQUEST           ErrCode = "FAILED_TO_DECODE"
	NOT_FOUND             ErrCode = "NOT_FOUND"
	CONFLICT              ErrCode = "CONFLICT"
	SLOT_NOT_AVAILABLE    ErrCode = "SLOT_NOT_AVAILABLE"
	UNSUPPORTED_FILE_TYPE ErrCode = "UNSUPPORTED_FILE_TYPE"
	FILE_TOO_LARGE        ErrCode = "FILE_TOO_LARGE"
	UPSTREAM_UNAVAILABLE  ErrCode = "UPSTREAM_UNAVAILABLE"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("conflict")
	ErrSlotNotAvailable    = errors.New("slot is not available")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file is too large")
	ErrUpstream            = errors.New("upstream request failed")
)

func Error(code, msg string) Response {
	return Response{
		ResponseError: ResponseError{
			Code:    code,
			Message: msg,
		},
	}
}
