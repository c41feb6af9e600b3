package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"mentor-booking-service/api"
	"mentor-booking-service/internal/booking"
	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
	"mentor-booking-service/pkg/sl"
)

type BookingSubmitter interface {
	SubmitBooking(ctx context.Context, mentorID string, form booking.Form, sessionID string) (*api.BookingConfirmation, error)
}

type Response struct {
	response.Response
	Booking *api.BookingConfirmation `json:"booking,omitempty"`
}

// The form arrives as multipart/form-data; headroom above the CV cap so an
// oversized upload is rejected with the proper code instead of a parse error.
const maxFormMemory = booking.MaxAttachmentSize + 1<<20

func New(log *slog.Logger, submitter BookingSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bookings.create.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		mentorID := chi.URLParam(r, "mentorId")
		if mentorID == "" {
			log.Error("mentor id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "mentor id is required"))
			return
		}

		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			log.Error("Failed to parse multipart form", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode form"))
			return
		}

		form := booking.Form{
			FirstName:    r.FormValue("firstName"),
			LastName:     r.FormValue("lastName"),
			Email:        r.FormValue("email"),
			City:         r.FormValue("city"),
			Date:         r.FormValue("date"),
			Time:         r.FormValue("time"),
			Expectations: r.FormValue("expectations"),
		}

		file, header, err := r.FormFile("cv")
		if err == nil {
			defer file.Close()

			content, readErr := io.ReadAll(file)
			if readErr != nil {
				log.Error("Failed to read attachment", sl.Err(readErr))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to read attachment"))
				return
			}

			form.CV = &models.CVFile{
				FileName: header.Filename,
				MIMEType: header.Header.Get("Content-Type"),
				Size:     header.Size,
				Content:  content,
			}
		} else if !errors.Is(err, http.ErrMissingFile) {
			log.Error("Failed to read attachment", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to read attachment"))
			return
		}

		log.Info("Booking form decoded",
			slog.String("mentor_id", mentorID),
			slog.String("date", form.Date),
			slog.String("time", form.Time),
		)

		confirmation, err := submitter.SubmitBooking(r.Context(), mentorID, form, r.FormValue("sessionId"))

		if errors.Is(err, response.ErrUnsupportedFileType) {
			log.Error("unsupported attachment type")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.UNSUPPORTED_FILE_TYPE), "cv must be a PDF, DOC or DOCX file"))
			return
		}

		if errors.Is(err, response.ErrFileTooLarge) {
			log.Error("attachment too large")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.FILE_TOO_LARGE), "cv must be 5 MB or less"))
			return
		}

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("incomplete booking form")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "all required fields must be filled"))
			return
		}

		if errors.Is(err, response.ErrSlotNotAvailable) {
			log.Error("slot is not available")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(string(response.SLOT_NOT_AVAILABLE), "selected time is no longer available"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("mentor not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if errors.Is(err, response.ErrUpstream) {
			log.Error("booking submission failed upstream", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error(string(response.UPSTREAM_UNAVAILABLE), "booking could not be submitted, try again"))
			return
		}

		if err != nil {
			log.Error("Failed to submit booking", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to submit booking"))
			return
		}

		log.Info("Booking submitted", slog.Any("booking", confirmation))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{
			Booking: confirmation,
		})
	}
}
