package create

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"mentor-booking-service/api"
	"mentor-booking-service/internal/booking"
	"mentor-booking-service/pkg/response"
)

type fakeSubmitter struct {
	mentorID  string
	form      booking.Form
	sessionID string
	err       error
}

func (f *fakeSubmitter) SubmitBooking(_ context.Context, mentorID string, form booking.Form, sessionID string) (*api.BookingConfirmation, error) {
	f.mentorID = mentorID
	f.form = form
	f.sessionID = sessionID
	if f.err != nil {
		return nil, f.err
	}
	return &api.BookingConfirmation{BookingID: "b-1", MentorID: mentorID, Status: "confirmed"}, nil
}

func newTestRouter(submitter *fakeSubmitter) *chi.Mux {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := chi.NewRouter()
	router.Post("/mentors/{mentorId}/bookings", New(log, submitter))

	return router
}

func bookingRequest(t *testing.T, withCV bool) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"firstName":    "Jane",
		"lastName":     "Doe",
		"email":        "jane@example.com",
		"city":         "Berlin",
		"date":         "2024-11-15",
		"time":         "10:00",
		"expectations": "career advice",
		"sessionId":    "sess-1",
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("write field %s: %v", name, err)
		}
	}

	if withCV {
		part, err := writer.CreateFormFile("cv", "resume.pdf")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("%PDF-1.4 resume")); err != nil {
			t.Fatalf("write cv: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/mentors/m-7/bookings", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestCreateBookingHandler(t *testing.T) {
	t.Run("submits the decoded form", func(t *testing.T) {
		submitter := &fakeSubmitter{}
		router := newTestRouter(submitter)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, bookingRequest(t, true))

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
		}
		if submitter.mentorID != "m-7" {
			t.Errorf("mentorID = %q, want m-7", submitter.mentorID)
		}
		if submitter.sessionID != "sess-1" {
			t.Errorf("sessionID = %q, want sess-1", submitter.sessionID)
		}
		if submitter.form.FirstName != "Jane" || submitter.form.Time != "10:00" {
			t.Errorf("form not decoded: %+v", submitter.form)
		}
		if submitter.form.CV == nil {
			t.Fatal("expected attachment to be passed through")
		}
		if submitter.form.CV.FileName != "resume.pdf" {
			t.Errorf("attachment name = %q, want resume.pdf", submitter.form.CV.FileName)
		}

		var resp Response
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Booking == nil || resp.Booking.BookingID != "b-1" {
			t.Errorf("booking = %+v, want id b-1", resp.Booking)
		}
	})

	t.Run("missing attachment still reaches the service", func(t *testing.T) {
		submitter := &fakeSubmitter{err: response.ErrBadRequest}
		router := newTestRouter(submitter)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, bookingRequest(t, false))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if submitter.form.CV != nil {
			t.Error("expected no attachment on the form")
		}
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"taken slot maps to conflict", response.ErrSlotNotAvailable, http.StatusConflict, string(response.SLOT_NOT_AVAILABLE)},
		{"oversized cv maps to bad request", response.ErrFileTooLarge, http.StatusBadRequest, string(response.FILE_TOO_LARGE)},
		{"wrong cv type maps to bad request", response.ErrUnsupportedFileType, http.StatusBadRequest, string(response.UNSUPPORTED_FILE_TYPE)},
		{"unknown mentor maps to not found", response.ErrNotFound, http.StatusNotFound, string(response.NOT_FOUND)},
		{"upstream outage maps to bad gateway", response.ErrUpstream, http.StatusBadGateway, string(response.UPSTREAM_UNAVAILABLE)},
	}

	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			submitter := &fakeSubmitter{err: tc.err}
			router := newTestRouter(submitter)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, bookingRequest(t, true))

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var resp response.Response
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Code != tc.wantCode {
				t.Errorf("error code = %q, want %q", resp.Code, tc.wantCode)
			}
		})
	}
}
