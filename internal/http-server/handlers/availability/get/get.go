package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"mentor-booking-service/api"
	"mentor-booking-service/pkg/response"
	"mentor-booking-service/pkg/sl"
)

type AvailabilityGetter interface {
	GetAvailability(ctx context.Context, mentorID, dateISO string) (*api.AvailabilityResponse, error)
}

type Response struct {
	response.Response
	Availability *api.AvailabilityResponse `json:"availability,omitempty"`
}

func New(log *slog.Logger, getter AvailabilityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.availability.get.New"

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

		dateISO := r.URL.Query().Get("date")

		availability, err := getter.GetAvailability(r.Context(), mentorID, dateISO)

		if errors.Is(err, response.ErrBadRequest) {
			log.Error("invalid date", slog.String("date", dateISO))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid date, use YYYY-MM-DD"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("mentor not found", slog.String("mentor_id", mentorID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if errors.Is(err, response.ErrUpstream) {
			log.Error("availability fetch failed", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error(string(response.UPSTREAM_UNAVAILABLE), "availability is temporarily unavailable"))
			return
		}

		if err != nil {
			log.Error("Failed to get availability", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get availability"))
			return
		}

		log.Info("Availability computed",
			slog.String("mentor_id", mentorID),
			slog.Int("dates", len(availability.Dates)),
		)

		render.JSON(w, r, Response{
			Availability: availability,
		})
	}
}
