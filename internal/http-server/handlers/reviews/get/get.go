package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
	"mentor-booking-service/pkg/sl"
)

type ReviewsGetter interface {
	GetReviews(ctx context.Context, mentorID string) ([]models.Review, error)
}

type Response struct {
	response.Response
	MentorID string          `json:"mentor_id,omitempty"`
	Reviews  []models.Review `json:"reviews"`
}

func New(log *slog.Logger, getter ReviewsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reviews.get.New"

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

		reviews, err := getter.GetReviews(r.Context(), mentorID)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("mentor not found", slog.String("mentor_id", mentorID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if err != nil {
			log.Error("Failed to get reviews", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error(string(response.UPSTREAM_UNAVAILABLE), "failed to get reviews"))
			return
		}

		log.Info("Reviews retrieved", slog.Int("count", len(reviews)))

		render.JSON(w, r, Response{
			MentorID: mentorID,
			Reviews:  reviews,
		})
	}
}
