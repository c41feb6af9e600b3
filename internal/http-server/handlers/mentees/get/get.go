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

type ProfileGetter interface {
	MenteeProfile(ctx context.Context, sessionID string) (*models.MenteeProfile, error)
}

type Response struct {
	response.Response
	Profile *models.MenteeProfile `json:"profile,omitempty"`
}

func New(log *slog.Logger, getter ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.mentees.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		sessionID := chi.URLParam(r, "sessionId")
		if sessionID == "" {
			log.Error("session id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "session id is required"))
			return
		}

		profile, err := getter.MenteeProfile(r.Context(), sessionID)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("session not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if err != nil {
			log.Error("Failed to get mentee profile", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get profile"))
			return
		}

		render.JSON(w, r, Response{
			Profile: profile,
		})
	}
}
