package set

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"mentor-booking-service/api"
	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
	"mentor-booking-service/pkg/sl"
)

type ProfileSaver interface {
	SaveMenteeProfile(ctx context.Context, profile *models.MenteeProfile) (string, error)
}

type Request struct {
	api.MenteeProfileRequest
}

type Response struct {
	response.Response
	api.MenteeSessionResponse
}

func New(log *slog.Logger, saver ProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.mentees.set.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		if len(req.Interests) == 0 {
			log.Error("interests are empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "at least one interest is required"))
			return
		}

		sessionID, err := saver.SaveMenteeProfile(r.Context(), &models.MenteeProfile{
			Interests:       req.Interests,
			Goals:           req.Goals,
			ExperienceLevel: req.ExperienceLevel,
			EducationLevel:  req.EducationLevel,
			JobRole:         req.JobRole,
			City:            req.City,
		})
		if err != nil {
			log.Error("Failed to save mentee profile", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to save profile"))
			return
		}

		log.Info("Mentee profile saved", slog.String("session_id", sessionID))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{
			MenteeSessionResponse: api.MenteeSessionResponse{SessionID: sessionID},
		})
	}
}
