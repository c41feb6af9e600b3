package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"mentor-booking-service/api"
	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
	"mentor-booking-service/pkg/sl"
)

type MentorGetter interface {
	GetMentor(ctx context.Context, id string) (*api.MentorDto, error)
	ListMentors(ctx context.Context, filters *models.MentorFilters) (*api.MentorsResponse, error)
}

type Response struct {
	response.Response
	api.MentorsResponse
	Mentor *api.MentorDto `json:"mentor,omitempty"`
}

func New(log *slog.Logger, getter MentorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.mentors.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "mentorId")

		if id != "" {
			// Get by ID
			mentor, err := getter.GetMentor(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("mentor not found", slog.String("mentor_id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get mentor", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get mentor"))
				return
			}

			log.Info("Mentor retrieved", slog.String("mentor_id", id))

			render.JSON(w, r, Response{
				Mentor: mentor,
			})
			return
		}

		// List
		filters := &models.MentorFilters{
			Search:       r.URL.Query().Get("search"),
			Expertise:    csv(r.URL.Query().Get("expertise")),
			Experience:   csv(r.URL.Query().Get("experience")),
			Availability: csv(r.URL.Query().Get("availability")),
			Interests:    csv(r.URL.Query().Get("interests")),
		}

		result, err := getter.ListMentors(r.Context(), filters)
		if err != nil {
			log.Error("Failed to list mentors", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list mentors"))
			return
		}

		log.Info("Mentors retrieved", slog.Int("count", result.Total))

		render.JSON(w, r, Response{
			MentorsResponse: *result,
		})
	}
}

func csv(s string) []string {
	if s == "" {
		return nil
	}

	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	return values
}
