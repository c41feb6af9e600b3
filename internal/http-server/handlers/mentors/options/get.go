package options

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
	"mentor-booking-service/pkg/sl"
)

type OptionsGetter interface {
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
}

type Response struct {
	response.Response
	models.FilterOptions
}

func New(log *slog.Logger, getter OptionsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.mentors.options.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		opts, err := getter.FilterOptions(r.Context())
		if err != nil {
			log.Error("Failed to get filter options", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get filter options"))
			return
		}

		render.JSON(w, r, Response{
			FilterOptions: *opts,
		})
	}
}
