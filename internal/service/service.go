package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mentor-booking-service/api"
	"mentor-booking-service/internal/availability"
	"mentor-booking-service/internal/booking"
	"mentor-booking-service/internal/cache"
	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
	"mentor-booking-service/pkg/sl"
)

type Store interface {
	ListMentors(ctx context.Context, filters *models.MentorFilters) ([]*models.Mentor, error)
	GetMentor(ctx context.Context, id string) (*models.Mentor, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
}

type Upstream interface {
	FetchAvailability(ctx context.Context, mentorID string) (*models.AvailabilityConfig, error)
	FetchReviews(ctx context.Context, mentorID string) ([]models.Review, error)
	SubmitBooking(ctx context.Context, mentorID string, payload *api.BookingPayload) (*api.BookingConfirmation, error)
}

type Service struct {
	log      *slog.Logger
	store    Store
	fallback Store
	upstream Upstream
	cache    cache.Cache

	windowDays int
	cacheTTL   time.Duration
	sessionTTL time.Duration
}

func NewService(log *slog.Logger, store, fallback Store, upstream Upstream, c cache.Cache,
	windowDays int, cacheTTL, sessionTTL time.Duration) *Service {
	return &Service{
		log:        log,
		store:      store,
		fallback:   fallback,
		upstream:   upstream,
		cache:      c,
		windowDays: windowDays,
		cacheTTL:   cacheTTL,
		sessionTTL: sessionTTL,
	}
}

// Mentor directory

// ListMentors serves the directory from the database, falling back to the
// built-in catalog when the database is unreachable.
func (s *Service) ListMentors(ctx context.Context, filters *models.MentorFilters) (*api.MentorsResponse, error) {
	const op = "service.ListMentors"

	mentors, err := s.catalog().ListMentors(ctx, filters)
	if err != nil && s.store != nil {
		s.log.Warn("Mentor store unavailable, serving built-in catalog", sl.Err(err))
		mentors, err = s.fallback.ListMentors(ctx, filters)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := &api.MentorsResponse{
		Mentors: make([]api.MentorDto, 0, len(mentors)),
		Total:   len(mentors),
	}
	for _, m := range mentors {
		result.Mentors = append(result.Mentors, mentorDto(m))
	}

	if filters != nil && len(filters.Interests) > 0 {
		for _, m := range mentors {
			if expertiseMatches(m, filters.Interests) {
				result.Recommended = append(result.Recommended, mentorDto(m))
			}
		}
	}

	return result, nil
}

func (s *Service) GetMentor(ctx context.Context, id string) (*api.MentorDto, error) {
	const op = "service.GetMentor"

	mentor, err := s.catalog().GetMentor(ctx, id)
	if err != nil && s.store != nil && !errors.Is(err, response.ErrNotFound) {
		s.log.Warn("Mentor store unavailable, serving built-in catalog", sl.Err(err))
		mentor, err = s.fallback.GetMentor(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dto := mentorDto(mentor)

	return &dto, nil
}

func (s *Service) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	const op = "service.FilterOptions"

	opts, err := s.catalog().FilterOptions(ctx)
	if err != nil && s.store != nil {
		s.log.Warn("Mentor store unavailable, serving built-in filter options", sl.Err(err))
		opts, err = s.fallback.FilterOptions(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return opts, nil
}

func (s *Service) catalog() Store {
	if s.store != nil {
		return s.store
	}
	return s.fallback
}

// Availability

// GetAvailability returns the bookable dates for a mentor within the booking
// window and, when dateISO is set, the open hour slots for that date.
func (s *Service) GetAvailability(ctx context.Context, mentorID, dateISO string) (*api.AvailabilityResponse, error) {
	const op = "service.GetAvailability"

	cfg, err := s.availabilityConfig(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	today := time.Now().UTC()

	resp := &api.AvailabilityResponse{
		MentorID: mentorID,
		Timezone: booking.ResolveTimezone(cfg.WorkingHours.Timezone),
		Dates:    availability.BookableDates(cfg, today, s.windowDays),
	}

	if dateISO != "" {
		if _, err := time.Parse(models.DateLayout, dateISO); err != nil {
			return nil, fmt.Errorf("%s: invalid date: %w", op, response.ErrBadRequest)
		}
		resp.Date = dateISO
		resp.Times = availability.TimesFor(cfg, dateISO, today)
	}

	return resp, nil
}

func (s *Service) availabilityConfig(ctx context.Context, mentorID string) (*models.AvailabilityConfig, error) {
	key := availabilityKey(mentorID)

	var cached models.AvailabilityConfig
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.log.Warn("Availability cache read failed", sl.Err(err))
	}
	if hit {
		return &cached, nil
	}

	cfg, err := s.upstream.FetchAvailability(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, cfg, s.cacheTTL); err != nil {
		s.log.Warn("Availability cache write failed", sl.Err(err))
	}

	return cfg, nil
}

func availabilityKey(mentorID string) string {
	return fmt.Sprintf("availability:%s", mentorID)
}

// Booking

// SubmitBooking runs the whole submission: attachment and form gates, a fresh
// availability check for the selected slot (the cache is bypassed so a
// just-refreshed schedule is honored), payload construction with the optional
// mentee block, the upstream call, and the post-success reconciliation
// refresh. A failed refresh never fails the confirmed booking.
func (s *Service) SubmitBooking(ctx context.Context, mentorID string, form booking.Form, sessionID string) (*api.BookingConfirmation, error) {
	const op = "service.SubmitBooking"

	if form.CV != nil {
		if err := booking.ValidateAttachment(form.CV); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if !booking.CanSubmit(form) {
		return nil, fmt.Errorf("%s: incomplete form: %w", op, response.ErrBadRequest)
	}

	cfg, err := s.upstream.FetchAvailability(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	today := time.Now().UTC()
	if !containsTime(availability.TimesFor(cfg, form.Date, today), form.Time) {
		return nil, fmt.Errorf("%s: %s %s: %w", op, form.Date, form.Time, response.ErrSlotNotAvailable)
	}

	var mentee *models.MenteeProfile
	if sessionID != "" {
		mentee, err = s.MenteeProfile(ctx, sessionID)
		if err != nil {
			s.log.Warn("Mentee profile lookup failed, booking without mentee block",
				slog.String("session_id", sessionID), sl.Err(err))
			mentee = nil
		}
	}

	payload, err := booking.BuildPayload(form, mentorID, cfg.WorkingHours.Timezone, mentee)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	confirmation, err := s.upstream.SubmitBooking(ctx, mentorID, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Reconciliation runs strictly after the upstream success response so the
	// consumed slot disappears from the cached schedule.
	if err := s.refreshAvailability(ctx, mentorID); err != nil {
		s.log.Warn("Availability refresh after booking failed",
			slog.String("mentor_id", mentorID), sl.Err(err))
	}

	return confirmation, nil
}

func (s *Service) refreshAvailability(ctx context.Context, mentorID string) error {
	const op = "service.refreshAvailability"

	key := availabilityKey(mentorID)

	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cfg, err := s.upstream.FetchAvailability(ctx, mentorID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.SetJSON(ctx, key, cfg, s.cacheTTL); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Reviews

func (s *Service) GetReviews(ctx context.Context, mentorID string) ([]models.Review, error) {
	const op = "service.GetReviews"

	reviews, err := s.upstream.FetchReviews(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reviews, nil
}

// Mentee sessions

func (s *Service) SaveMenteeProfile(ctx context.Context, profile *models.MenteeProfile) (string, error) {
	const op = "service.SaveMenteeProfile"

	sessionID := uuid.NewString()

	if err := s.cache.SetJSON(ctx, menteeKey(sessionID), profile, s.sessionTTL); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return sessionID, nil
}

func (s *Service) MenteeProfile(ctx context.Context, sessionID string) (*models.MenteeProfile, error) {
	const op = "service.MenteeProfile"

	var profile models.MenteeProfile
	hit, err := s.cache.GetJSON(ctx, menteeKey(sessionID), &profile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !hit {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return &profile, nil
}

func menteeKey(sessionID string) string {
	return fmt.Sprintf("mentee:%s", sessionID)
}

func mentorDto(m *models.Mentor) api.MentorDto {
	return api.MentorDto{
		ID:           m.ID,
		Name:         m.Name,
		Title:        m.Title,
		Company:      m.Company,
		Expertise:    m.Expertise,
		Experience:   m.Experience,
		Rating:       m.Rating,
		ReviewCount:  m.ReviewCount,
		Availability: m.Availability,
		Location:     m.Location,
		Languages:    m.Languages,
		Bio:          m.Bio,
		Achievements: m.Achievements,
		Image:        m.Image,
		Industry:     m.Industry,
	}
}

func expertiseMatches(m *models.Mentor, interests []string) bool {
	for _, interest := range interests {
		for _, e := range m.Expertise {
			if e == interest {
				return true
			}
		}
	}
	return false
}

func containsTime(times []string, t string) bool {
	for _, item := range times {
		if item == t {
			return true
		}
	}
	return false
}
