package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
)

// Storage is the built-in mentor catalog used when the database is not
// reachable, so the directory keeps working in development and demos.
type Storage struct {
	mentors []*models.Mentor
}

func New() *Storage {
	return &Storage{mentors: catalog()}
}

func (s *Storage) ListMentors(_ context.Context, filters *models.MentorFilters) ([]*models.Mentor, error) {
	var result []*models.Mentor
	for _, m := range s.mentors {
		if matches(m, filters) {
			result = append(result, m)
		}
	}

	return result, nil
}

func (s *Storage) GetMentor(_ context.Context, id string) (*models.Mentor, error) {
	const op = "storage.mock.GetMentor"

	for _, m := range s.mentors {
		if m.ID == id {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
}

func (s *Storage) FilterOptions(_ context.Context) (*models.FilterOptions, error) {
	expertise := map[string]struct{}{}
	experience := map[string]struct{}{}
	availability := map[string]struct{}{}

	for _, m := range s.mentors {
		for _, e := range m.Expertise {
			expertise[e] = struct{}{}
		}
		experience[m.Experience] = struct{}{}
		availability[m.Availability] = struct{}{}
	}

	return &models.FilterOptions{
		Expertise:    sorted(expertise),
		Experience:   sorted(experience),
		Availability: sorted(availability),
	}, nil
}

func sorted(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func matches(m *models.Mentor, filters *models.MentorFilters) bool {
	if filters == nil {
		return true
	}

	if filters.Search != "" {
		term := strings.ToLower(filters.Search)
		hit := strings.Contains(strings.ToLower(m.Name), term) ||
			strings.Contains(strings.ToLower(m.Title), term) ||
			strings.Contains(strings.ToLower(m.Company), term)
		for _, e := range m.Expertise {
			if strings.Contains(strings.ToLower(e), term) {
				hit = true
			}
		}
		if !hit {
			return false
		}
	}

	if len(filters.Expertise) > 0 && !anyIn(filters.Expertise, m.Expertise) {
		return false
	}

	if len(filters.Experience) > 0 && !contains(filters.Experience, m.Experience) {
		return false
	}

	if len(filters.Availability) > 0 && !contains(filters.Availability, m.Availability) {
		return false
	}

	return true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func anyIn(wanted, have []string) bool {
	for _, w := range wanted {
		if contains(have, w) {
			return true
		}
	}
	return false
}

func catalog() []*models.Mentor {
	return []*models.Mentor{
		{
			ID:           "1",
			Name:         "Sarah Chen",
			Title:        "Senior Software Engineer",
			Company:      "Google",
			Expertise:    []string{"Software Engineering", "AI/Machine Learning", "Career Transition"},
			Experience:   "Senior (8-12 years)",
			Rating:       4.9,
			ReviewCount:  127,
			Availability: "Available",
			Location:     "San Francisco, CA",
			Languages:    []string{"English", "Mandarin"},
			Bio:          "Passionate about helping engineers transition into senior roles and develop leadership skills.",
			Achievements: []string{"Led team of 15 engineers", "Built ML systems serving 1B+ users", "Published 12 papers"},
			Image:        "https://images.pexels.com/photos/1181690/pexels-photo-1181690.jpeg?auto=compress&cs=tinysrgb&w=400",
			Industry:     "Technology",
		},
		{
			ID:           "2",
			Name:         "Marcus Johnson",
			Title:        "VP of Product",
			Company:      "Stripe",
			Expertise:    []string{"Product Management", "Entrepreneurship", "Leadership Growth"},
			Experience:   "Executive (13+ years)",
			Rating:       4.8,
			ReviewCount:  89,
			Availability: "Limited",
			Location:     "Remote",
			Languages:    []string{"English", "Spanish"},
			Bio:          "Expert in product strategy and building teams that ship world-class products.",
			Achievements: []string{"Scaled product from 0 to $100M ARR", "Built products used by 50M+ users", "Ex-founder"},
			Image:        "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=400",
			Industry:     "Technology",
		},
		{
			ID:           "3",
			Name:         "Emily Rodriguez",
			Title:        "Data Science Director",
			Company:      "Netflix",
			Expertise:    []string{"Data Science", "AI/Machine Learning", "Technical Skills"},
			Experience:   "Senior (8-12 years)",
			Rating:       5.0,
			ReviewCount:  156,
			Availability: "Available",
			Location:     "Los Angeles, CA",
			Languages:    []string{"English", "Spanish", "Portuguese"},
			Bio:          "Helping data professionals advance their careers and master advanced analytics.",
			Achievements: []string{"Built recommendation algorithms", "PhD in Computer Science", "TEDx speaker"},
			Image:        "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg?auto=compress&cs=tinysrgb&w=400",
			Industry:     "Technology",
		},
		{
			ID:           "4",
			Name:         "David Kim",
			Title:        "Design Lead",
			Company:      "Apple",
			Expertise:    []string{"UX/UI Design", "Product Management", "Creative Direction"},
			Experience:   "Senior (8-12 years)",
			Rating:       4.9,
			ReviewCount:  203,
			Availability: "Available",
			Location:     "Cupertino, CA",
			Languages:    []string{"English", "Korean"},
			Bio:          "Award-winning designer passionate about creating intuitive user experiences.",
			Achievements: []string{"Led design for iOS features", "Design awards winner", "Design thinking workshops"},
			Image:        "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=400",
			Industry:     "Technology",
		},
	}
}
