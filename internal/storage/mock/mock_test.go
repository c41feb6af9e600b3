package mock

import (
	"context"
	"testing"

	"mentor-booking-service/internal/models"
)

func TestListMentorsFiltering(t *testing.T) {
	ctx := context.Background()
	s := New()

	tests := []struct {
		name    string
		filters *models.MentorFilters
		want    []string
	}{
		{
			name:    "no filters returns everyone",
			filters: nil,
			want:    []string{"Sarah Chen", "Marcus Johnson", "Emily Rodriguez", "David Kim"},
		},
		{
			name:    "search matches name",
			filters: &models.MentorFilters{Search: "sarah"},
			want:    []string{"Sarah Chen"},
		},
		{
			name:    "search matches company",
			filters: &models.MentorFilters{Search: "stripe"},
			want:    []string{"Marcus Johnson"},
		},
		{
			name:    "search matches expertise",
			filters: &models.MentorFilters{Search: "data science"},
			want:    []string{"Emily Rodriguez"},
		},
		{
			name:    "expertise filter is any-match",
			filters: &models.MentorFilters{Expertise: []string{"AI/Machine Learning"}},
			want:    []string{"Sarah Chen", "Emily Rodriguez"},
		},
		{
			name:    "experience filter is exact",
			filters: &models.MentorFilters{Experience: []string{"Executive (13+ years)"}},
			want:    []string{"Marcus Johnson"},
		},
		{
			name:    "availability filter",
			filters: &models.MentorFilters{Availability: []string{"Limited"}},
			want:    []string{"Marcus Johnson"},
		},
		{
			name: "filters combine with AND",
			filters: &models.MentorFilters{
				Expertise:    []string{"Product Management"},
				Availability: []string{"Available"},
			},
			want: []string{"David Kim"},
		},
		{
			name:    "no match yields empty",
			filters: &models.MentorFilters{Search: "nobody"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mentors, err := s.ListMentors(ctx, tt.filters)
			if err != nil {
				t.Fatalf("ListMentors: %v", err)
			}

			var names []string
			for _, m := range mentors {
				names = append(names, m.Name)
			}

			if len(names) != len(tt.want) {
				t.Fatalf("got %v, want %v", names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", names, tt.want)
				}
			}
		})
	}
}

func TestGetMentor(t *testing.T) {
	ctx := context.Background()
	s := New()

	m, err := s.GetMentor(ctx, "1")
	if err != nil {
		t.Fatalf("GetMentor: %v", err)
	}
	if m.Name != "Sarah Chen" {
		t.Errorf("name = %q", m.Name)
	}

	if _, err := s.GetMentor(ctx, "999"); err == nil {
		t.Error("unknown id must return an error")
	}
}

func TestFilterOptions(t *testing.T) {
	s := New()

	opts, err := s.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("FilterOptions: %v", err)
	}

	if len(opts.Expertise) == 0 || len(opts.Experience) == 0 || len(opts.Availability) == 0 {
		t.Errorf("empty option set: %+v", opts)
	}

	for i := 1; i < len(opts.Expertise); i++ {
		if opts.Expertise[i-1] > opts.Expertise[i] {
			t.Errorf("expertise options not sorted: %v", opts.Expertise)
		}
	}
}
