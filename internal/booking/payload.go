package booking

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"mentor-booking-service/api"
	"mentor-booking-service/internal/models"
)

// EncodeAttachment reads the file content in full and encodes it as base64
// text. A failed read propagates as-is.
func EncodeAttachment(r io.Reader) (string, error) {
	const op = "booking.EncodeAttachment"

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

var yearsRe = regexp.MustCompile(`\d+`)

// ExtractExperienceYears pulls the first number out of a free-text experience
// label, e.g. 4 from "Mid-level (4-7 years)". Best-effort heuristic over
// human-written labels, no accuracy guarantee.
func ExtractExperienceYears(label string) (int, bool) {
	match := yearsRe.FindString(label)
	if match == "" {
		return 0, false
	}

	years, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}

	return years, true
}

// ResolveTimezone picks the timezone recorded in the payload: the mentor's
// configured one, else the host's local zone, else UTC.
func ResolveTimezone(mentorTZ string) string {
	if mentorTZ != "" {
		return mentorTZ
	}

	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}

	return "UTC"
}

// BuildPayload normalizes a validated form into the upstream wire object. All
// free-text fields are trimmed; the mentee block is attached only when an
// onboarding profile exists. Deterministic apart from reading the CV content.
func BuildPayload(form Form, mentorID, mentorTZ string, mentee *models.MenteeProfile) (*api.BookingPayload, error) {
	const op = "booking.BuildPayload"

	encoded, err := EncodeAttachment(bytes.NewReader(form.CV.Content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	payload := &api.BookingPayload{
		User: api.BookingUser{
			FirstName: strings.TrimSpace(form.FirstName),
			LastName:  strings.TrimSpace(form.LastName),
			Email:     strings.TrimSpace(form.Email),
		},
		Booking: api.BookingDetails{
			MentorID:     mentorID,
			Date:         form.Date,
			Time:         form.Time,
			Timezone:     ResolveTimezone(mentorTZ),
			City:         strings.TrimSpace(form.City),
			Expectations: strings.TrimSpace(form.Expectations),
			CV: api.BookingCV{
				FileName: form.CV.FileName,
				MimeType: form.CV.MIMEType,
				Size:     form.CV.Size,
				Base64:   encoded,
			},
		},
	}

	if mentee != nil {
		block := &api.BookingMentee{
			EducationLevelID: catalogID(models.EducationLevels, mentee.EducationLevel),
			JobRoleID:        jobRoleID(mentee),
			ExperienceLevel:  mentee.ExperienceLevel,
			Interests:        mentee.Interests,
			Goals:            mentee.Goals,
			City:             mentee.City,
		}
		if years, ok := ExtractExperienceYears(mentee.ExperienceLevel); ok {
			block.ExperienceYears = &years
		}
		payload.Mentee = block
	}

	return payload, nil
}

// catalogID maps a label to its 1-based catalog position, 0 when unknown.
func catalogID(catalog []string, label string) int {
	for i, entry := range catalog {
		if entry == label {
			return i + 1
		}
	}
	return 0
}

func jobRoleID(mentee *models.MenteeProfile) int {
	if len(mentee.Interests) == 0 {
		return 0
	}
	roles, ok := models.JobRolesByExpertise[mentee.Interests[0]]
	if !ok {
		return 0
	}
	return catalogID(roles, mentee.JobRole)
}
