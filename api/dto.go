package api

type MentorsResponse struct {
	Mentors     []MentorDto `json:"mentors"`
	Total       int         `json:"total"`
	Recommended []MentorDto `json:"recommended,omitempty"`
}

type MentorDto struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Expertise    []string `json:"expertise"`
	Experience   string   `json:"experience"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	Availability string   `json:"availability"`
	Location     string   `json:"location"`
	Languages    []string `json:"languages"`
	Bio          string   `json:"bio"`
	Achievements []string `json:"achievements"`
	Image        string   `json:"image"`
	Industry     string   `json:"industry"`
}

type AvailabilityResponse struct {
	MentorID string   `json:"mentor_id"`
	Timezone string   `json:"timezone"`
	Dates    []string `json:"dates"`
	Date     string   `json:"date,omitempty"`
	Times    []string `json:"times,omitempty"`
}

type MenteeProfileRequest struct {
	Interests       []string `json:"interests"`
	Goals           []string `json:"goals"`
	ExperienceLevel string   `json:"experienceLevel"`
	EducationLevel  string   `json:"educationLevel"`
	JobRole         string   `json:"jobRole"`
	City            string   `json:"city"`
}

type MenteeSessionResponse struct {
	SessionID string `json:"session_id"`
}

// BookingPayload is the wire object submitted to the upstream booking
// endpoint: identity, optional mentee context and the session details with
// the base64-encoded CV.
type BookingPayload struct {
	User    BookingUser    `json:"user"`
	Mentee  *BookingMentee `json:"mentee,omitempty"`
	Booking BookingDetails `json:"booking"`
}

type BookingUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type BookingMentee struct {
	EducationLevelID int      `json:"educationLevelId"`
	JobRoleID        int      `json:"jobRoleId"`
	ExperienceLevel  string   `json:"experienceLevel"`
	ExperienceYears  *int     `json:"experienceYears,omitempty"`
	Interests        []string `json:"interests"`
	Goals            []string `json:"goals"`
	City             string   `json:"city"`
}

type BookingDetails struct {
	MentorID     string    `json:"mentorId"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Timezone     string    `json:"timezone"`
	City         string    `json:"city"`
	Expectations string    `json:"expectations,omitempty"`
	CV           BookingCV `json:"cv"`
}

type BookingCV struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Base64   string `json:"base64"`
}

type BookingConfirmation struct {
	BookingID string `json:"bookingId"`
	MentorID  string `json:"mentorId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}
