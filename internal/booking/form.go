package booking

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
)

// MaxAttachmentSize caps the CV upload at 5 MiB.
const MaxAttachmentSize = 5 << 20

var allowedMIMETypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Form is one submission attempt of the booking form. Field changes produce a
// new value; nothing here is shared or mutated in place.
type Form struct {
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	Email        string `validate:"required"`
	City         string `validate:"required"`
	Date         string `validate:"required"`
	Time         string `validate:"required"`
	Expectations string
	CV           *models.CVFile `validate:"required"`
}

var validate = validator.New()

// ValidateAttachment gates the CV at selection time: allowed type (PDF, DOC,
// DOCX) and size under the cap. On rejection the caller must drop any
// previously attached file.
func ValidateAttachment(cv *models.CVFile) error {
	const op = "booking.ValidateAttachment"

	if _, ok := allowedMIMETypes[cv.MIMEType]; !ok {
		return fmt.Errorf("%s: %q: %w", op, cv.MIMEType, response.ErrUnsupportedFileType)
	}

	if cv.Size > MaxAttachmentSize {
		return fmt.Errorf("%s: %d bytes: %w", op, cv.Size, response.ErrFileTooLarge)
	}

	return nil
}

// CanSubmit reports whether every required field is present: first name, last
// name, email, city, date, time and the attachment. Email format beyond
// non-emptiness is the form boundary's concern, not this gate's.
func CanSubmit(form Form) bool {
	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)
	form.Email = strings.TrimSpace(form.Email)
	form.City = strings.TrimSpace(form.City)
	form.Date = strings.TrimSpace(form.Date)
	form.Time = strings.TrimSpace(form.Time)

	return validate.Struct(form) == nil
}
