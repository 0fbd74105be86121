package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Job fields
	"Title":        "Title",
	"Company":      "Company",
	"Location":     "Location",
	"Type":         "Job Type",
	"Salary":       "Salary",
	"Experience":   "Experience",
	"Description":  "Description",
	"Requirements": "Requirements",
	"Benefits":     "Benefits",
	"Status":       "Status",

	// Candidate fields
	"Name":          "Name",
	"Contact":       "Contact Number",
	"NoticePeriod":  "Notice Period",
	"CurrentCTC":    "Current CTC",
	"ExpectedCTC":   "Expected CTC",
	"Qualification": "Qualification",
	"JobID":         "Job",

	// Auth fields
	"Email":    "Email",
	"Password": "Password",

	// Contact form fields
	"FirstName": "First Name",
	"LastName":  "Last Name",
	"Phone":     "Phone",
	"Subject":   "Subject",
	"Message":   "Message",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly
// per-field messages.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, e.Param())
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
