package intake

import (
	"net/mail"
	"strings"

	"github.com/kdtech/site-backend/internal/domain"
)

// CreateQuoteInput holds the parameters of a quote request submission.
type CreateQuoteInput struct {
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      *string
	CompanyName        *string
	ServiceType        string
	ProjectDescription string
	Requirements       []string
	BudgetRange        *string
	Timeline           *string
}

// Validate checks all fields and collects all errors.
func (i CreateQuoteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.CustomerName) == "" {
		errs = append(errs, domain.FieldError{Field: "customer_name", Message: "required"})
	}
	if strings.TrimSpace(i.CustomerEmail) == "" {
		errs = append(errs, domain.FieldError{Field: "customer_email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.CustomerEmail); err != nil {
		errs = append(errs, domain.FieldError{Field: "customer_email", Message: "invalid email address"})
	}
	if strings.TrimSpace(i.ServiceType) == "" {
		errs = append(errs, domain.FieldError{Field: "service_type", Message: "required"})
	}
	if strings.TrimSpace(i.ProjectDescription) == "" {
		errs = append(errs, domain.FieldError{Field: "project_description", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateContactInput holds the parameters of a contact form submission.
// IPAddress and UserAgent come from the HTTP layer, not the form body.
type CreateContactInput struct {
	Name        string
	Email       string
	Phone       *string
	Company     *string
	Subject     string
	Message     string
	MessageType string
	IPAddress   *string
	UserAgent   *string
}

// Validate checks all fields and collects all errors.
func (i CreateContactInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}
	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
