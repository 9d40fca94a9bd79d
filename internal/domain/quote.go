package domain

import "time"

// Quote is a quote request submitted from the public site.
// Requirements is a jsonb list column.
type Quote struct {
	ID                 int64     `db:"id" json:"id"`
	QuoteNumber        string    `db:"quote_number" json:"quote_number"`
	CustomerName       string    `db:"customer_name" json:"customer_name"`
	CustomerEmail      string    `db:"customer_email" json:"customer_email"`
	CustomerPhone      *string   `db:"customer_phone" json:"customer_phone,omitempty"`
	CompanyName        *string   `db:"company_name" json:"company_name,omitempty"`
	ServiceType        string    `db:"service_type" json:"service_type"`
	ProjectDescription string    `db:"project_description" json:"project_description"`
	Requirements       []string  `db:"requirements" json:"requirements"`
	BudgetRange        *string   `db:"budget_range" json:"budget_range,omitempty"`
	Timeline           *string   `db:"timeline" json:"timeline,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
