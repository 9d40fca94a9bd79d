package domain

import "time"

// ContactMessage is a message submitted through the contact form,
// stored together with the sender's request metadata.
type ContactMessage struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Company     *string   `db:"company" json:"company,omitempty"`
	Subject     string    `db:"subject" json:"subject"`
	Message     string    `db:"message" json:"message"`
	MessageType string    `db:"message_type" json:"message_type"`
	IPAddress   *string   `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent   *string   `db:"user_agent" json:"user_agent,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
