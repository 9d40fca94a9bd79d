package intake

import (
	"context"
	"fmt"
	"strings"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const (
	contactOrder       = "created_at DESC"
	defaultMessageType = "general"
)

// CreateContact stores a contact form submission together with the
// sender's request metadata.
func (s *Service) CreateContact(ctx context.Context, input CreateContactInput) (*domain.ContactMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	messageType := strings.TrimSpace(input.MessageType)
	if messageType == "" {
		messageType = defaultMessageType
	}

	msg, err := s.contacts.Create(ctx, record.Fields{
		"name":         strings.TrimSpace(input.Name),
		"email":        strings.TrimSpace(input.Email),
		"phone":        input.Phone,
		"company":      input.Company,
		"subject":      strings.TrimSpace(input.Subject),
		"message":      strings.TrimSpace(input.Message),
		"message_type": messageType,
		"ip_address":   input.IPAddress,
		"user_agent":   input.UserAgent,
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.EntityTypeContact, msg.ID, "create",
		fmt.Sprintf("contact message from %s (%s)", msg.Name, msg.MessageType))
	s.notifier.ContactReceived(ctx, msg)

	return msg, nil
}

// GetContact returns one contact message.
func (s *Service) GetContact(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	return s.contacts.Find(ctx, id)
}

// ListContacts returns contact messages, newest first. A non-empty
// messageType narrows the listing.
func (s *Service) ListContacts(ctx context.Context, messageType string, limit, offset uint64) ([]domain.ContactMessage, int64, error) {
	if limit == 0 {
		limit = 20
	}

	conds := record.Conditions{}
	if messageType != "" {
		conds["message_type"] = messageType
	}

	msgs, err := s.contacts.List(ctx, conds, contactOrder, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.contacts.Count(ctx, conds)
	if err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

// RecentContacts returns the latest messages for the dashboard.
func (s *Service) RecentContacts(ctx context.Context, limit uint64) ([]domain.ContactMessage, error) {
	if limit == 0 {
		limit = 10
	}
	return s.contacts.Recent(ctx, limit)
}
