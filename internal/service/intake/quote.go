package intake

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/kdtech/site-backend/internal/adapter/postgres/record"
	"github.com/kdtech/site-backend/internal/domain"
)

const quoteOrder = "created_at DESC"

// CreateQuote stores a quote request and notifies the sales channel.
func (s *Service) CreateQuote(ctx context.Context, input CreateQuoteInput) (*domain.Quote, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	number, err := s.generateQuoteNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate quote number: %w", err)
	}

	requirements := input.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	quote, err := s.quotes.Create(ctx, record.Fields{
		"quote_number":        number,
		"customer_name":       strings.TrimSpace(input.CustomerName),
		"customer_email":      strings.TrimSpace(input.CustomerEmail),
		"customer_phone":      input.CustomerPhone,
		"company_name":        input.CompanyName,
		"service_type":        strings.TrimSpace(input.ServiceType),
		"project_description": strings.TrimSpace(input.ProjectDescription),
		"requirements":        requirements,
		"budget_range":        input.BudgetRange,
		"timeline":            input.Timeline,
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.EntityTypeQuote, quote.ID, "create",
		fmt.Sprintf("quote %s requested for %s", quote.QuoteNumber, quote.ServiceType))
	s.notifier.QuoteRequested(ctx, quote)

	return quote, nil
}

// GetQuote returns one quote request.
func (s *Service) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	return s.quotes.Find(ctx, id)
}

// ListQuotes returns quote requests, newest first.
func (s *Service) ListQuotes(ctx context.Context, limit, offset uint64) ([]domain.Quote, int64, error) {
	if limit == 0 {
		limit = 20
	}

	quotes, err := s.quotes.List(ctx, nil, quoteOrder, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.quotes.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	return quotes, total, nil
}

// RecentQuotes returns the latest quote requests for the dashboard.
func (s *Service) RecentQuotes(ctx context.Context, limit uint64) ([]domain.Quote, error) {
	if limit == 0 {
		limit = 10
	}
	return s.quotes.Recent(ctx, limit)
}

// generateQuoteNumber builds prefix + yyyymmdd + 4 random digits and
// retries while the number is taken.
func (s *Service) generateQuoteNumber(ctx context.Context) (string, error) {
	date := s.now().Format("20060102")

	for attempt := 0; attempt < s.cfg.NumberMaxAttempts; attempt++ {
		number := fmt.Sprintf("%s%s%04d", s.cfg.QuoteNumberPrefix, date, 1+rand.IntN(9999))

		taken, err := s.quotes.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}

	return "", fmt.Errorf("no free quote number after %d attempts", s.cfg.NumberMaxAttempts)
}
