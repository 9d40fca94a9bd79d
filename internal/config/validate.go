package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Order.validate(); err != nil {
		return fmt.Errorf("order: %w", err)
	}
	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}

func (o *OrderConfig) validate() error {
	if o.TaxRatePercent < 0 || o.TaxRatePercent > 100 {
		return fmt.Errorf("tax_rate_percent must be within [0,100] (got %v)", o.TaxRatePercent)
	}
	if o.FreeShippingThreshold < 0 {
		return fmt.Errorf("free_shipping_threshold must be >= 0 (got %v)", o.FreeShippingThreshold)
	}
	if o.FlatShippingFee < 0 {
		return fmt.Errorf("flat_shipping_fee must be >= 0 (got %v)", o.FlatShippingFee)
	}
	if o.Currency == "" {
		return fmt.Errorf("currency must not be empty")
	}
	if o.NumberPrefix == "" {
		return fmt.Errorf("number_prefix must not be empty")
	}
	if o.QuoteNumberPrefix == "" {
		return fmt.Errorf("quote_number_prefix must not be empty")
	}
	if o.NumberMaxAttempts <= 0 {
		return fmt.Errorf("number_max_attempts must be > 0 (got %d)", o.NumberMaxAttempts)
	}
	return nil
}

func (c *CatalogConfig) validate() error {
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.RelatedLimit <= 0 {
		return fmt.Errorf("related_limit must be > 0 (got %d)", c.RelatedLimit)
	}
	if c.SearchLimit <= 0 {
		return fmt.Errorf("search_limit must be > 0 (got %d)", c.SearchLimit)
	}
	return nil
}
