package catalog

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	skuPrefix      = "KDT"
	skuMaxAttempts = 10
)

// generateSKU builds a SKU of the form KDT + three letters from the product
// name + three random digits, regenerating the digits while the SKU is
// taken. The unique index on products.sku remains the authoritative guard.
func (s *Service) generateSKU(ctx context.Context, name string) (string, error) {
	code := nameCode(name)

	for attempt := 0; attempt < skuMaxAttempts; attempt++ {
		sku := fmt.Sprintf("%s%s%03d", skuPrefix, code, rand.IntN(1000))

		taken, err := s.products.SKUExists(ctx, sku)
		if err != nil {
			return "", err
		}
		if !taken {
			return sku, nil
		}
	}

	return "", fmt.Errorf("no free sku after %d attempts", skuMaxAttempts)
}

// nameCode extracts the first three letters of the name, uppercased and
// padded with X for short names.
func nameCode(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}
	for b.Len() < 3 {
		b.WriteByte('X')
	}
	return b.String()
}
