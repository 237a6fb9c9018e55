package dto

import (
	"strconv"
	"strings"

	"vehicle-inventory-frontend/internal/core/domain"
)

// ParseImageOrder reads an image order either from repeated "imagens"
// values or from one comma/space separated "ordem" value.
func ParseImageOrder(repeated []string, joined string) ([]int64, error) {
	tokens := repeated
	if len(tokens) == 0 {
		tokens = strings.FieldsFunc(joined, func(r rune) bool {
			return r == ',' || r == ' ' || r == ';' || r == '\n' || r == '\t'
		})
	}
	if len(tokens) == 0 {
		return nil, domain.ErrInvalidImageOrder
	}

	ids := make([]int64, 0, len(tokens))
	for _, tok := range tokens {
		id, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil || id <= 0 {
			return nil, domain.ErrInvalidImageOrder
		}
		ids = append(ids, id)
	}
	return ids, nil
}
