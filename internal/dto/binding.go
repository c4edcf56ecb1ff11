package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Accepted layouts for the date field on the wire: a full RFC 3339 timestamp
// (what the dashboard sends) or a bare calendar date.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseTransactionDate parses a wire date value into UTC. The stored value
// round-trips unchanged, so the date a client created is the date it reads
// back.
func ParseTransactionDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

func validTransactionDate(fl validator.FieldLevel) bool {
	_, err := ParseTransactionDate(fl.Field().String())
	return err == nil
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Errors only on duplicate registration, which cannot happen here.
		_ = v.RegisterValidation("txndate", validTransactionDate)
	}
}
