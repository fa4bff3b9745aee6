package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/nfe-serializer/internal/model"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing field with context",
			err:  model.NewMissingRequiredFieldError("CST", "PIS"),
			want: "missing required field CST (PIS)",
		},
		{
			name: "missing field without context",
			err:  model.NewMissingRequiredFieldError("Recipient", ""),
			want: "missing required field Recipient",
		},
		{
			name: "unknown tax regime",
			err:  model.NewUnknownTaxRegimeError("77", "ICMS"),
			want: `unknown ICMS tax regime code "77"`,
		},
		{
			name: "unknown event type",
			err:  model.NewUnknownEventTypeError(model.EventType(9)),
			want: "unknown event type 9",
		},
		{
			name: "unsupported jurisdiction",
			err:  model.NewUnsupportedJurisdictionError("SC"),
			want: `jurisdiction "SC" is not supported`,
		},
		{
			name: "consistency",
			err:  model.NewConsistencyError("contingency without justification"),
			want: "inconsistent document: contingency without justification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}
