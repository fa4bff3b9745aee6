package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nfe-serializer/internal/model"
)

func TestICMSRegime_Kind(t *testing.T) {
	tests := []struct {
		code string
		kind model.ICMSRegimeKind
	}{
		{"00", model.RegimeStandard},
		{"10", model.RegimeStandard},
		{"20", model.RegimeStandard},
		{"30", model.RegimeStandard},
		{"40", model.RegimeStandard},
		{"41", model.RegimeStandard},
		{"50", model.RegimeStandard},
		{"51", model.RegimeStandard},
		{"60", model.RegimeStandard},
		{"70", model.RegimeStandard},
		{"90", model.RegimeStandard},
		{"101", model.RegimeSimples},
		{"102", model.RegimeSimples},
		{"103", model.RegimeSimples},
		{"201", model.RegimeSimples},
		{"300", model.RegimeSimples},
		{"400", model.RegimeSimples},
		{"500", model.RegimeSimples},
		{"900", model.RegimeSimples},
		{"ST", model.RegimeSubstitution},
		{"99", model.RegimeUnknown},
		{"", model.RegimeUnknown},
		{"0", model.RegimeUnknown},
	}

	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			r := model.ICMSRegime(tt.code)
			assert.Equal(t, tt.kind, r.Kind())
			assert.Equal(t, tt.kind != model.RegimeUnknown, r.Valid())
		})
	}
}

func TestParseICMSRegime(t *testing.T) {
	r, err := model.ParseICMSRegime("102")
	require.NoError(t, err)
	assert.Equal(t, model.ICMSRegime("102"), r)

	_, err = model.ParseICMSRegime("77")
	require.Error(t, err)

	var regimeErr *model.UnknownTaxRegimeError
	require.ErrorAs(t, err, &regimeErr)
	assert.Equal(t, "77", regimeErr.Code)
	assert.Equal(t, "ICMS", regimeErr.Family)
}
