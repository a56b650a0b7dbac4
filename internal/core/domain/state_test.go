package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_PartialDocumentGetsDefaults(t *testing.T) {
	var state domain.AppState
	require.NoError(t, json.Unmarshal([]byte(`{"transactions":[]}`), &state))

	state.Sanitize(domain.ProfilePF)

	assert.NotNil(t, state.Accounts)
	assert.NotNil(t, state.Rules)
	require.NotNil(t, state.TaxRate)
	assert.True(t, state.TaxRate.Equal(domain.DefaultTaxRate))
	require.NotNil(t, state.WarRate)
	assert.True(t, state.WarRate.Equal(domain.DefaultWarRate))
}

func TestSanitize_ExplicitZeroRateSurvivesRoundTrip(t *testing.T) {
	state := domain.NewAppState(domain.ProfilePJ)
	state.TaxRate = domain.RatePtr(decimal.Zero)

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	var loaded domain.AppState
	require.NoError(t, json.Unmarshal(raw, &loaded))
	loaded.Sanitize(domain.ProfilePJ)

	require.NotNil(t, loaded.TaxRate)
	assert.True(t, loaded.TaxRate.IsZero(), "explicit 0%% tax rate reverted to the default")
	require.NotNil(t, loaded.WarRate)
	assert.True(t, loaded.WarRate.Equal(domain.DefaultWarRate))
}
