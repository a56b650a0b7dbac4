package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/FinHubBR/finhub_backend/internal/apperrors"
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/services"
	"github.com/FinHubBR/finhub_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// fakeStateRepo is an in-memory ProfileStateRepositoryFacade with the same
// versioning contract as the SQL implementation. Trees round-trip through
// JSON so callers never share slices with the store.
type fakeStateRepo struct {
	docs       map[string]domain.AppState
	versions   map[string]int64
	staleSaves int // fail this many upcoming saves with ErrStaleWrite
	saveCalls  int
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{
		docs:     make(map[string]domain.AppState),
		versions: make(map[string]int64),
	}
}

func stateKey(userID string, kind domain.ProfileKind) string {
	return userID + "|" + string(kind)
}

func cloneState(state domain.AppState) domain.AppState {
	raw, err := json.Marshal(state)
	if err != nil {
		panic(err)
	}
	var out domain.AppState
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

func (f *fakeStateRepo) LoadProfile(_ context.Context, userID string, kind domain.ProfileKind) (*domain.AppState, int64, error) {
	key := stateKey(userID, kind)
	state, ok := f.docs[key]
	if !ok {
		return nil, 0, apperrors.ErrNotFound
	}
	copied := cloneState(state)
	return &copied, f.versions[key], nil
}

func (f *fakeStateRepo) LoadState(_ context.Context, userID string) (*domain.DBState, map[domain.ProfileKind]int64, error) {
	out := domain.DBState{}
	versions := make(map[domain.ProfileKind]int64)
	for _, kind := range []domain.ProfileKind{domain.ProfilePJ, domain.ProfilePF} {
		key := stateKey(userID, kind)
		if state, ok := f.docs[key]; ok {
			*out.Profile(kind) = cloneState(state)
			versions[kind] = f.versions[key]
		}
	}
	if len(versions) == 0 {
		return nil, nil, apperrors.ErrNotFound
	}
	return &out, versions, nil
}

func (f *fakeStateRepo) SaveProfile(_ context.Context, userID string, kind domain.ProfileKind, state domain.AppState, expectedVersion int64) (int64, error) {
	f.saveCalls++
	if f.staleSaves > 0 {
		f.staleSaves--
		return 0, apperrors.ErrStaleWrite
	}
	key := stateKey(userID, kind)
	current, exists := f.versions[key]
	if expectedVersion == 0 {
		if exists {
			return 0, apperrors.ErrStaleWrite
		}
		f.docs[key] = cloneState(state)
		f.versions[key] = 1
		return 1, nil
	}
	if !exists || current != expectedVersion {
		return 0, apperrors.ErrStaleWrite
	}
	f.docs[key] = cloneState(state)
	f.versions[key] = current + 1
	return current + 1, nil
}

type ProfileServiceTestSuite struct {
	suite.Suite
	repo    *fakeStateRepo
	service *services.ProfileService
	ctx     context.Context
	userID  string
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.repo = newFakeStateRepo()
	suite.service = services.NewProfileService(suite.repo)
	suite.ctx = context.Background()
	suite.userID = "user-1"
}

func (suite *ProfileServiceTestSuite) TestFirstAccessSeedsDefaults() {
	state, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)

	suite.Len(state.Categories, 4)
	suite.Equal(domain.SystemTransferCategoryID, state.Categories[3].ID)
	suite.True(state.EffectiveTaxRate().Equal(domain.DefaultTaxRate))
	suite.True(state.EffectiveWarRate().Equal(domain.DefaultWarRate))
	suite.Empty(state.Transactions)

	// The seeded tree is persisted, not just returned.
	suite.Equal(int64(1), suite.repo.versions[stateKey(suite.userID, domain.ProfilePJ)])
}

func (suite *ProfileServiceTestSuite) TestGetStateSeedsBothProfiles() {
	state, versions, err := suite.service.GetState(suite.ctx, suite.userID)
	suite.Require().NoError(err)

	suite.Equal(int64(1), versions[domain.ProfilePJ])
	suite.Equal(int64(1), versions[domain.ProfilePF])
	suite.Len(state.PJ.Categories, 4)
	suite.Len(state.PF.Categories, 6)
}

func (suite *ProfileServiceTestSuite) TestGetStateSeedsMissingProfileOnly() {
	_, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)

	_, versions, err := suite.service.GetState(suite.ctx, suite.userID)
	suite.Require().NoError(err)

	suite.Equal(int64(1), versions[domain.ProfilePJ])
	suite.Equal(int64(1), versions[domain.ProfilePF])
}

func (suite *ProfileServiceTestSuite) TestAddTransactionPersistsAndBumpsVersion() {
	tx, err := suite.service.AddTransaction(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateTransactionRequest{
		Date:        "2025-05-10",
		Description: "Consultoria",
		Amount:      "1500.50",
		Type:        "receita",
		CategoryID:  "c1",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(tx.ID)
	suite.True(tx.Amount.Equal(decimal.RequireFromString("1500.50")))

	state, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)
	suite.Require().Len(state.Transactions, 1)
	suite.Equal(tx.ID, state.Transactions[0].ID)
	// Seed save plus mutation save.
	suite.Equal(int64(2), suite.repo.versions[stateKey(suite.userID, domain.ProfilePJ)])
}

func (suite *ProfileServiceTestSuite) TestAddTransactionCoercesBadAmountToZero() {
	tx, err := suite.service.AddTransaction(suite.ctx, suite.userID, domain.ProfilePF, dto.CreateTransactionRequest{
		Date:        "2025-05-10",
		Description: "Ajuste",
		Amount:      "not-a-number",
		Type:        "despesa",
	})
	suite.Require().NoError(err)
	suite.True(tx.Amount.IsZero())
}

func (suite *ProfileServiceTestSuite) TestDeleteTransactionNotFound() {
	err := suite.service.DeleteTransaction(suite.ctx, suite.userID, domain.ProfilePJ, "missing")
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProfileServiceTestSuite) TestDeleteReservedCategoryForbidden() {
	err := suite.service.DeleteCategory(suite.ctx, suite.userID, domain.ProfilePJ, domain.SystemTransferCategoryID)
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	// Rejected before any tree is touched.
	suite.Zero(suite.repo.saveCalls)
}

func (suite *ProfileServiceTestSuite) TestDeleteCategoryKeepsTransactionRefs() {
	_, err := suite.service.AddTransaction(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateTransactionRequest{
		Date: "2025-05-10", Description: "Venda", Amount: "100", Type: "receita", CategoryID: "c1",
	})
	suite.Require().NoError(err)

	err = suite.service.DeleteCategory(suite.ctx, suite.userID, domain.ProfilePJ, "c1")
	suite.Require().NoError(err)

	state, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)
	suite.Len(state.Categories, 3)
	suite.Equal("c1", state.Transactions[0].CategoryID, "dangling reference survives the delete")
}

func (suite *ProfileServiceTestSuite) TestUpsertBudgetReplacesKeepingID() {
	first, err := suite.service.UpsertBudget(suite.ctx, suite.userID, domain.ProfilePJ, dto.UpsertBudgetRequest{
		CategoryID: "c2", Amount: "300", Period: "monthly",
	})
	suite.Require().NoError(err)

	second, err := suite.service.UpsertBudget(suite.ctx, suite.userID, domain.ProfilePJ, dto.UpsertBudgetRequest{
		CategoryID: "c2", Amount: "450", Period: "monthly",
	})
	suite.Require().NoError(err)

	suite.Equal(first.ID, second.ID)
	suite.True(second.Amount.Equal(decimal.RequireFromString("450")))

	state, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)
	suite.Require().Len(state.Budgets, 1)
	suite.True(state.Budgets[0].Amount.Equal(decimal.RequireFromString("450")))
}

func (suite *ProfileServiceTestSuite) TestAddDistributionRuleRejectsOverAllocation() {
	_, err := suite.service.AddDistributionRule(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateDistributionRuleRequest{
		Name: "Impostos", Percentage: "60",
	})
	suite.Require().NoError(err)

	_, err = suite.service.AddDistributionRule(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateDistributionRuleRequest{
		Name: "Reserva", Percentage: "50",
	})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	state, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)
	suite.Len(state.Rules, 1)
}

func (suite *ProfileServiceTestSuite) TestAddDistributionRuleRejectsNegativePercentage() {
	_, err := suite.service.AddDistributionRule(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateDistributionRuleRequest{
		Name: "Inválida", Percentage: "-10",
	})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProfileServiceTestSuite) TestAddDistributionRuleRejectsZeroPercentage() {
	_, err := suite.service.AddDistributionRule(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateDistributionRuleRequest{
		Name: "Nula", Percentage: "0",
	})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProfileServiceTestSuite) TestAddDistributionRuleAllowsExactlyHundred() {
	_, err := suite.service.AddDistributionRule(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateDistributionRuleRequest{
		Name: "Tudo", Percentage: "100",
	})
	suite.Require().NoError(err)
}

func (suite *ProfileServiceTestSuite) TestUpdateSettingsPatchesOnlyProvidedFields() {
	taxRate := "8.5"
	state, err := suite.service.UpdateSettings(suite.ctx, suite.userID, domain.ProfilePF, dto.UpdateSettingsRequest{
		TaxRate: &taxRate,
	})
	suite.Require().NoError(err)

	suite.True(state.EffectiveTaxRate().Equal(decimal.RequireFromString("8.5")))
	suite.True(state.EffectiveWarRate().Equal(domain.DefaultWarRate), "untouched field keeps its value")
}

func (suite *ProfileServiceTestSuite) TestUpdateSettingsZeroRateSurvivesReload() {
	zero := "0"
	_, err := suite.service.UpdateSettings(suite.ctx, suite.userID, domain.ProfilePJ, dto.UpdateSettingsRequest{
		TaxRate: &zero,
	})
	suite.Require().NoError(err)

	// The fake round-trips through JSON like the JSONB column does, so a
	// default-restoring load would show up here.
	state, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)
	suite.Require().NotNil(state.TaxRate)
	suite.True(state.TaxRate.IsZero(), "explicit 0%% tax rate must not revert to the default")
	suite.True(state.EffectiveWarRate().Equal(domain.DefaultWarRate), "untouched rate keeps the seeded default")
}

func (suite *ProfileServiceTestSuite) TestChecklistItemDefaultsToCurrentMonthSetting() {
	month := "2025-07"
	_, err := suite.service.UpdateSettings(suite.ctx, suite.userID, domain.ProfilePJ, dto.UpdateSettingsRequest{
		ChecklistMonth: &month,
	})
	suite.Require().NoError(err)

	item, err := suite.service.AddChecklistItem(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateChecklistItemRequest{
		Text: "Emitir notas",
	})
	suite.Require().NoError(err)
	suite.Equal("2025-07", item.Month)
}

func (suite *ProfileServiceTestSuite) TestToggleChecklistItem() {
	item, err := suite.service.AddChecklistItem(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateChecklistItemRequest{
		Text: "Conciliar extrato", Month: "2025-05",
	})
	suite.Require().NoError(err)
	suite.False(item.Completed)

	toggled, err := suite.service.ToggleChecklistItem(suite.ctx, suite.userID, domain.ProfilePJ, item.ID)
	suite.Require().NoError(err)
	suite.True(toggled.Completed)

	toggled, err = suite.service.ToggleChecklistItem(suite.ctx, suite.userID, domain.ProfilePJ, item.ID)
	suite.Require().NoError(err)
	suite.False(toggled.Completed)
}

func (suite *ProfileServiceTestSuite) TestMutationRetriesAfterLostRace() {
	// Seed first so the retry path goes through the update branch.
	_, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)

	suite.repo.staleSaves = 1
	tx, err := suite.service.AddTransaction(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateTransactionRequest{
		Date: "2025-05-10", Description: "Venda", Amount: "10", Type: "receita",
	})
	suite.Require().NoError(err)

	state, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)
	suite.Require().Len(state.Transactions, 1)
	suite.Equal(tx.ID, state.Transactions[0].ID)
}

func (suite *ProfileServiceTestSuite) TestMutationGivesUpAfterRepeatedRaces() {
	_, err := suite.service.GetProfile(suite.ctx, suite.userID, domain.ProfilePJ)
	suite.Require().NoError(err)

	suite.repo.staleSaves = 10
	_, err = suite.service.AddTransaction(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateTransactionRequest{
		Date: "2025-05-10", Description: "Venda", Amount: "10", Type: "receita",
	})
	suite.Require().ErrorIs(err, apperrors.ErrStaleWrite)
}

func (suite *ProfileServiceTestSuite) TestCardFieldsDroppedOnNonCardAccounts() {
	acc, err := suite.service.AddAccount(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateAccountRequest{
		Name: "Carteira", Type: "wallet", InitialBalance: "100", Limit: "5000", ClosingDay: 28, DueDay: 5,
	})
	suite.Require().NoError(err)
	suite.True(acc.Limit.IsZero())
	suite.Zero(acc.ClosingDay)

	card, err := suite.service.AddAccount(suite.ctx, suite.userID, domain.ProfilePJ, dto.CreateAccountRequest{
		Name: "Cartão", Type: "credit_card", Limit: "5000", ClosingDay: 28, DueDay: 5,
	})
	suite.Require().NoError(err)
	suite.True(card.Limit.Equal(decimal.RequireFromString("5000")))
	suite.Equal(28, card.ClosingDay)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
