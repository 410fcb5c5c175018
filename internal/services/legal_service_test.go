package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/dto"
	"github.com/yaswanth810/safety-beacon/internal/models"
	"gorm.io/gorm"
)

func seedLegal(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []models.LegalResource{
		{ID: uuid.New(), Category: "protective_orders", Title: "How to file for a Restraining Order", Content: "Court procedure overview."},
		{ID: uuid.New(), Category: "protective_orders", Title: "Appealing a denied application", Content: "Violating a restraining order is a criminal offence."},
		{ID: uuid.New(), Category: "harassment", Title: "Workplace complaints", Content: "Report in writing to the committee."},
		{ID: uuid.New(), Category: "legal_aid", Title: "Free legal aid", Content: "Eligibility and application steps."},
	}
	require.NoError(t, db.Create(&rows).Error)
}

func TestSearchSubstringCaseInsensitive(t *testing.T) {
	db := testDB(t)
	svc := NewLegalService(db)
	seedLegal(t, db)

	// Matches the title of one entry and the content of another.
	results, err := svc.Search("restraining", "")
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "protective_orders", r.Category)
	}
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	db := testDB(t)
	svc := NewLegalService(db)
	rows := []models.LegalResource{
		{ID: uuid.New(), Category: "legal_aid", Title: "Fees capped at 10% of award", Content: "Contingency fee rules."},
		{ID: uuid.New(), Category: "legal_aid", Title: "Top 10 safety tips", Content: "General guidance."},
		{ID: uuid.New(), Category: "legal_aid", Title: "Case no_123 lookup", Content: "Registry search."},
	}
	require.NoError(t, db.Create(&rows).Error)

	// "%" must not act as a wildcard.
	results, err := svc.Search("10%", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Fees capped at 10% of award", results[0].Title)

	// "_" must not match arbitrary single characters.
	results, err = svc.Search("no_1", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Case no_123 lookup", results[0].Title)

	results, err = svc.Search("no%1", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchCombinesTermAndCategory(t *testing.T) {
	db := testDB(t)
	svc := NewLegalService(db)
	seedLegal(t, db)

	results, err := svc.Search("restraining", "harassment")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = svc.Search("", "harassment")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Workplace complaints", results[0].Title)
}

func TestSearchOrdersByCategoryThenTitle(t *testing.T) {
	db := testDB(t)
	svc := NewLegalService(db)
	seedLegal(t, db)

	results, err := svc.Search("", "")
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "harassment", results[0].Category)
	assert.Equal(t, "legal_aid", results[1].Category)
	assert.Equal(t, "Appealing a denied application", results[2].Title)
	assert.Equal(t, "How to file for a Restraining Order", results[3].Title)
}

func TestLegalManagementAdminOnly(t *testing.T) {
	db := testDB(t)
	svc := NewLegalService(db)
	admin := authz.Actor{ID: uuid.New(), Roles: []string{models.RoleAdmin}}
	user := userActor()

	_, err := svc.Create(user, &dto.UpsertLegalResourceRequest{
		Category: "reporting", Title: "t", Content: "c",
	})
	assert.ErrorIs(t, err, ErrForbidden)

	created, err := svc.Create(admin, &dto.UpsertLegalResourceRequest{
		Category: "reporting", Title: "Filing a police report", Content: "Any station must accept it.",
	})
	require.NoError(t, err)

	updated, err := svc.Update(admin, created.ID, &dto.UpsertLegalResourceRequest{Title: "Filing an FIR"})
	require.NoError(t, err)
	assert.Equal(t, "Filing an FIR", updated.Title)

	assert.ErrorIs(t, svc.Delete(user, created.ID), ErrForbidden)
	require.NoError(t, svc.Delete(admin, created.ID))
	assert.ErrorIs(t, svc.Delete(admin, created.ID), ErrResourceNotFound)
}
