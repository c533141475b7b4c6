package db

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/spanteq/console/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	return database
}

func seedSectionWithFields(t *testing.T, repo *SectionRepository, keys ...string) (models.Section, []models.Field) {
	t.Helper()
	section := models.Section{
		ID:         uuid.NewString(),
		Name:       "Vendors",
		Slug:       "vendors-" + uuid.NewString()[:8],
		ReadRoles:  []string{models.RoleRecruiter},
		WriteRoles: []string{models.RoleRecruiter},
	}
	require.NoError(t, repo.Create(&section))

	fields := make([]models.Field, 0, len(keys))
	for position, key := range keys {
		field := models.Field{
			ID:        uuid.NewString(),
			SectionID: section.ID,
			Key:       key,
			Label:     key,
			Kind:      models.FieldText,
			Options:   []models.FieldOption{},
			Order:     position + 1,
		}
		require.NoError(t, repo.CreateField(&field))
		fields = append(fields, field)
	}
	return section, fields
}

func TestCreateFieldPersistsEmptyOptionList(t *testing.T) {
	repo := NewSectionRepository(openTestDB(t))
	section, _ := seedSectionWithFields(t, repo, "vendor_name")

	fields, err := repo.ListFields(section.ID)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	require.NotNil(t, fields[0].Options)
	require.Empty(t, fields[0].Options)
	require.Equal(t, models.FieldText, fields[0].Kind)
}

func TestApplyFieldOrdersRewritesSequence(t *testing.T) {
	repo := NewSectionRepository(openTestDB(t))
	section, fields := seedSectionWithFields(t, repo, "name", "email", "phone")

	orders := map[string]int{
		fields[0].ID: 3,
		fields[1].ID: 1,
		fields[2].ID: 2,
	}
	require.NoError(t, repo.ApplyFieldOrders(section.ID, orders))

	reloaded, err := repo.ListFields(section.ID)
	require.NoError(t, err)
	require.Len(t, reloaded, 3)
	require.Equal(t, "email", reloaded[0].Key)
	require.Equal(t, "phone", reloaded[1].Key)
	require.Equal(t, "name", reloaded[2].Key)
}

func TestApplyFieldOrdersRollsBackOnUnknownField(t *testing.T) {
	repo := NewSectionRepository(openTestDB(t))
	section, fields := seedSectionWithFields(t, repo, "name", "email")

	orders := map[string]int{
		fields[0].ID:     2,
		fields[1].ID:     1,
		uuid.NewString(): 3,
	}
	err := repo.ApplyFieldOrders(section.ID, orders)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The transaction must leave the original sequence untouched.
	reloaded, err := repo.ListFields(section.ID)
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	require.Equal(t, "name", reloaded[0].Key)
	require.Equal(t, 1, reloaded[0].Order)
	require.Equal(t, "email", reloaded[1].Key)
	require.Equal(t, 2, reloaded[1].Order)
}

func TestApplyFieldOrdersIgnoresFieldsOfOtherSections(t *testing.T) {
	database := openTestDB(t)
	repo := NewSectionRepository(database)
	_, foreignFields := seedSectionWithFields(t, repo, "name")
	section, _ := seedSectionWithFields(t, repo, "title")

	err := repo.ApplyFieldOrders(section.ID, map[string]int{foreignFields[0].ID: 1})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteFieldClosesOrderGap(t *testing.T) {
	repo := NewSectionRepository(openTestDB(t))
	section, fields := seedSectionWithFields(t, repo, "name", "email", "phone", "city")

	require.NoError(t, repo.DeleteField(section.ID, fields[1].ID))

	reloaded, err := repo.ListFields(section.ID)
	require.NoError(t, err)
	require.Len(t, reloaded, 3)
	for position, field := range reloaded {
		require.Equal(t, position+1, field.Order)
	}
	require.Equal(t, "name", reloaded[0].Key)
	require.Equal(t, "phone", reloaded[1].Key)
	require.Equal(t, "city", reloaded[2].Key)
}

func TestDeleteCascadeRemovesFieldsAndRecords(t *testing.T) {
	database := openTestDB(t)
	sections := NewSectionRepository(database)
	records := NewRecordRepository(database)
	section, _ := seedSectionWithFields(t, sections, "name")

	record := models.Record{
		ID:        uuid.NewString(),
		SectionID: section.ID,
		Data:      map[string]any{"name": "Acme"},
		CreatedBy: 1,
	}
	require.NoError(t, records.Create(&record))

	require.NoError(t, sections.DeleteCascade(section.ID))

	_, err := sections.FindByID(section.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	remainingFields, err := sections.ListFields(section.ID)
	require.NoError(t, err)
	require.Empty(t, remainingFields)

	total, err := records.CountBySection(section.ID)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestSlugTakenByOther(t *testing.T) {
	repo := NewSectionRepository(openTestDB(t))
	section, _ := seedSectionWithFields(t, repo, "name")

	taken, err := repo.SlugTakenByOther(section.Slug, "some-other-id")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.SlugTakenByOther(section.Slug, section.ID)
	require.NoError(t, err)
	require.False(t, taken)
}

func TestFieldKeyTakenByOther(t *testing.T) {
	repo := NewSectionRepository(openTestDB(t))
	section, fields := seedSectionWithFields(t, repo, "name", "email")

	taken, err := repo.FieldKeyTakenByOther(section.ID, "email", fields[0].ID)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.FieldKeyTakenByOther(section.ID, "email", fields[1].ID)
	require.NoError(t, err)
	require.False(t, taken)
}
