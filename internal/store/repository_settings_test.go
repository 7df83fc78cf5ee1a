package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

func newTestSettingsRepo(t *testing.T) (SettingsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewSettingsRepository(&DB{DB: db, logger: l}, l), mock
}

func TestSaveTheme(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("theme", "dark", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveTheme(context.Background(), models.ThemeDark)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadTheme(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   models.Theme
	}{
		{name: "dark", stored: ptr("dark"), want: models.ThemeDark},
		{name: "light", stored: ptr("light"), want: models.ThemeLight},
		{name: "garbage falls back to light", stored: ptr("solarized"), want: models.ThemeLight},
		{name: "missing falls back to light", stored: nil, want: models.ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSettingsRepo(t)

			rows := sqlmock.NewRows([]string{"value"})
			if tt.stored != nil {
				rows.AddRow(*tt.stored)
			}
			mock.ExpectQuery("SELECT value").
				WithArgs("theme").
				WillReturnRows(rows)

			theme, err := repo.LoadTheme(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, theme)
		})
	}
}

func ptr(s string) *string { return &s }
