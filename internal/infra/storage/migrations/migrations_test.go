package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(files, "sql")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestEmbeddedMigrations_SourceOpens(t *testing.T) {
	source, err := iofs.New(files, "sql")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)
}

func TestEmbeddedMigrations_DeclareExclusivityIndexes(t *testing.T) {
	data, err := fs.ReadFile(files, "sql/000001_facility_bookings.up.sql")
	require.NoError(t, err)
	ddl := string(data)

	assert.Contains(t, ddl, "party_hall_bookings_slot_active_uq")
	assert.Contains(t, ddl, "party_hall_bookings_user_date_active_uq")
	assert.Contains(t, ddl, "meeting_hall_bookings_slot_active_uq")

	data, err = fs.ReadFile(files, "sql/000002_parking_allocations.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(data), "parking_allocations_user_active_uq")
}
