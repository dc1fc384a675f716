package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupExactMatch(t *testing.T) {
	reg := NewRegistry(DefaultUsers)

	u, ok := reg.Lookup("admin", "1234")
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.Equal(t, "Administrateur", u.Name)
}

func TestLookupIsCaseSensitive(t *testing.T) {
	reg := NewRegistry(DefaultUsers)

	_, ok := reg.Lookup("Admin", "1234")
	assert.False(t, ok)
	_, ok = reg.Lookup("admin", "wrong")
	assert.False(t, ok)
}

func TestLoadFromFileEmptyPathUsesDefaults(t *testing.T) {
	reg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Len(t, reg.All(), len(DefaultUsers))
}

func TestLoadFromFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users":[{"username":"chef","password":"s3cret","name":"Chef","role":"usine"}]}`), 0o644))

	reg, err := LoadFromFile(path)
	require.NoError(t, err)
	u, ok := reg.Lookup("chef", "s3cret")
	require.True(t, ok)
	assert.Equal(t, RoleProduction, u.Role)
}

func TestLoadFromFileRejectsUnknownRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users":[{"username":"x","password":"y","name":"X","role":"patron"}]}`), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestAllReturnsCopy(t *testing.T) {
	reg := NewRegistry(DefaultUsers)
	all := reg.All()
	all[0].Username = "mutated"

	u, ok := reg.Lookup("admin", "1234")
	require.True(t, ok)
	assert.Equal(t, "admin", u.Username)
}
