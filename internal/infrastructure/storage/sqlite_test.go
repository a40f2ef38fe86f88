package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), 5)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath, 5)
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file created with its parents")
	assert.NoError(t, store.Close())
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath, 5)
	require.NoError(t, err)
	ok, err := store.CreateOrResetAccount("knight", "secret")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, store.SaveProgress("knight", 7, []int{3, 4}))
	require.NoError(t, store.Close())

	store, err = Open(dbPath, 5)
	require.NoError(t, err)
	defer store.Close()

	score, err := store.Score("knight")
	require.NoError(t, err)
	assert.Equal(t, 7, score)
}

func TestCreateOrResetAccount(t *testing.T) {
	t.Run("empty credentials are rejected", func(t *testing.T) {
		store := createTestStore(t)

		for _, tc := range [][2]string{{"", "pw"}, {"knight", ""}, {"", ""}} {
			ok, err := store.CreateOrResetAccount(tc[0], tc[1])
			assert.NoError(t, err)
			assert.False(t, ok, "login=%q password=%q", tc[0], tc[1])
		}

		accounts, err := store.TopAccounts(10)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("new account starts empty", func(t *testing.T) {
		store := createTestStore(t)

		ok, err := store.CreateOrResetAccount("knight", "secret")
		require.NoError(t, err)
		assert.True(t, ok)

		score, err := store.Score("knight")
		require.NoError(t, err)
		assert.Zero(t, score)

		levels, err := store.LevelProgress("knight")
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0, 0, 0}, levels)
	})

	t.Run("existing account is reset", func(t *testing.T) {
		store := createTestStore(t)
		_, err := store.CreateOrResetAccount("knight", "old")
		require.NoError(t, err)
		require.NoError(t, store.SaveProgress("knight", 9, []int{4, 5, 0, 0, 0}))

		ok, err := store.CreateOrResetAccount("knight", "new")
		require.NoError(t, err)
		assert.True(t, ok)

		score, err := store.Score("knight")
		require.NoError(t, err)
		assert.Zero(t, score)
		levels, err := store.LevelProgress("knight")
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0, 0, 0}, levels)

		ok, err = store.Authenticate("knight", "old")
		require.NoError(t, err)
		assert.False(t, ok, "old password replaced")
		ok, err = store.Authenticate("knight", "new")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAuthenticate(t *testing.T) {
	store := createTestStore(t)
	_, err := store.CreateOrResetAccount("knight", "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		login    string
		password string
		want     bool
	}{
		{"correct", "knight", "secret", true},
		{"wrong password", "knight", "Secret", false},
		{"unknown login", "squire", "secret", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := store.Authenticate(tt.login, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestPasswordsAreNotStoredInClear(t *testing.T) {
	store := createTestStore(t)
	_, err := store.CreateOrResetAccount("knight", "secret")
	require.NoError(t, err)

	var stored string
	require.NoError(t, store.db.QueryRow("SELECT password FROM players WHERE nick = ?", "knight").Scan(&stored))
	assert.NotEqual(t, "secret", stored)
	assert.Len(t, stored, 64)
}

func TestSaveProgress(t *testing.T) {
	store := createTestStore(t)
	_, err := store.CreateOrResetAccount("knight", "secret")
	require.NoError(t, err)

	require.NoError(t, store.SaveProgress("knight", 12, []int{1, 2, 3, 4, 2, 99}))

	score, err := store.Score("knight")
	require.NoError(t, err)
	assert.Equal(t, 12, score)

	levels, err := store.LevelProgress("knight")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 2}, levels, "extra levels dropped")

	require.NoError(t, store.SaveProgress("knight", 1, []int{1}))
	levels, err = store.LevelProgress("knight")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 0, 0}, levels, "missing levels padded")
}

func TestUnknownAccount(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Score("ghost")
	assert.ErrorIs(t, err, ErrUnknownAccount)

	_, err = store.LevelProgress("ghost")
	assert.ErrorIs(t, err, ErrUnknownAccount)

	err = store.SaveProgress("ghost", 1, nil)
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestTopAccounts(t *testing.T) {
	store := createTestStore(t)
	for login, score := range map[string]int{"a": 3, "b": 10, "c": 7} {
		_, err := store.CreateOrResetAccount(login, "pw")
		require.NoError(t, err)
		require.NoError(t, store.SaveProgress(login, score, []int{score}))
	}

	accounts, err := store.TopAccounts(2)
	require.NoError(t, err)

	require.Len(t, accounts, 2)
	assert.Equal(t, "b", accounts[0].Login)
	assert.Equal(t, 10, accounts[0].Score)
	assert.Equal(t, []int{10, 0, 0, 0, 0}, accounts[0].Levels)
	assert.Equal(t, "c", accounts[1].Login)
}

func TestLevelsCodec(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"0,0,0,0,0", []int{0, 0, 0, 0, 0}},
		{"1, 2,3", []int{1, 2, 3}},
		{"4,x,6", []int{4, 0, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeLevels(tt.in))
		})
	}

	assert.Equal(t, "0,0,0,0,0", EncodeLevels(make([]int, 5)))
	assert.Equal(t, "3,1", EncodeLevels([]int{3, 1}))
}
