package save

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/player"
	"github.com/zappabad/paperhands/internal/rng"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "saves", "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testDocument(t *testing.T) Document {
	t.Helper()
	m := market.New(market.DefaultConfig(), rng.New(1), zerolog.Nop())
	h := market.NewHandle(m)
	p := player.New("saver", player.DefaultConfig(), h, zerolog.Nop())
	return Document{
		Market: m.Snapshot(),
		Player: p.Snapshot(),
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	doc := testDocument(t)

	require.NoError(t, s.Save("slot1", doc))

	loaded, err := s.Load("slot1")
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, loaded.SaveVersion)
	assert.NotEmpty(t, loaded.SavedAt)
	assert.Equal(t, "saver", loaded.Player.Name)
	assert.Len(t, loaded.Market.Companies, len(doc.Market.Companies))
	assert.InDelta(t, doc.Market.IndexValue, loaded.Market.IndexValue, 1e-9)
}

func TestSaveOverwritesSlot(t *testing.T) {
	s := openTestStore(t)
	doc := testDocument(t)

	require.NoError(t, s.Save("slot1", doc))
	doc.Player.Name = "renamed"
	require.NoError(t, s.Save("slot1", doc))

	loaded, err := s.Load("slot1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", loaded.Player.Name)

	infos, err := s.List()
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestLoadMissingSlot(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	s := openTestStore(t)
	doc := testDocument(t)
	require.NoError(t, s.Save("slot1", doc))

	// Rewrite the stored payload to claim a future version.
	_, err := s.db.Exec(
		`UPDATE saves SET data = ? WHERE slot = ?`,
		[]byte(`{"save_version": 99}`), "slot1",
	)
	require.NoError(t, err)

	_, err = s.Load("slot1")
	assert.ErrorIs(t, err, ErrVersionTooNew)
}

func TestListSurfacesCorruptRows(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Save("good", testDocument(t)))
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, save_version, saved_at, data) VALUES (?, ?, ?, ?)`,
		"bad", 1, "2024-01-01T00:00:00Z", []byte("not json"),
	)
	require.NoError(t, err)

	infos, err := s.List()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	bySlot := map[string]Info{}
	for _, info := range infos {
		bySlot[info.Slot] = info
	}
	assert.False(t, bySlot["good"].Corrupt)
	assert.Equal(t, "saver", bySlot["good"].PlayerName)
	assert.True(t, bySlot["bad"].Corrupt)
	assert.Equal(t, "(corrupt save)", bySlot["bad"].PlayerName)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Save("slot1", testDocument(t)))

	require.NoError(t, s.Delete("slot1"))
	assert.ErrorIs(t, s.Delete("slot1"), ErrNotFound)

	_, err := s.Load("slot1")
	assert.ErrorIs(t, err, ErrNotFound)
}
