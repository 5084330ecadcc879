package village

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"village-delivery-sim/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestDefaultVillage(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)
	require.Len(t, m.Graph.Locations(), 11)
	require.True(t, m.Graph.HasLocation(PostOffice))
}

func TestMailRouteCoversVillage(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	visited := map[string]bool{}
	at := PostOffice
	for _, stop := range m.MailRoute {
		require.True(t, m.Graph.HasRoad(at, stop), "no road %s -> %s", at, stop)
		visited[stop] = true
		at = stop
	}
	require.Equal(t, PostOffice, at, "mail route must end where it starts")

	for _, place := range m.Graph.Locations() {
		require.True(t, visited[place], "mail route skips %s", place)
	}
}

func TestDefaultReturnsIndependentRoute(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	m.MailRoute[0] = "Moon"
	require.Equal(t, "Alice's House", MailRoute[0])
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"roads": ["A-B", "B-C"], "mail_route": ["B", "C", "B", "A"]}`), 0o600))

	m, err := Load(good)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, m.Graph.Locations())
	require.Equal(t, domain.Route{"B", "C", "B", "A"}, m.MailRoute)

	badStop := filepath.Join(dir, "bad_stop.json")
	require.NoError(t, os.WriteFile(badStop, []byte(`{"roads": ["A-B"], "mail_route": ["Z"]}`), 0o600))
	_, err = Load(badStop)
	require.ErrorIs(t, err, domain.ErrUnknownLocation)

	badRoad := filepath.Join(dir, "bad_road.json")
	require.NoError(t, os.WriteFile(badRoad, []byte(`{"roads": ["A"]}`), 0o600))
	_, err = Load(badRoad)
	require.ErrorIs(t, err, domain.ErrInvalidRoad)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{}`), 0o600))
	_, err = Load(empty)
	require.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestLoadJSONRejectsBrokenVillages(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "single stop without a loop",
			body:    `{"roads": ["Post Office-Alice's House", "Alice's House-Cabin", "Alice's House-Farm"], "mail_route": ["Cabin"]}`,
			wantErr: ErrInvalidMailRoute,
		},
		{
			name:    "consecutive stops without a road",
			body:    `{"roads": ["A-B", "B-C", "C-D", "D-A"], "mail_route": ["A", "C", "D", "A", "B"]}`,
			wantErr: ErrInvalidMailRoute,
		},
		{
			name:    "last stop does not lead back to the first",
			body:    `{"roads": ["A-B", "B-C"], "mail_route": ["A", "B", "C"]}`,
			wantErr: ErrInvalidMailRoute,
		},
		{
			name:    "place missing from the route",
			body:    `{"roads": ["A-B", "B-C"], "mail_route": ["A", "B"]}`,
			wantErr: ErrInvalidMailRoute,
		},
		{
			name:    "disconnected roads",
			body:    `{"roads": ["A-B", "C-D"], "mail_route": ["A", "B"]}`,
			wantErr: ErrDisconnected,
		},
	}

	dir := t.TempDir()
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("village_%d.json", i))
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			_, err := LoadJSON(path)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadJSONAllowsMissingMailRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roads_only.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"roads": ["A-B", "B-C"]}`), 0o600))

	m, err := LoadJSON(path)
	require.NoError(t, err)
	require.Empty(t, m.MailRoute)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	m, err := Load("  ")
	require.NoError(t, err)
	require.Equal(t, MailRoute, m.MailRoute)
}

func TestBundledVillageFileMatchesDefault(t *testing.T) {
	fromFile, err := Load(filepath.Join("..", "..", "data", "village.json"))
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)

	require.Equal(t, def.Graph.Locations(), fromFile.Graph.Locations())
	require.Equal(t, def.MailRoute, fromFile.MailRoute)
}
