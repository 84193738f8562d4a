package chub

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"hash/crc32"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCharacterPath(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://chub.ai/characters/someone/seren-cartographer", "someone/seren-cartographer", true},
		{"https://www.chub.ai/characters/a/b/", "a/b", true},
		{"https://api.chub.ai/api/characters/a/b", "a/b", true},
		{"https://example.com/characters/a", "", false},
		{"not a url", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ExtractCharacterPath(tt.url)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, ErrInvalidURL)
			}
		})
	}
}

// cardPNG builds a minimal PNG with an embedded chara chunk.
func cardPNG(t *testing.T, card map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(card)
	require.NoError(t, err)

	chunk := func(chunkType string, payload []byte) []byte {
		buf := make([]byte, 8, 8+len(payload)+4)
		binary.BigEndian.PutUint32(buf[:4], uint32(len(payload)))
		copy(buf[4:8], chunkType)
		buf = append(buf, payload...)
		crc := crc32.NewIEEE()
		crc.Write([]byte(chunkType))
		crc.Write(payload)
		return binary.BigEndian.AppendUint32(buf, crc.Sum32())
	}

	payload := append([]byte("chara"), 0)
	payload = append(payload, []byte(base64.StdEncoding.EncodeToString(raw))...)

	out := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	out = append(out, chunk("IHDR", make([]byte, 13))...)
	out = append(out, chunk("tEXt", payload)...)
	out = append(out, chunk("IEND", nil)...)
	return out
}

func TestImport_FullPathFlow(t *testing.T) {
	png := cardPNG(t, map[string]any{"name": "Seren", "description": "maps"})

	avatarSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/someone/seren/chara_card_v2.png", r.URL.Path)
		_, _ = w.Write(png)
	}))
	defer avatarSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/someone/seren", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Equal(t, "https://chub.ai/", r.Header.Get("Referer"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"node": map[string]any{"full_path": "someone/seren"},
		})
	}))
	defer apiSrv.Close()

	imp := NewImporter()
	imp.SetEndpoints(apiSrv.URL, avatarSrv.URL)

	card, image, err := imp.Import(context.Background(), "https://chub.ai/characters/someone/seren")
	require.NoError(t, err)
	assert.Equal(t, "Seren", card.Data.Name)
	assert.Equal(t, png, image)
}

func TestImport_MaxResURLFallback(t *testing.T) {
	png := cardPNG(t, map[string]any{"name": "Brom"})

	imageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(png)
	}))
	defer imageSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"node": map[string]any{"max_res_url": imageSrv.URL + "/card.png"},
		})
	}))
	defer apiSrv.Close()

	imp := NewImporter()
	imp.SetEndpoints(apiSrv.URL, "http://unused")

	card, _, err := imp.Import(context.Background(), "https://chub.ai/characters/a/b")
	require.NoError(t, err)
	assert.Equal(t, "Brom", card.Data.Name)
}

func TestImport_InvalidURL(t *testing.T) {
	imp := NewImporter()
	_, _, err := imp.Import(context.Background(), "https://nothub.example/characters/a")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestImport_APIFailure(t *testing.T) {
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer apiSrv.Close()

	imp := NewImporter()
	imp.SetEndpoints(apiSrv.URL, "http://unused")

	_, _, err := imp.Import(context.Background(), "https://chub.ai/characters/a/b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}
