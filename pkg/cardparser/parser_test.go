package cardparser

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiantos/ursceal/pkg/models"
)

// buildPNG assembles a minimal PNG byte stream from raw chunks.
func buildPNG(chunks ...[]byte) []byte {
	out := append([]byte{}, pngSignature...)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// chunk encodes a single PNG chunk with a valid CRC.
func chunk(chunkType string, payload []byte) []byte {
	buf := make([]byte, 8, 8+len(payload)+4)
	binary.BigEndian.PutUint32(buf[:4], uint32(len(payload)))
	copy(buf[4:8], chunkType)
	buf = append(buf, payload...)
	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(payload)
	buf = binary.BigEndian.AppendUint32(buf, crc.Sum32())
	return buf
}

func textChunk(keyword, text string) []byte {
	payload := append([]byte(keyword), 0)
	payload = append(payload, []byte(text)...)
	return chunk("tEXt", payload)
}

func charaPNG(t *testing.T, card any) []byte {
	t.Helper()
	raw, err := json.Marshal(card)
	require.NoError(t, err)
	encoded := base64.StdEncoding.EncodeToString(raw)
	return buildPNG(
		chunk("IHDR", make([]byte, 13)),
		textChunk("chara", encoded),
		chunk("IEND", nil),
	)
}

func TestParse_V2RoundTrip(t *testing.T) {
	in := models.CharacterCard{
		Spec:        models.CardSpecV2,
		SpecVersion: "2.0",
		Data: models.CardData{
			Name:               "Seren",
			Description:        "A wandering cartographer.",
			Personality:        "curious, dry-witted",
			Scenario:           "Mapping the northern coast.",
			FirstMes:           "The tide charts are wrong again.",
			MesExample:         "<START>\n{{user}}: hello\n{{char}}: hm.",
			AlternateGreetings: []string{"You again?"},
			Tags:               []string{"fantasy"},
			Creator:            "someone",
			CharacterVersion:   "1.1",
			Extensions:         map[string]any{"custom": "kept"},
		},
	}

	card, err := Parse(charaPNG(t, in))
	require.NoError(t, err)
	assert.Equal(t, in.Spec, card.Spec)
	assert.Equal(t, in.Data.Name, card.Data.Name)
	assert.Equal(t, in.Data.MesExample, card.Data.MesExample)
	assert.Equal(t, in.Data.AlternateGreetings, card.Data.AlternateGreetings)
	assert.Equal(t, "kept", card.Data.Extensions["custom"])
}

func TestParse_V1Wrapped(t *testing.T) {
	v1 := map[string]any{
		"name":        "Old Card",
		"description": "pre-spec flat card",
		"personality": "gruff",
		"scenario":    "a tavern",
		"first_mes":   "What do you want?",
		"mes_example": "",
	}

	card, err := Parse(charaPNG(t, v1))
	require.NoError(t, err)
	assert.Equal(t, models.CardSpecV2, card.Spec)
	assert.Equal(t, "2.0", card.SpecVersion)
	assert.Equal(t, "Old Card", card.Data.Name)
	assert.Equal(t, "pre-spec flat card", card.Data.Description)
	assert.Nil(t, card.Data.CharacterBook)
	assert.NotNil(t, card.Data.Extensions)
	assert.Empty(t, card.Data.AlternateGreetings)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "not a png",
			data: []byte("definitely not a png"),
		},
		{
			name: "no chara chunk",
			data: buildPNG(chunk("IHDR", make([]byte, 13)), textChunk("comment", "hi"), chunk("IEND", nil)),
		},
		{
			name: "invalid base64",
			data: buildPNG(chunk("IHDR", make([]byte, 13)), textChunk("chara", "!!not base64!!"), chunk("IEND", nil)),
		},
		{
			name: "invalid json",
			data: buildPNG(
				chunk("IHDR", make([]byte, 13)),
				textChunk("chara", base64.StdEncoding.EncodeToString([]byte("{broken"))),
				chunk("IEND", nil),
			),
		},
		{
			name: "unrecognizable shape",
			data: buildPNG(
				chunk("IHDR", make([]byte, 13)),
				textChunk("chara", base64.StdEncoding.EncodeToString([]byte(`{"foo":1}`))),
				chunk("IEND", nil),
			),
		},
		{
			name: "truncated chunk stream",
			data: buildPNG(chunk("IHDR", make([]byte, 13)))[:12],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			require.ErrorIs(t, err, ErrInvalidCard)
		})
	}
}

func TestParse_ChunkBeforeIENDOnly(t *testing.T) {
	// A chara chunk after IEND must not be picked up.
	data := buildPNG(
		chunk("IHDR", make([]byte, 13)),
		chunk("IEND", nil),
		textChunk("chara", base64.StdEncoding.EncodeToString([]byte(`{"name":"Ghost"}`))),
	)
	_, err := Parse(data)
	require.ErrorIs(t, err, ErrInvalidCard)
}
