// Package cardparser extracts character-card JSON from PNG tEXt chunks
// (V1/V2 card spec) and normalizes V1 cards into the V2 shape.
package cardparser

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amiantos/ursceal/pkg/models"
)

// ErrInvalidCard is returned when an image carries no parseable card:
// missing chara chunk, bad base64, bad JSON, or an unrecognizable shape.
var ErrInvalidCard = errors.New("invalid character card")

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

const (
	chunkHeaderLen  = 8 // 4-byte length + 4-byte type
	chunkCRCLen     = 4
	charaKeyword    = "chara"
	maxPayloadBytes = 64 << 20
)

// Parse extracts and normalizes the character card embedded in a PNG.
// The CRC of each chunk is not verified; the card lives in ancillary
// metadata and a bit flip there would fail base64 or JSON decoding anyway.
func Parse(data []byte) (*models.CharacterCard, error) {
	text, err := findCharaChunk(data)
	if err != nil {
		return nil, err
	}

	decoded, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: chara chunk is not valid base64: %v", ErrInvalidCard, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(decoded, &raw); err != nil {
		return nil, fmt.Errorf("%w: chara chunk is not valid JSON: %v", ErrInvalidCard, err)
	}

	return normalize(decoded, raw)
}

// findCharaChunk walks the PNG chunk stream and returns the text half of
// the first tEXt chunk keyed "chara".
func findCharaChunk(data []byte) (string, error) {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return "", fmt.Errorf("%w: missing PNG signature", ErrInvalidCard)
	}

	off := len(pngSignature)
	for {
		if off+chunkHeaderLen > len(data) {
			return "", fmt.Errorf("%w: truncated chunk stream", ErrInvalidCard)
		}
		length := binary.BigEndian.Uint32(data[off : off+4])
		if length > maxPayloadBytes {
			return "", fmt.Errorf("%w: chunk length %d exceeds limit", ErrInvalidCard, length)
		}
		chunkType := string(data[off+4 : off+8])
		payloadStart := off + chunkHeaderLen
		payloadEnd := payloadStart + int(length)
		if payloadEnd+chunkCRCLen > len(data) {
			return "", fmt.Errorf("%w: truncated %s chunk", ErrInvalidCard, chunkType)
		}

		switch chunkType {
		case "tEXt":
			payload := data[payloadStart:payloadEnd]
			if keyword, text, ok := splitTEXt(payload); ok && keyword == charaKeyword {
				return text, nil
			}
		case "IEND":
			return "", fmt.Errorf("%w: no chara tEXt chunk found", ErrInvalidCard)
		}

		off = payloadEnd + chunkCRCLen
	}
}

// splitTEXt separates a tEXt payload at its first NUL into keyword and text.
func splitTEXt(payload []byte) (keyword, text string, ok bool) {
	i := bytes.IndexByte(payload, 0)
	if i < 0 {
		return "", "", false
	}
	return string(payload[:i]), string(payload[i+1:]), true
}

// normalize returns a V2 card unchanged, or wraps a recognizable V1 card
// into the V2 envelope.
func normalize(decoded []byte, raw map[string]json.RawMessage) (*models.CharacterCard, error) {
	var specTag string
	if s, ok := raw["spec"]; ok {
		_ = json.Unmarshal(s, &specTag)
	}

	if specTag == models.CardSpecV2 {
		if _, ok := raw["data"]; !ok {
			return nil, fmt.Errorf("%w: v2 card has no data object", ErrInvalidCard)
		}
		var card models.CharacterCard
		if err := json.Unmarshal(decoded, &card); err != nil {
			return nil, fmt.Errorf("%w: v2 card decode failed: %v", ErrInvalidCard, err)
		}
		ensureDataDefaults(&card.Data)
		return &card, nil
	}

	// V1: a flat object with at least a name. Anything else is unrecognizable.
	var v1 models.CardData
	if err := json.Unmarshal(decoded, &v1); err != nil {
		return nil, fmt.Errorf("%w: v1 card decode failed: %v", ErrInvalidCard, err)
	}
	if v1.Name == "" {
		return nil, fmt.Errorf("%w: neither a v1 nor a v2 card shape", ErrInvalidCard)
	}

	ensureDataDefaults(&v1)
	v1.CharacterBook = nil
	return &models.CharacterCard{
		Spec:        models.CardSpecV2,
		SpecVersion: "2.0",
		Data:        v1,
	}, nil
}

func ensureDataDefaults(d *models.CardData) {
	if d.Extensions == nil {
		d.Extensions = map[string]any{}
	}
	if d.AlternateGreetings == nil {
		d.AlternateGreetings = []string{}
	}
}
