// Package chub fetches character archives from chub.ai and extracts the
// embedded character card.
package chub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/amiantos/ursceal/pkg/cardparser"
	"github.com/amiantos/ursceal/pkg/models"
)

// ErrInvalidURL is returned when the input is not a recognizable chub.ai
// character URL.
var ErrInvalidURL = errors.New("not a chub.ai character URL")

const (
	defaultAPIBase    = "https://api.chub.ai/api/characters"
	defaultAvatarBase = "https://avatars.charhub.io/avatars"

	// A browser-like agent; the API refuses obvious bots.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
	referer   = "https://chub.ai/"

	maxDownloadBytes = 32 << 20
)

var characterPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`api\.chub\.ai/api/characters/(.+)`),
	regexp.MustCompile(`chub\.ai/characters/(.+)`),
}

// Importer downloads and parses chub.ai character cards.
type Importer struct {
	client     *http.Client
	apiBase    string
	avatarBase string
}

// NewImporter creates an importer with production endpoints.
func NewImporter() *Importer {
	return &Importer{
		client:     &http.Client{},
		apiBase:    defaultAPIBase,
		avatarBase: defaultAvatarBase,
	}
}

// SetHTTPClient replaces the HTTP client, used by tests.
func (i *Importer) SetHTTPClient(c *http.Client) { i.client = c }

// SetEndpoints overrides the API and avatar base URLs, used by tests.
func (i *Importer) SetEndpoints(apiBase, avatarBase string) {
	i.apiBase = strings.TrimSuffix(apiBase, "/")
	i.avatarBase = strings.TrimSuffix(avatarBase, "/")
}

// ExtractCharacterPath pulls the character path out of a chub.ai URL.
func ExtractCharacterPath(url string) (string, error) {
	for _, re := range characterPathPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			path := strings.Trim(m[1], "/")
			if path != "" {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidURL, url)
}

// chubNode is the slice of the character API response we need.
type chubNode struct {
	FullPathSnake string `json:"full_path"`
	FullPathCamel string `json:"fullPath"`
	MaxResURL     string `json:"max_res_url"`
	AvatarURL     string `json:"avatar_url"`
}

type chubResponse struct {
	Node chubNode `json:"node"`
}

// Import fetches the character metadata and card image for a chub.ai URL
// and returns the parsed card together with the raw PNG bytes.
func (i *Importer) Import(ctx context.Context, url string) (*models.CharacterCard, []byte, error) {
	path, err := ExtractCharacterPath(url)
	if err != nil {
		return nil, nil, err
	}

	node, err := i.fetchNode(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	imageURL := i.resolveImageURL(node)
	if imageURL == "" {
		return nil, nil, fmt.Errorf("character %s has no downloadable card image", path)
	}

	image, err := i.download(ctx, imageURL)
	if err != nil {
		return nil, nil, err
	}

	card, err := cardparser.Parse(image)
	if err != nil {
		return nil, nil, err
	}
	return card, image, nil
}

func (i *Importer) fetchNode(ctx context.Context, path string) (*chubNode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.apiBase+"/"+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching character metadata: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("character API returned HTTP %d", resp.StatusCode)
	}

	var parsed chubResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding character metadata: %w", err)
	}
	return &parsed.Node, nil
}

// resolveImageURL picks the best card source the node offers. Path-style
// values (full_path) are turned into avatar-CDN card URLs.
func (i *Importer) resolveImageURL(node *chubNode) string {
	path := node.FullPathSnake
	if path == "" {
		path = node.FullPathCamel
	}
	if path != "" {
		if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
			return path
		}
		return i.avatarBase + "/" + strings.Trim(path, "/") + "/chara_card_v2.png"
	}
	if node.MaxResURL != "" {
		return node.MaxResURL
	}
	return node.AvatarURL
}

func (i *Importer) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading card image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("card download returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
	if err != nil {
		return nil, fmt.Errorf("reading card image: %w", err)
	}
	return data, nil
}
