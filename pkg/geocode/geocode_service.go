package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

type (
	GeocodeService interface {
		Resolve(ctx context.Context, address string) *Coordinates
	}

	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	geocodeService struct {
		baseURL    string
		httpClient *http.Client

		mu    sync.RWMutex
		cache map[string]*Coordinates
	}
)

const lookupTimeout = 5 * time.Second

func NewGeocodeService(baseURL string) GeocodeService {
	return &geocodeService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: lookupTimeout},
		cache:      make(map[string]*Coordinates),
	}
}

// Resolve looks up coordinates for a free-text address. Lookup failures are
// soft: a nil result means the address could not be resolved and the caller
// proceeds without coordinates.
func (s *geocodeService) Resolve(ctx context.Context, address string) *Coordinates {
	key := normalizeAddress(address)
	if key == "" || s.baseURL == "" {
		return nil
	}

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	coords := s.lookup(ctx, key)
	if coords == nil {
		// one bounded retry; transient transport errors are common here
		time.Sleep(200 * time.Millisecond)
		coords = s.lookup(ctx, key)
	}

	if coords != nil {
		s.mu.Lock()
		s.cache[key] = coords
		s.mu.Unlock()
	}

	return coords
}

func (s *geocodeService) lookup(ctx context.Context, address string) *Coordinates {
	lookupURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", s.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil
	}

	if len(results) == 0 {
		return nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil
	}

	return &Coordinates{Latitude: lat, Longitude: lng}
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
