package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const searchesFile = "searches.json"

// maxSavedSearches bounds the history so the file never grows unbounded.
const maxSavedSearches = 20

// SavedSearch is one remembered explore query.
type SavedSearch struct {
	Destination string    `json:"destination"`
	HomeAirport string    `json:"home_airport,omitempty"`
	SavedAt     time.Time `json:"saved_at"`
}

func searchesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "flywithpoints")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, searchesFile), nil
}

// RememberSearch prepends the search, dropping earlier entries for the
// same destination. Blank destinations are ignored.
func RememberSearch(destination, homeAirport string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil
	}
	searches, err := LoadSearches()
	if err != nil {
		return err
	}
	kept := []SavedSearch{{
		Destination: destination,
		HomeAirport: strings.ToUpper(strings.TrimSpace(homeAirport)),
		SavedAt:     time.Now().UTC(),
	}}
	for _, s := range searches {
		if strings.EqualFold(s.Destination, destination) {
			continue
		}
		kept = append(kept, s)
		if len(kept) == maxSavedSearches {
			break
		}
	}
	return SaveSearches(kept)
}

func SaveSearches(searches []SavedSearch) error {
	path, err := searchesPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(searches, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func LoadSearches() ([]SavedSearch, error) {
	path, err := searchesPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var searches []SavedSearch
	if err := json.Unmarshal(data, &searches); err != nil {
		return nil, err
	}
	return searches, nil
}
