package metoffice

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// forecastSlot caches the last parsed response for one forecast kind. The
// mutex covers the whole check-fetch-store sequence so concurrent callers
// never trigger duplicate fetches or observe a half-replaced value.
//
// A cached forecast counts as fresh while its own model run timestamp is
// younger than the configured TTL. A failed fetch leaves the previous value
// in place.
type forecastSlot[TS timeSeriesEntry] struct {
	mu   sync.Mutex
	data *FeatureCollection[TS]
	disk *diskCache[TS]
}

func (s *forecastSlot[TS]) getOrFetch(ttl time.Duration, now time.Time, fetch func() (*FeatureCollection[TS], error)) (*FeatureCollection[TS], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Fall back to the disk cache when nothing is held in memory yet, for
	// example right after a restart.
	if s.data == nil && s.disk != nil {
		if cached, err := s.disk.load(); err == nil && cached != nil {
			s.data = cached
		}
	}

	if s.data != nil {
		if run, ok := s.data.ModelRun(); ok && now.Sub(run) < ttl {
			return s.data, true, nil
		}
	}

	fresh, err := fetch()
	if err != nil {
		return nil, false, err
	}
	s.data = fresh
	if s.disk != nil {
		if err := s.disk.store(fresh); err != nil {
			return nil, false, fmt.Errorf("failed updating the forecast disk cache: %w", err)
		}
	}
	return fresh, false, nil
}

// diskCache persists the last parsed forecast of one kind as a JSON file, so
// a restarted process can reuse a still-fresh model run without spending an
// API call. Freshness is judged from the stored tree's own model run
// timestamp, so no separate metadata file is needed.
type diskCache[TS timeSeriesEntry] struct {
	directory string
	name      string
}

func (d *diskCache[TS]) filePath() string {
	return filepath.Join(d.directory, fmt.Sprintf("metoffice-%s.json", d.name))
}

func (d *diskCache[TS]) load() (*FeatureCollection[TS], error) {
	return readJSONFromFile[FeatureCollection[TS]](d.filePath())
}

func (d *diskCache[TS]) store(collection *FeatureCollection[TS]) error {
	if err := os.MkdirAll(d.directory, os.ModePerm); err != nil {
		return err
	}
	data, err := json.MarshalIndent(collection, "", " ")
	if err != nil {
		return fmt.Errorf("failed converting the forecast to json: %w", err)
	}
	if err := os.WriteFile(d.filePath(), data, os.ModePerm); err != nil {
		return fmt.Errorf("failed storing the cache file: %w", err)
	}
	return nil
}

func (d *diskCache[TS]) clear() error {
	err := os.Remove(d.filePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func readJSONFromFile[T any](filePath string) (*T, error) {
	fileDescriptor, err := os.Open(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error reading the file '%s': %w", filePath, err)
	}
	defer fileDescriptor.Close()
	var dataObject T
	if err := json.NewDecoder(fileDescriptor).Decode(&dataObject); err != nil {
		return nil, fmt.Errorf("error converting the file '%s' to json: %w", filePath, err)
	}
	return &dataObject, nil
}
