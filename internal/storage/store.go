package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Edit is one entry of the response-change log.
type Edit struct {
	Elapsed  time.Duration
	Response string
}

type AttemptMetadata struct {
	ID        string    `json:"id"`
	Puzzle    string    `json:"puzzle"`
	Timestamp time.Time `json:"timestamp"`
	Answer    string    `json:"answer"`
	Response  string    `json:"response"`
	Correct   bool      `json:"correct"`
	Marked    int       `json:"marked"`
	Edits     int       `json:"edits"`
	Duration  float64   `json:"duration_seconds"`
}

type Attempt struct {
	Puzzle   string
	Answer   string
	Response string
	Correct  bool
	Marked   int
	Started  time.Time
	Finished time.Time
	Edits    []Edit
}

func (s *Store) Save(a *Attempt) (string, error) {
	id := fmt.Sprintf("%s_%s", a.Puzzle, uuid.NewString()[:8])
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := AttemptMetadata{
		ID:        id,
		Puzzle:    a.Puzzle,
		Timestamp: a.Finished,
		Answer:    a.Answer,
		Response:  a.Response,
		Correct:   a.Correct,
		Marked:    a.Marked,
		Edits:     len(a.Edits),
		Duration:  a.Finished.Sub(a.Started).Seconds(),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "responses.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"elapsed_ms", "response"}); err != nil {
		return "", err
	}
	for _, e := range a.Edits {
		row := []string{strconv.FormatInt(e.Elapsed.Milliseconds(), 10), e.Response}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return id, nil
}

// List returns every stored attempt, oldest first.
func (s *Store) List() ([]AttemptMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []AttemptMetadata{}, nil
		}
		return nil, err
	}

	attempts := make([]AttemptMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		attempts = append(attempts, *meta)
	}

	sort.Slice(attempts, func(i, j int) bool {
		return attempts[i].Timestamp.Before(attempts[j].Timestamp)
	})
	return attempts, nil
}

func (s *Store) Load(id string) (*AttemptMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta AttemptMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadEdits(id string) ([]Edit, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "responses.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	edits := make([]Edit, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		ms, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			continue
		}
		edits = append(edits, Edit{Elapsed: time.Duration(ms) * time.Millisecond, Response: record[1]})
	}

	return edits, nil
}

// RunningAccuracy returns, for each attempt in order, the share of correct
// attempts up to and including it.
func RunningAccuracy(attempts []AttemptMetadata) []float64 {
	out := make([]float64, len(attempts))
	correct := 0
	for i, a := range attempts {
		if a.Correct {
			correct++
		}
		out[i] = float64(correct) / float64(i+1)
	}
	return out
}
