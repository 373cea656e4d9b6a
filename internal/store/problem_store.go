package store

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"elevhtn/internal/domain"
)

const problemsDir = "problems"

// ProblemFileStore persists built problems, one file per name.
type ProblemFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewProblemFileStore returns a ProblemFileStore rooted at home.
func NewProblemFileStore(home string) *ProblemFileStore {
	return &ProblemFileStore{dir: filepath.Join(home, problemsDir)}
}

// SaveProblem writes problem under name, replacing any earlier record.
func (s *ProblemFileStore) SaveProblem(name domain.ProblemName, problem domain.Problem) error {
	path, err := recordPath(s.dir, string(name))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(path, problem)
}

// LoadProblem retrieves the problem stored under name.
func (s *ProblemFileStore) LoadProblem(name domain.ProblemName) (domain.Problem, bool, error) {
	path, err := recordPath(s.dir, string(name))
	if err != nil {
		return domain.Problem{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var p domain.Problem
	ok, err := readJSON(path, &p)
	if err != nil || !ok {
		return domain.Problem{}, false, err
	}
	return p, true, nil
}

// ListProblems returns the stored names in lexical order.
func (s *ProblemFileStore) ListProblems() ([]domain.ProblemName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []domain.ProblemName
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasSuffix(n, ".json") {
			continue
		}
		names = append(names, domain.ProblemName(strings.TrimSuffix(n, ".json")))
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names, nil
}

var _ domain.ProblemStore = (*ProblemFileStore)(nil)
