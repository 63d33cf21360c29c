package gamedata

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// BoardRegistry holds every embedded board definition, keyed by name.
type BoardRegistry struct {
	boards map[string]*BoardDef
	names  []string
}

// NewBoardRegistry creates a registry from loaded board definitions.
// Later definitions replace earlier ones with the same name.
func NewBoardRegistry(boards []BoardDef) *BoardRegistry {
	registry := &BoardRegistry{
		boards: make(map[string]*BoardDef, len(boards)),
	}
	for i := range boards {
		if _, ok := registry.boards[boards[i].Name]; !ok {
			registry.names = append(registry.names, boards[i].Name)
		}
		registry.boards[boards[i].Name] = &boards[i]
	}
	sort.Strings(registry.names)
	return registry
}

// LoadBoardRegistry loads every embedded *.json board.
func LoadBoardRegistry() (*BoardRegistry, error) {
	entries, err := dataFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded boards: %w", err)
	}

	var boards []BoardDef
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		board, err := Load[BoardDef](entry.Name())
		if err != nil {
			return nil, err
		}
		if board.Name == "" {
			board.Name = strings.TrimSuffix(entry.Name(), ".json")
		}
		boards = append(boards, board)
	}
	if len(boards) == 0 {
		return nil, errors.New("no boards embedded")
	}
	return NewBoardRegistry(boards), nil
}

// MustLoadBoardRegistry loads a registry, panicking on error.
func MustLoadBoardRegistry() *BoardRegistry {
	registry, err := LoadBoardRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByName returns the board with the given name, or nil if not found.
func (r *BoardRegistry) GetByName(name string) *BoardDef {
	return r.boards[name]
}

// Names returns the registered board names in sorted order.
func (r *BoardRegistry) Names() []string {
	return r.names
}

// Count returns the number of boards in the registry.
func (r *BoardRegistry) Count() int {
	return len(r.names)
}

// Resolve returns the board named nameOrPath, or loads it from disk when the
// value ends in .json. A board file without a name is named after the file.
func (r *BoardRegistry) Resolve(nameOrPath string) (BoardDef, error) {
	if strings.HasSuffix(nameOrPath, ".json") {
		board, err := LoadFile[BoardDef](nameOrPath)
		if err != nil {
			return BoardDef{}, err
		}
		if board.Name == "" {
			board.Name = strings.TrimSuffix(filepath.Base(nameOrPath), ".json")
		}
		return board, nil
	}

	board := r.GetByName(nameOrPath)
	if board == nil {
		return BoardDef{}, fmt.Errorf("unknown board %q (available: %s)", nameOrPath, strings.Join(r.names, ", "))
	}
	return *board, nil
}
