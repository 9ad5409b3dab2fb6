package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/oneshot/internal/domain"
	"github.com/trebuchet-org/oneshot/internal/domain/config"
	"github.com/trebuchet-org/oneshot/internal/domain/models"
)

const maxSuggestions = 3

// Store finds compiled contracts in a Hardhat artifacts/ or Foundry out/ directory
type Store struct {
	dir       string
	contracts []*models.Contract
	indexed   bool
	mu        sync.Mutex
}

// NewStore creates a store over the configured artifact directory
func NewStore(cfg *config.RuntimeConfig) *Store {
	return NewStoreAt(cfg.ArtifactsDir)
}

// NewStoreAt creates a store over dir
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// artifactHeader is the part of an artifact needed to index it
type artifactHeader struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Metadata     struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	} `json:"metadata"`
}

// index walks the artifact directory once
func (s *Store) index() error {
	if s.indexed {
		return nil
	}

	if info, err := os.Stat(s.dir); err != nil || !info.IsDir() {
		return fmt.Errorf("artifacts directory %s not found (compile the contracts first)", s.dir)
	}

	err := filepath.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip non-JSON and Hardhat debug files
		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}

		if contract := s.readHeader(path); contract != nil {
			s.contracts = append(s.contracts, contract)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts: %w", err)
	}

	s.indexed = true
	return nil
}

// readHeader returns nil for files that are not contract artifacts
func (s *Store) readHeader(path string) *models.Contract {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var header artifactHeader
	if err := json.Unmarshal(data, &header); err != nil || len(header.ABI) == 0 {
		// Skip invalid artifacts
		return nil
	}

	contract := &models.Contract{
		Name:         header.ContractName,
		Path:         header.SourceName,
		ArtifactPath: path,
	}

	// Foundry: name and source come from the compilation target
	for source, name := range header.Metadata.Settings.CompilationTarget {
		if contract.Path == "" {
			contract.Path = source
		}
		if contract.Name == "" {
			contract.Name = name
		}
	}

	// Fall back to the file layout <Source>.sol/<Name>.json
	if contract.Name == "" {
		contract.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	if contract.Path == "" {
		contract.Path = filepath.Base(filepath.Dir(path))
	}

	return contract
}

// Find resolves a "Name" or "path:Name" reference to exactly one contract
// and loads its artifact.
func (s *Store) Find(ref string) (*models.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.index(); err != nil {
		return nil, err
	}

	name, pathFilter := ref, ""
	if idx := strings.LastIndex(ref, ":"); idx != -1 {
		pathFilter, name = ref[:idx], ref[idx+1:]
	}

	matches := lo.Filter(s.contracts, func(c *models.Contract, _ int) bool {
		return c.Name == name && (pathFilter == "" || strings.Contains(c.Path, pathFilter))
	})

	switch len(matches) {
	case 0:
		return nil, domain.NoArtifactMatchErr{
			Name:        ref,
			Dir:         s.dir,
			Suggestions: s.suggest(name),
		}
	case 1:
	default:
		return nil, domain.AmbiguousArtifactErr{
			Name:    ref,
			Matches: lo.Map(matches, func(c *models.Contract, _ int) string { return c.FullName() }),
		}
	}

	contract := *matches[0]
	artifact, err := load(contract.ArtifactPath)
	if err != nil {
		return nil, err
	}
	contract.Artifact = artifact

	return &contract, nil
}

func (s *Store) suggest(name string) []string {
	names := lo.Uniq(lo.Map(s.contracts, func(c *models.Contract, _ int) string { return c.Name }))

	var suggestions []string
	for _, match := range fuzzy.Find(name, names) {
		suggestions = append(suggestions, match.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	// fuzzy only matches subsequences; a typo needs a case-insensitive prefix match
	if len(suggestions) == 0 {
		for _, candidate := range names {
			if len(name) >= 3 && strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(name[:3])) {
				suggestions = append(suggestions, candidate)
			}
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}

	return suggestions
}

func load(path string) (*models.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	return &artifact, nil
}
