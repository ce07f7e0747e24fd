package cube

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ehrlich-b/korfcube/internal/cube/index"
)

// defaultPDBDir is where optimal-solver pattern databases are cached when
// the caller hasn't configured one. Matches the CLI's --data-dir default.
func defaultPDBDir() string {
	if dir := os.Getenv("KORFCUBE_DATA_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(".", "pdbdata")
}

// SolverResult represents the result of a solve attempt
type SolverResult struct {
	Solution []Move
	Steps    int
	Duration time.Duration
}

// Solver interface for different solving algorithms
type Solver interface {
	Solve(cube *Cube) (*SolverResult, error)
	Name() string
}

// BeginnerSolver implements a basic layer-by-layer method
type BeginnerSolver struct{}

func (s *BeginnerSolver) Name() string {
	return "Beginner"
}

func (s *BeginnerSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// This is a placeholder implementation
	// A real beginner solver would implement:
	// 1. White cross
	// 2. White corners (first layer)
	// 3. Middle layer edges
	// 4. Yellow cross
	// 5. Yellow face
	// 6. Permute last layer
	
	solution := []Move{
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// CFOPSolver implements the CFOP method
type CFOPSolver struct{}

func (s *CFOPSolver) Name() string {
	return "CFOP"
}

func (s *CFOPSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// Placeholder CFOP implementation
	// Real CFOP would implement:
	// 1. Cross
	// 2. F2L (First Two Layers)
	// 3. OLL (Orient Last Layer)
	// 4. PLL (Permute Last Layer)
	
	solution := []Move{
		{Face: Front, Clockwise: true},
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
		{Face: Front, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// indexMoveToCube converts one optimal-solver Move to the sticker cube's
// Move type via its standard notation token, reusing ParseScramble's
// tokenizer instead of duplicating a face/turn table here.
func indexMoveToCube(m index.Move) (Move, error) {
	moves, err := ParseScramble(m.String())
	if err != nil {
		return Move{}, err
	}
	if len(moves) != 1 {
		return Move{}, fmt.Errorf("index move %q did not parse to exactly one cube move", m.String())
	}
	return moves[0], nil
}

func indexMovesToCube(ms []index.Move) ([]Move, error) {
	out := make([]Move, 0, len(ms))
	for _, m := range ms {
		cm, err := indexMoveToCube(m)
		if err != nil {
			return nil, err
		}
		out = append(out, cm)
	}
	return out, nil
}

// KociembaSolver is replaced from its original placeholder with a thin
// adapter onto index.ThistlethwaiteSolver, the engine's four-stage
// group-reduction method and the closest real algorithm in this core to
// the two/four-phase group reduction "Kociemba" names. The PDBs it needs
// (at most ~26M cells total) are small enough to build lazily on first use.
type KociembaSolver struct {
	once    sync.Once
	impl    *index.ThistlethwaiteSolver
	err     error
	DataDir string
}

func (s *KociembaSolver) Name() string {
	return "Kociemba"
}

// SetDataDir overrides the pattern database directory. Must be called
// before the first Solve.
func (s *KociembaSolver) SetDataDir(dir string) { s.DataDir = dir }

func (s *KociembaSolver) ensureReady() {
	s.once.Do(func() {
		dir := s.DataDir
		if dir == "" {
			dir = defaultPDBDir()
		}
		s.impl = index.NewThistlethwaiteSolver()
		s.err = s.impl.Initialize(dir)
	})
}

func (s *KociembaSolver) Solve(cube *Cube) (*SolverResult, error) {
	if cube.Size != 3 {
		return nil, fmt.Errorf("kociemba (thistlethwaite) algorithm only supports 3x3x3 cubes")
	}

	start := time.Now()

	s.ensureReady()
	if s.err != nil {
		return nil, fmt.Errorf("initializing thistlethwaite solver: %w", s.err)
	}

	st, err := stateFromStickerCube(cube)
	if err != nil {
		return nil, fmt.Errorf("converting cube to index state: %w", err)
	}

	indexMoves := s.impl.Solve(st)
	solution, err := indexMovesToCube(indexMoves)
	if err != nil {
		return nil, err
	}

	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// KorfSolver is the optimal (shortest-possible) solver, exposed under the
// "korf" algorithm name alongside "kociemba"/"thistlethwaite". Its four
// independent pattern databases are considerably larger than
// Thistlethwaite's stage databases, so they build on index.NewThreadPool
// rather than the calling goroutine.
type KorfSolver struct {
	once    sync.Once
	impl    *index.KorfSolver
	err     error
	DataDir string
	Workers int
}

func (s *KorfSolver) Name() string {
	return "Korf"
}

// SetDataDir overrides the pattern database directory. Must be called
// before the first Solve.
func (s *KorfSolver) SetDataDir(dir string) { s.DataDir = dir }

// SetWorkers overrides the PDB-build worker pool size. Must be called
// before the first Solve.
func (s *KorfSolver) SetWorkers(n int) { s.Workers = n }

func (s *KorfSolver) ensureReady() {
	s.once.Do(func() {
		dir := s.DataDir
		if dir == "" {
			dir = defaultPDBDir()
		}
		workers := s.Workers
		if workers < 1 {
			workers = 4
		}
		s.impl = index.NewKorfSolver(workers)
		s.err = s.impl.Initialize(dir)
	})
}

func (s *KorfSolver) Solve(cube *Cube) (*SolverResult, error) {
	if cube.Size != 3 {
		return nil, fmt.Errorf("korf algorithm only supports 3x3x3 cubes")
	}

	start := time.Now()

	s.ensureReady()
	if s.err != nil {
		return nil, fmt.Errorf("initializing korf solver: %w", s.err)
	}

	st, err := stateFromStickerCube(cube)
	if err != nil {
		return nil, fmt.Errorf("converting cube to index state: %w", err)
	}

	indexMoves := s.impl.Solve(st)
	solution, err := indexMovesToCube(indexMoves)
	if err != nil {
		return nil, err
	}

	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// GetSolver returns a solver by name
func GetSolver(name string) (Solver, error) {
	switch name {
	case "beginner":
		return &BeginnerSolver{}, nil
	case "cfop":
		return &CFOPSolver{}, nil
	case "kociemba", "thistlethwaite":
		return &KociembaSolver{}, nil
	case "korf":
		return &KorfSolver{}, nil
	default:
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
}