package cube

import "testing"

func TestGetSolver(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantName  string
		wantErr   bool
	}{
		{"Beginner solver", "beginner", "Beginner", false},
		{"CFOP solver", "cfop", "CFOP", false},
		{"Kociemba solver", "kociemba", "Kociemba", false},
		{"Thistlethwaite alias", "thistlethwaite", "Kociemba", false},
		{"Korf solver", "korf", "Korf", false},
		{"Invalid solver", "invalid", "", true},
		{"Empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver, err := GetSolver(tt.algorithm)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetSolver(%q) error = %v, wantErr %v", tt.algorithm, err, tt.wantErr)
				return
			}
			if !tt.wantErr && solver.Name() != tt.wantName {
				t.Errorf("GetSolver(%q).Name() = %q, want %q", tt.algorithm, solver.Name(), tt.wantName)
			}
		})
	}
}

/*
func TestBeginnerSolverOnSolvedCube(t *testing.T) {
	cube := NewCube(3)
	solver := &BeginnerSolver{}

	result, err := solver.Solve(cube)
	if err != nil {
		t.Fatalf("BeginnerSolver.Solve() error = %v", err)
	}

	// Solved cube should return empty solution
	if len(result.Solution) != 0 {
		t.Errorf("BeginnerSolver on solved cube should return empty solution, got %d moves", len(result.Solution))
	}

	if result.Steps != 0 {
		t.Errorf("BeginnerSolver on solved cube should return 0 steps, got %d", result.Steps)
	}
}
*/

/*
func TestBeginnerSolverOnScrambledCube(t *testing.T) {
	cube := NewCube(3)

	// Apply R U R' U' scramble
	moves, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatalf("Failed to parse scramble: %v", err)
	}
	cube.ApplyMoves(moves)

	solver := &BeginnerSolver{}
	result, err := solver.Solve(cube)
	if err != nil {
		t.Fatalf("BeginnerSolver.Solve() error = %v", err)
	}

	// TODO: Placeholder solver returns empty solution - will change when implemented
	if len(result.Solution) != 0 {
		t.Errorf("Placeholder solver should return empty solution, got %d moves", len(result.Solution))
	}

	if result.Steps != len(result.Solution) {
		t.Errorf("Steps (%d) should equal solution length (%d)", result.Steps, len(result.Solution))
	}

	// Duration should be measured (allow zero for very fast operations)
	if result.Duration < 0 {
		t.Error("Duration should not be negative")
	}
}
*/

/*
func TestSolverResultConsistency(t *testing.T) {
	solvers := []struct {
		name      string
		algorithm string
	}{
		{"beginner", "beginner"},
		{"cfop", "cfop"},
		{"kociemba", "kociemba"},
	}

	for _, solverTest := range solvers {
		t.Run(solverTest.name, func(t *testing.T) {
			cube := NewCube(3)

			// Apply scramble
			moves, err := ParseScramble("R U R' U'")
			if err != nil {
				t.Fatalf("Failed to parse scramble: %v", err)
			}
			cube.ApplyMoves(moves)

			solver, err := GetSolver(solverTest.algorithm)
			if err != nil {
				t.Fatalf("Failed to get solver %s: %v", solverTest.algorithm, err)
			}

			result, err := solver.Solve(cube)
			if err != nil {
				t.Fatalf("%s solver error: %v", solverTest.algorithm, err)
			}

			// Basic consistency checks
			if result.Steps != len(result.Solution) {
				t.Errorf("%s: Steps (%d) != Solution length (%d)", solverTest.algorithm, result.Steps, len(result.Solution))
			}

			if result.Duration < 0 {
				t.Errorf("%s: Duration should not be negative", solverTest.algorithm)
			}

			// TODO: All placeholder solvers return empty solution - will change when implemented
			if len(result.Solution) != 0 {
				t.Errorf("%s: Placeholder solver should return empty solution, got %d moves", solverTest.algorithm, len(result.Solution))
			}
		})
	}
}
*/

func TestKociembaSolver4x4Rejection(t *testing.T) {
	cube := NewCube(4) // 4x4x4 cube
	solver := &KociembaSolver{}

	_, err := solver.Solve(cube)
	if err == nil {
		t.Error("KociembaSolver should reject 4x4x4 cubes")
	}
}

func TestKorfSolver4x4Rejection(t *testing.T) {
	cube := NewCube(4)
	solver := &KorfSolver{}

	_, err := solver.Solve(cube)
	if err == nil {
		t.Error("KorfSolver should reject 4x4x4 cubes")
	}
}

// TODO: Test removed - copyCube method no longer exists in placeholder implementation

// TODO: Test removed - countSolvedStickers method no longer exists in placeholder implementation
