package cube

import (
	"fmt"
	"sync"

	"github.com/ehrlich-b/korfcube/internal/cube/index"
)

// bridge.go converts between the sticker-array Cube (used by the
// manual-solving CLI/web features and CFEN notation) and the compact
// cp/co/ep/eo index.State the optimal solver operates on. Grounded on
// piece_mapping.go's Get3x3CornerMappings/Get3x3EdgeMappings, which
// already give the exact facelet geometry; this file adds the
// identity/orientation bookkeeping index.State needs on top of that
// geometry.

func faceVec(f Face) index.Vec3 {
	switch f {
	case Up:
		return index.Vec3{X: 0, Y: 1, Z: 0}
	case Down:
		return index.Vec3{X: 0, Y: -1, Z: 0}
	case Left:
		return index.Vec3{X: -1, Y: 0, Z: 0}
	case Right:
		return index.Vec3{X: 1, Y: 0, Z: 0}
	case Front:
		return index.Vec3{X: 0, Y: 0, Z: 1}
	case Back:
		return index.Vec3{X: 0, Y: 0, Z: -1}
	}
	panic("cube: bad face")
}

func vecAdd(a, b index.Vec3) index.Vec3 { return index.Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z} }

func dirToFace(d index.Vec3) Face {
	switch {
	case d.X != 0:
		if d.X > 0 {
			return Right
		}
		return Left
	case d.Y != 0:
		if d.Y > 0 {
			return Up
		}
		return Down
	default:
		if d.Z > 0 {
			return Front
		}
		return Back
	}
}

// edgeFaceletOrder is the edge analogue of index.CornerFaceletOrder: a
// fixed, 2-element canonical facelet order used both to identify which
// cubie occupies a slot and to read off its orientation bit. Edges
// touching U/D use the U/D-facing facelet as the reference (index 0); the
// four E-slice edges (which touch neither U nor D) use the F/B-facing
// facelet.
func edgeFaceletOrder(p index.Vec3) [2]index.Vec3 {
	if p.Y != 0 {
		return [2]index.Vec3{{X: 0, Y: p.Y, Z: 0}, {X: p.X, Y: 0, Z: p.Z}}
	}
	return [2]index.Vec3{{X: 0, Y: 0, Z: p.Z}, {X: p.X, Y: 0, Z: 0}}
}

func cornerMapPosition(m CornerMap) index.Vec3 {
	return vecAdd(vecAdd(faceVec(m.Face1), faceVec(m.Face2)), faceVec(m.Face3))
}

func edgeMapPosition(m EdgeMap) index.Vec3 {
	return vecAdd(faceVec(m.Face1), faceVec(m.Face2))
}

func cornerMapColor(c *Cube, m CornerMap, f Face) Color {
	switch f {
	case m.Face1:
		return c.Faces[m.Face1][m.Row1][m.Col1]
	case m.Face2:
		return c.Faces[m.Face2][m.Row2][m.Col2]
	case m.Face3:
		return c.Faces[m.Face3][m.Row3][m.Col3]
	}
	panic("cube: face not part of corner mapping")
}

func cornerMapSetColor(c *Cube, m CornerMap, f Face, color Color) {
	switch f {
	case m.Face1:
		c.Faces[m.Face1][m.Row1][m.Col1] = color
	case m.Face2:
		c.Faces[m.Face2][m.Row2][m.Col2] = color
	case m.Face3:
		c.Faces[m.Face3][m.Row3][m.Col3] = color
	default:
		panic("cube: face not part of corner mapping")
	}
}

func edgeMapColor(c *Cube, m EdgeMap, f Face) Color {
	switch f {
	case m.Face1:
		return c.Faces[m.Face1][m.Row1][m.Col1]
	case m.Face2:
		return c.Faces[m.Face2][m.Row2][m.Col2]
	}
	panic("cube: face not part of edge mapping")
}

func edgeMapSetColor(c *Cube, m EdgeMap, f Face, color Color) {
	switch f {
	case m.Face1:
		c.Faces[m.Face1][m.Row1][m.Col1] = color
	case m.Face2:
		c.Faces[m.Face2][m.Row2][m.Col2] = color
	default:
		panic("cube: face not part of edge mapping")
	}
}

// bridgeTables holds the one-time-computed correspondence between the
// sticker cube's piece mappings and the index package's slot numbering,
// plus the reference (solved) color triples used to identify cubies and
// read off their orientation.
type bridgeTables struct {
	cornerMapForSlot [8]CornerMap
	edgeMapForSlot   [12]EdgeMap
	refCornerColors  [8][3]Color
	refEdgeColors    [12][2]Color
}

var (
	bridgeOnce         sync.Once
	cachedBridgeTables bridgeTables
)

func getBridgeTables() *bridgeTables {
	bridgeOnce.Do(func() {
		t := &cachedBridgeTables
		cornerPos := index.CornerPos()
		edgePos := index.EdgePos()

		for _, m := range Get3x3CornerMappings() {
			slot := index.FindCornerSlot(cornerMapPosition(m))
			t.cornerMapForSlot[slot] = m
		}
		for _, m := range Get3x3EdgeMappings() {
			slot := index.FindEdgeSlot(edgeMapPosition(m))
			t.edgeMapForSlot[slot] = m
		}

		solved := NewCube(3)
		for slot := 0; slot < 8; slot++ {
			order := index.CornerFaceletOrder(cornerPos[slot])
			m := t.cornerMapForSlot[slot]
			for j, dir := range order {
				t.refCornerColors[slot][j] = cornerMapColor(solved, m, dirToFace(dir))
			}
		}
		for slot := 0; slot < 12; slot++ {
			order := edgeFaceletOrder(edgePos[slot])
			m := t.edgeMapForSlot[slot]
			for j, dir := range order {
				t.refEdgeColors[slot][j] = edgeMapColor(solved, m, dirToFace(dir))
			}
		}
	})
	return &cachedBridgeTables
}

func sameColorSet3(a, b [3]Color) bool {
	used := [3]bool{}
	for _, ac := range a {
		found := false
		for j, bc := range b {
			if !used[j] && ac == bc {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameColorSet2(a, b [2]Color) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

// stateFromStickerCube reads a solved-or-scrambled 3x3x3 sticker cube into
// the compact index model. Returns an error if c is not a 3x3x3 or does
// not represent a legal cube (a color combination matching no reference
// cubie).
func stateFromStickerCube(c *Cube) (*index.State, error) {
	if c.Size != 3 {
		return nil, fmt.Errorf("cube: stateFromStickerCube requires a 3x3x3 cube, got size %d", c.Size)
	}
	t := getBridgeTables()
	cornerPos := index.CornerPos()
	edgePos := index.EdgePos()
	var s index.State

	for slot := 0; slot < 8; slot++ {
		order := index.CornerFaceletOrder(cornerPos[slot])
		m := t.cornerMapForSlot[slot]
		var cur [3]Color
		for j, dir := range order {
			cur[j] = cornerMapColor(c, m, dirToFace(dir))
		}

		id := -1
		for cand := 0; cand < 8; cand++ {
			if sameColorSet3(cur, t.refCornerColors[cand]) {
				id = cand
				break
			}
		}
		if id < 0 {
			return nil, fmt.Errorf("cube: no corner identity matches colors at slot %d", slot)
		}

		orient := -1
		for k, col := range cur {
			if col == t.refCornerColors[id][0] {
				orient = k
				break
			}
		}
		s.CP[slot] = uint8(id)
		s.CO[slot] = uint8(orient)
	}

	for slot := 0; slot < 12; slot++ {
		order := edgeFaceletOrder(edgePos[slot])
		m := t.edgeMapForSlot[slot]
		var cur [2]Color
		for j, dir := range order {
			cur[j] = edgeMapColor(c, m, dirToFace(dir))
		}

		id := -1
		for cand := 0; cand < 12; cand++ {
			if sameColorSet2(cur, t.refEdgeColors[cand]) {
				id = cand
				break
			}
		}
		if id < 0 {
			return nil, fmt.Errorf("cube: no edge identity matches colors at slot %d", slot)
		}

		orient := 0
		if cur[0] != t.refEdgeColors[id][0] {
			orient = 1
		}
		s.EP[slot] = uint8(id)
		s.EO[slot] = uint8(orient)
	}

	if err := s.ValidateInvariants(); err != nil {
		return nil, fmt.Errorf("cube: stateFromStickerCube: %w", err)
	}
	return &s, nil
}

// StateFromStickerCube is the exported form of stateFromStickerCube, for
// callers (the web handlers) that need the index.State directly rather
// than through a Solver.
func StateFromStickerCube(c *Cube) (*index.State, error) { return stateFromStickerCube(c) }

// StateToStickerCube is the exported form of stateToStickerCube.
func StateToStickerCube(s *index.State) *Cube { return stateToStickerCube(s) }

// stateToStickerCube renders s as a solved-coloring 3x3x3 sticker cube,
// inverting stateFromStickerCube.
func stateToStickerCube(s *index.State) *Cube {
	t := getBridgeTables()
	cornerPos := index.CornerPos()
	edgePos := index.EdgePos()
	c := NewCube(3)

	for slot := 0; slot < 8; slot++ {
		order := index.CornerFaceletOrder(cornerPos[slot])
		m := t.cornerMapForSlot[slot]
		id := s.CP[slot]
		o := int(s.CO[slot])
		for j, dir := range order {
			ref := t.refCornerColors[id][(j-o+3)%3]
			cornerMapSetColor(c, m, dirToFace(dir), ref)
		}
	}

	for slot := 0; slot < 12; slot++ {
		order := edgeFaceletOrder(edgePos[slot])
		m := t.edgeMapForSlot[slot]
		id := s.EP[slot]
		o := int(s.EO[slot])
		for j, dir := range order {
			ref := t.refEdgeColors[id][(j+o)%2]
			edgeMapSetColor(c, m, dirToFace(dir), ref)
		}
	}

	return c
}
