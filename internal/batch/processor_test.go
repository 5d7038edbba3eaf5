package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volumebind/internal/config"
)

// writeTestScene saves a minimal bindable document to path: a Spine1
// joint, a three-vertex skinned mesh with two vertices inside the unit
// cube volume, and the cube volume node itself.
func writeTestScene(t *testing.T, path string) {
	t.Helper()
	doc := gltf.NewDocument()

	bodyPos := modeler.WritePosition(doc, [][3]float32{
		{0.5, 0.5, 0.5},
		{0.25, 0.75, 0.25},
		{5, 5, 5},
	})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "body",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{"POSITION": bodyPos},
		}},
	})

	cubePos := modeler.WritePosition(doc, [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	})
	cubeIdx := modeler.WriteIndices(doc, []uint32{
		0, 1, 3, 0, 3, 2,
		4, 5, 7, 4, 7, 6,
		0, 4, 5, 0, 5, 1,
		2, 3, 7, 2, 7, 6,
		0, 2, 6, 0, 6, 4,
		1, 5, 7, 1, 7, 3,
	})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "BindVolume_For_Joint_Spine1_0",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{"POSITION": cubePos},
			Indices:    gltf.Index(cubeIdx),
		}},
	})

	doc.Nodes = append(doc.Nodes,
		&gltf.Node{Name: "Spine1"},
		&gltf.Node{Name: "body", Mesh: gltf.Index(0), Skin: gltf.Index(0)},
		&gltf.Node{Name: "BindVolume_For_Joint_Spine1_0", Mesh: gltf.Index(1)},
	)
	doc.Scenes[0].Nodes = []uint32{0, 1, 2}
	doc.Skins = append(doc.Skins, &gltf.Skin{Joints: []uint32{0}})

	require.NoError(t, gltf.Save(doc, path))
}

func TestRunBindsScene(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.gltf")
	writeTestScene(t, scenePath)

	cfg := config.Config{}
	cfg.Resolve(config.Flags{OutputDir: filepath.Join(dir, "out"), Workers: 1})

	results := Run(cfg, []string{scenePath})
	require.Len(t, results, 1)

	r := results[0]
	require.True(t, r.Success, "error: %s", r.Error)
	assert.Equal(t, 2, r.Assigned)
	assert.Equal(t, 0, r.Blended)
	assert.Empty(t, r.Skipped)
	assert.Equal(t, filepath.Join(dir, "out", "scene.bound.gltf"), r.Output)

	if _, err := os.Stat(r.Output); err != nil {
		t.Errorf("output scene not written: %v", err)
	}

	// Weights landed in the written document.
	bound, err := gltf.Open(r.Output)
	require.NoError(t, err)
	prim := bound.Meshes[0].Primitives[0]
	assert.Contains(t, prim.Attributes, "WEIGHTS_0")
	assert.Contains(t, prim.Attributes, "JOINTS_0")
}

func TestRunWithPreview(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.gltf")
	writeTestScene(t, scenePath)

	cfg := config.Config{}
	cfg.Resolve(config.Flags{
		OutputDir:   filepath.Join(dir, "out"),
		Workers:     1,
		Preview:     true,
		PreviewSize: 64,
	})
	cfg.Supersample = 1

	results := Run(cfg, []string{scenePath})
	require.Len(t, results, 1)
	require.True(t, results[0].Success, "error: %s", results[0].Error)

	require.NotEmpty(t, results[0].Preview)
	if _, err := os.Stat(results[0].Preview); err != nil {
		t.Errorf("preview not written: %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	cfg := config.Config{}
	cfg.Resolve(config.Flags{OutputDir: t.TempDir(), Workers: 2})

	results := Run(cfg, []string{"/does/not/exist.gltf"})
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
}

func TestRunPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.gltf")
	writeTestScene(t, good)
	paths := []string{filepath.Join(dir, "missing.gltf"), good}

	cfg := config.Config{}
	cfg.Resolve(config.Flags{OutputDir: filepath.Join(dir, "out"), Workers: 4})

	results := Run(cfg, paths)
	require.Len(t, results, 2)
	assert.Equal(t, paths[0], results[0].Path)
	assert.False(t, results[0].Success)
	assert.Equal(t, paths[1], results[1].Path)
	assert.True(t, results[1].Success, "error: %s", results[1].Error)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Path: "a.gltf", Success: true, Assigned: 10, Blended: 2, Output: "out/a.bound.gltf"},
		{Path: "b.gltf", Error: "setup: no joints in scene; bind a mesh to joints before running"},
	}

	require.NoError(t, WriteManifest(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)

	assert.Equal(t, "a.gltf", entries[0].Scene)
	assert.Equal(t, 10, entries[0].Assigned)
	assert.Equal(t, 2, entries[0].Blended)
	assert.Empty(t, entries[0].Error)

	assert.Equal(t, "b.gltf", entries[1].Scene)
	assert.Contains(t, entries[1].Error, "no joints")
}
