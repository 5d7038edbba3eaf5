// Package batch runs the binding pipeline over many scene files with a
// worker pool. Each scene's pipeline run stays single-threaded; only
// whole files run in parallel, and no state is shared between them.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"volumebind/internal/bind"
	"volumebind/internal/config"
	"volumebind/internal/preview"
	"volumebind/internal/scene"
)

// Result holds the outcome of binding one scene file.
type Result struct {
	Path     string
	Success  bool
	Error    string
	Assigned int      // vertices that received weights
	Blended  int      // vertices inside more than one volume
	Skipped  []string // volume nodes with no matching joint
	Output   string   // written scene path
	Preview  string   // written preview path, if any
}

// Run processes all scene files using a worker pool.
func Run(cfg config.Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	pathChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range pathChan {
				results[idx] = processScene(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		pathChan <- i
	}
	close(pathChan)

	wg.Wait()
	close(done)

	return results
}

func processScene(cfg config.Config, path string) Result {
	res := Result{Path: path}

	sc, err := scene.Load(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	vols, skipped, err := bind.BuildCatalog(sc.Volumes, sc.Joints)
	res.Skipped = skipped
	if err != nil {
		res.Error = err.Error()
		return res
	}

	snap := bind.Snapshot{
		Volumes:    vols,
		Joints:     sc.Joints,
		Vertices:   sc.Vertices,
		Influences: sc.Joints,
	}
	out, err := bind.Run(snap, bind.Options{Smoothing: cfg.Smoothing})
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Assigned = len(out.Weights)
	res.Blended = len(out.Blended)

	if err := scene.WriteWeights(sc, out); err != nil {
		res.Error = err.Error()
		return res
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res.Output = filepath.Join(cfg.OutputDir, stem+".bound.gltf")
	if err := scene.Save(sc, res.Output); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.Preview {
		img := preview.Render(vols, sc.Vertices, out, preview.Options{
			Size:        cfg.PreviewSize,
			Supersample: cfg.Supersample,
		})
		res.Preview = filepath.Join(cfg.OutputDir, stem+".webp")
		if err := preview.WriteWebP(res.Preview, img); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	res.Success = true
	return res
}
