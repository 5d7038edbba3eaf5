package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"volumebind/internal/batch"
	"volumebind/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: bound)")
	smoothing := flag.Float64("smoothing", 0, "Gaussian falloff constant for overlap blending (default: 0.1)")
	doPreview := flag.Bool("preview", false, "Write a WebP preview per scene with blended vertices highlighted")
	previewSize := flag.Int("preview-size", 0, "Preview image edge in pixels (default: 512)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	scenes := flag.Args()
	if len(scenes) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: volumebind [flags] <scene.gltf> [more scenes...]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		Smoothing:   *smoothing,
		Preview:     *doPreview,
		PreviewSize: *previewSize,
		Workers:     *workers,
	})

	fmt.Printf("Volume skin binder\n")
	fmt.Printf("Scenes: %d, Workers: %d, Smoothing: %g\n", len(scenes), cfg.Workers, cfg.Smoothing)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(cfg, scenes)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errs []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s: %d vertices weighted, %d blended -> %s\n",
				r.Path, r.Assigned, r.Blended, r.Output)
			for _, name := range r.Skipped {
				fmt.Printf("    volume %s has no matching joint, skipped\n", name)
			}
		} else {
			failed++
			errs = append(errs, r)
		}
	}

	fmt.Printf("Bound: %d/%d\n", success, len(scenes))

	if len(errs) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errs {
			fmt.Printf("  %s: %s\n", e.Path, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
