package main

import (
	"fmt"
	"os"

	"volumebind/internal/bind"
	"volumebind/internal/scene"
	"volumebind/internal/volume"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: inspectscene <scene.gltf> [more scenes...]")
		os.Exit(1)
	}

	for _, arg := range os.Args[1:] {
		sc, err := scene.Load(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Load error %s: %v\n", arg, err)
			continue
		}
		fmt.Printf("\n=== %s (volumes=%d joints=%d verts=%d) ===\n",
			arg, len(sc.Volumes), len(sc.Joints), len(sc.Vertices))

		fmt.Println("--- JOINTS ---")
		for _, j := range sc.Joints {
			fmt.Printf("  %s\n", j)
		}

		fmt.Println("--- VOLUMES ---")
		for _, m := range sc.Volumes {
			joint, ok := volume.ParseJointName(m.Name)
			if !ok {
				fmt.Printf("  %s: BAD NAME (v=%d t=%d)\n", m.Name, len(m.Vertices), len(m.Triangles))
				continue
			}
			v := volume.New(m, joint)
			sz := v.Bounds.Size()
			fmt.Printf("  %s: joint=%q v=%d t=%d bbox=(%.2f,%.2f,%.2f) centroid=(%.2f,%.2f,%.2f)\n",
				v.Name, v.Joint, v.VertexCount, len(v.Triangles),
				sz.X(), sz.Y(), sz.Z(),
				v.Centroid.X(), v.Centroid.Y(), v.Centroid.Z())
		}

		// Dry-run the catalog so naming problems show up before binding.
		vols, skipped, err := bind.BuildCatalog(sc.Volumes, sc.Joints)
		if err != nil {
			fmt.Printf("--- CATALOG: %v ---\n", err)
			continue
		}
		fmt.Printf("--- CATALOG: %d volumes usable, %d skipped ---\n", len(vols), len(skipped))
		for _, name := range skipped {
			fmt.Printf("  skipped: %s\n", name)
		}
	}
}
