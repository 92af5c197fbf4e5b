// Command runplans-gen generates a training plan from a YAML athlete
// profile without a server or database. Generated plans are cached locally
// so rerunning over an unchanged profile and seed is instant.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/gen"
	"github.com/herrenbrad/runplans/internal/plan"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	profilePath := flag.String("profile", "", "path to athlete profile YAML (required)")
	outPath := flag.String("out", "", "output file for the plan JSON (default stdout)")
	seed := flag.Int64("seed", 0, "seed for workout variety selection")
	overlayPath := flag.String("catalog-overlay", "", "optional workout catalog overlay YAML")
	noCache := flag.Bool("no-cache", false, "skip the local plan cache")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("runplans-gen", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *profilePath == "" {
		fmt.Fprintln(os.Stderr, "usage: runplans-gen -profile <profile.yaml> [-out plan.json] [-seed N]")
		os.Exit(2)
	}

	if err := run(*profilePath, *outPath, *overlayPath, *seed, *noCache, log); err != nil {
		log.Error("plan generation failed", "error", err)
		os.Exit(1)
	}
}

func run(profilePath, outPath, overlayPath string, seed int64, noCache bool, log *slog.Logger) error {
	// Raw bytes feed the cache key so any profile edit invalidates the entry.
	raw, err := os.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("reading profile: %w", err)
	}

	profile, err := gen.LoadProfile(profilePath)
	if err != nil {
		return err
	}

	var cache *gen.Cache
	key := gen.Key(raw, seed)
	if !noCache {
		cache, err = gen.OpenCache(cacheDir())
		if err != nil {
			log.Warn("plan cache unavailable", "error", err)
		} else {
			defer cache.Close()
			if cached, err := cache.Get(key); err == nil && cached != nil {
				log.Info("plan loaded from cache", "key", key[:12])
				return writeOut(outPath, cached)
			}
		}
	}

	cat := catalog.Builtin()
	if overlayPath != "" {
		if err := cat.LoadOverlay(overlayPath); err != nil {
			return fmt.Errorf("loading catalog overlay: %w", err)
		}
	}

	doc, err := plan.NewGenerator(cat, log).Generate(profile, seed)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	out = append(out, '\n')

	if cache != nil {
		if err := cache.Put(key, out); err != nil {
			log.Warn("failed to cache plan", "error", err)
		}
	}

	log.Info("plan generated",
		"athlete", profile.Name,
		"race", profile.RaceDistance,
		"weeks", doc.Overview.TotalWeeks)
	return writeOut(outPath, out)
}

func writeOut(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func cacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".runplans-gen"
	}
	return filepath.Join(home, ".runplans-gen")
}
