// Package catalog holds the workout descriptor catalog. The plan engine
// only reads names and metadata from it; descriptions are opaque content.
package catalog

import (
	"fmt"
	"os"

	"github.com/herrenbrad/runplans/internal/models"
	"gopkg.in/yaml.v3"
)

// Workout categories. Running categories feed the variety selector's phase
// rotation; equipment categories back cross-training sessions.
const (
	CategoryEasy      = "easy"
	CategoryLong      = "long"
	CategoryTempo     = "tempo"
	CategoryIntervals = "intervals"
	CategoryHills     = "hills"
	CategoryRecovery  = "recovery"
	CategoryBike      = "bike"
	CategoryPool      = "pool"
	CategoryRowing    = "rowing"
	CategoryElliptic  = "elliptical"
)

// RepRange bounds a repeat-count prescription ("4-8 x 800m"). The selector
// resolves it to a concrete count by plan progression.
type RepRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Workout is one named catalog entry. Structure may contain a single %d
// placeholder that receives the resolved repeat count.
type Workout struct {
	Name      string    `yaml:"name" json:"name"`
	Structure string    `yaml:"structure" json:"structure"`
	Focus     string    `yaml:"focus" json:"focus"`
	Reps      *RepRange `yaml:"reps,omitempty" json:"reps,omitempty"`
}

// Catalog maps categories to ordered workout lists.
type Catalog struct {
	categories map[string][]Workout
}

// Builtin returns the catalog preloaded with the built-in workout content.
func Builtin() *Catalog {
	c := &Catalog{categories: make(map[string][]Workout)}
	for cat, list := range builtin {
		c.categories[cat] = append([]Workout(nil), list...)
	}
	return c
}

// Workouts returns the entries for a category. The returned slice must not
// be mutated by callers.
func (c *Catalog) Workouts(category string) []Workout {
	return c.categories[category]
}

// Categories lists all known category names.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.categories))
	for cat := range c.categories {
		out = append(out, cat)
	}
	return out
}

// Generic is the placeholder descriptor used when a category/equipment
// lookup misses. Catalog misses degrade; they never abort a plan.
func Generic(category string) Workout {
	return Workout{
		Name:      "General Aerobic Session",
		Structure: "Steady comfortable effort for the prescribed distance",
		Focus:     "aerobic maintenance (" + category + ")",
	}
}

// overlayFile is the YAML shape for catalog overlay files:
//
//	categories:
//	  tempo:
//	    - name: ...
//	      structure: ...
type overlayFile struct {
	Categories map[string][]Workout `yaml:"categories"`
}

// LoadOverlay merges workout entries from a YAML file into the catalog.
// Overlay entries are appended after built-in entries per category.
func (c *Catalog) LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog overlay: %w", err)
	}
	var f overlayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing catalog overlay: %w", err)
	}
	for cat, list := range f.Categories {
		c.categories[cat] = append(c.categories[cat], list...)
	}
	return nil
}

// EquipmentCategory maps cross-training equipment to its catalog category.
func EquipmentCategory(e models.CrossTrainType) string {
	switch e {
	case models.CrossTrainBike:
		return CategoryBike
	case models.CrossTrainPool:
		return CategoryPool
	case models.CrossTrainRowing:
		return CategoryRowing
	case models.CrossTrainElliptical:
		return CategoryElliptic
	}
	return CategoryBike
}

// ForEquipment translates a running workout category into the category to
// use on the given equipment. Categories the equipment cannot express are
// remapped: hills need resistance, which pool and rowing sessions lack, so
// they become interval work there.
func ForEquipment(e models.CrossTrainType, runningCategory string) string {
	switch runningCategory {
	case CategoryTempo, CategoryIntervals:
		return runningCategory + "_" + string(e)
	case CategoryHills:
		if e == models.CrossTrainBike || e == models.CrossTrainElliptical {
			return CategoryHills + "_" + string(e)
		}
		return CategoryIntervals + "_" + string(e)
	default:
		return EquipmentCategory(e)
	}
}
