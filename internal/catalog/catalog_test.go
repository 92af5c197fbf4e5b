package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/herrenbrad/runplans/internal/models"
)

// TestBuiltinCoversCoreCategories verifies every category the schedule
// assembler can prescribe has at least one built-in entry.
func TestBuiltinCoversCoreCategories(t *testing.T) {
	c := Builtin()
	core := []string{
		CategoryEasy, CategoryLong, CategoryTempo, CategoryIntervals,
		CategoryHills, CategoryRecovery, CategoryBike, CategoryPool,
		CategoryRowing, CategoryElliptic,
	}
	for _, cat := range core {
		if len(c.Workouts(cat)) == 0 {
			t.Errorf("category %q has no built-in workouts", cat)
		}
	}
}

// TestBuiltinEntriesWellFormed verifies every entry has a name and any rep
// range is ordered with a %d placeholder to receive the count.
func TestBuiltinEntriesWellFormed(t *testing.T) {
	c := Builtin()
	for _, cat := range c.Categories() {
		for _, w := range c.Workouts(cat) {
			if w.Name == "" {
				t.Errorf("category %q has a workout without a name", cat)
			}
			if w.Reps != nil {
				if w.Reps.Min <= 0 || w.Reps.Max < w.Reps.Min {
					t.Errorf("%s/%s: bad rep range %d-%d", cat, w.Name, w.Reps.Min, w.Reps.Max)
				}
			}
		}
	}
}

// TestBuiltinIsolation verifies each Builtin call returns an independent
// catalog: mutating one does not leak into another.
func TestBuiltinIsolation(t *testing.T) {
	a := Builtin()
	b := Builtin()
	a.categories[CategoryTempo] = append(a.categories[CategoryTempo], Workout{Name: "Injected"})

	for _, w := range b.Workouts(CategoryTempo) {
		if w.Name == "Injected" {
			t.Fatal("mutation of one catalog leaked into another")
		}
	}
}

// TestGeneric verifies the placeholder names the missing category so the
// degradation is visible in the plan output.
func TestGeneric(t *testing.T) {
	w := Generic("aqua_jogging")
	if w.Name == "" || w.Structure == "" {
		t.Fatal("generic workout must carry a name and structure")
	}
	if w.Focus == "" {
		t.Fatal("generic workout must carry a focus")
	}
}

// TestLoadOverlay verifies overlay entries append after built-ins and new
// categories are created as needed.
func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	content := `categories:
  tempo:
    - name: Club Tempo Loop
      structure: 5 miles at tempo on the club loop
      focus: lactate threshold
  aqua:
    - name: Aqua Jog
      structure: 40 minutes deep-water running
      focus: zero-impact aerobic work
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	c := Builtin()
	before := len(c.Workouts(CategoryTempo))
	if err := c.LoadOverlay(path); err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}

	tempos := c.Workouts(CategoryTempo)
	if len(tempos) != before+1 {
		t.Fatalf("tempo entries = %d, want %d", len(tempos), before+1)
	}
	if tempos[len(tempos)-1].Name != "Club Tempo Loop" {
		t.Errorf("overlay entry not appended last: %q", tempos[len(tempos)-1].Name)
	}
	if len(c.Workouts("aqua")) != 1 {
		t.Error("overlay did not create the new category")
	}
}

// TestLoadOverlayErrors verifies missing and malformed files are reported.
func TestLoadOverlayErrors(t *testing.T) {
	c := Builtin()
	if err := c.LoadOverlay(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing overlay file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("categories: [not, a, map]"), 0o644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}
	if err := c.LoadOverlay(bad); err == nil {
		t.Error("expected error for a malformed overlay file")
	}
}

// TestForEquipment verifies the running-to-equipment category translation,
// including the hills remapping for equipment without resistance work.
func TestForEquipment(t *testing.T) {
	cases := []struct {
		equip   models.CrossTrainType
		running string
		want    string
	}{
		{models.CrossTrainBike, CategoryTempo, "tempo_bike"},
		{models.CrossTrainBike, CategoryIntervals, "intervals_bike"},
		{models.CrossTrainBike, CategoryHills, "hills_bike"},
		{models.CrossTrainElliptical, CategoryHills, "hills_elliptical"},
		{models.CrossTrainPool, CategoryHills, "intervals_pool"},
		{models.CrossTrainRowing, CategoryHills, "intervals_rowing"},
		{models.CrossTrainPool, CategoryTempo, "tempo_pool"},
		{models.CrossTrainRowing, CategoryEasy, "rowing"},
		{models.CrossTrainBike, CategoryLong, "bike"},
	}
	for _, tc := range cases {
		if got := ForEquipment(tc.equip, tc.running); got != tc.want {
			t.Errorf("ForEquipment(%s, %s) = %q, want %q", tc.equip, tc.running, got, tc.want)
		}
	}
}

// TestForEquipmentCategoriesExist verifies every translated category for
// every equipment type resolves to built-in content.
func TestForEquipmentCategoriesExist(t *testing.T) {
	c := Builtin()
	equip := []models.CrossTrainType{
		models.CrossTrainBike, models.CrossTrainPool,
		models.CrossTrainRowing, models.CrossTrainElliptical,
	}
	running := []string{CategoryEasy, CategoryTempo, CategoryIntervals, CategoryHills, CategoryRecovery}

	for _, e := range equip {
		for _, r := range running {
			cat := ForEquipment(e, r)
			if len(c.Workouts(cat)) == 0 {
				t.Errorf("ForEquipment(%s, %s) = %q, which has no built-in workouts", e, r, cat)
			}
		}
	}
}
