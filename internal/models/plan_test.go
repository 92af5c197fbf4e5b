package models

import (
	"reflect"
	"testing"
)

// TestDayRoleClassification verifies the running/cross-training split.
func TestDayRoleClassification(t *testing.T) {
	running := []DayRole{RoleLongSession, RoleHardSession, RoleEasySession, RoleRace}
	for _, r := range running {
		if !r.Running() {
			t.Errorf("%s should classify as running", r)
		}
		if r.CrossTraining() {
			t.Errorf("%s should not classify as cross-training", r)
		}
	}
	for _, r := range []DayRole{RoleCrossTrainHard, RoleCrossTrainEasy} {
		if !r.CrossTraining() {
			t.Errorf("%s should classify as cross-training", r)
		}
		if r.Running() {
			t.Errorf("%s should not classify as running", r)
		}
	}
	if RoleRest.Running() || RoleRest.CrossTraining() {
		t.Error("rest should be neither running nor cross-training")
	}
}

// TestCloneWeeksIsDeep verifies mutating a clone leaves the source intact.
func TestCloneWeeksIsDeep(t *testing.T) {
	src := []WeekPlan{
		{Week: 1, Phase: PhaseBase, Days: []DayPlan{
			{Day: Monday, Role: RoleEasySession, Distance: 4},
			{Day: Sunday, Role: RoleLongSession, Distance: 10},
		}},
	}

	clone := CloneWeeks(src)
	if !reflect.DeepEqual(clone, src) {
		t.Fatal("clone differs from source before mutation")
	}

	clone[0].Days[0].Role = RoleRest
	clone[0].Days[0].Distance = 0
	if src[0].Days[0].Role != RoleEasySession || src[0].Days[0].Distance != 4 {
		t.Error("mutating the clone changed the source")
	}
}

// TestPhaseFor verifies week-to-phase lookup across block boundaries.
func TestPhaseFor(t *testing.T) {
	p := &TrainingPlan{Phases: []Phase{
		{Name: PhaseBase, StartWeek: 1, EndWeek: 6},
		{Name: PhaseBuild, StartWeek: 7, EndWeek: 11},
		{Name: PhasePeak, StartWeek: 12, EndWeek: 14},
		{Name: PhaseTaper, StartWeek: 15, EndWeek: 16},
	}}

	cases := map[int]PhaseName{
		1: PhaseBase, 6: PhaseBase, 7: PhaseBuild, 11: PhaseBuild,
		12: PhasePeak, 14: PhasePeak, 15: PhaseTaper, 16: PhaseTaper,
	}
	for week, want := range cases {
		if got := p.PhaseFor(week); got != want {
			t.Errorf("PhaseFor(%d) = %s, want %s", week, got, want)
		}
	}
}

// TestNonRestDays verifies index collection skips rest days.
func TestNonRestDays(t *testing.T) {
	w := WeekPlan{Days: []DayPlan{
		{Day: Monday, Role: RoleRest},
		{Day: Tuesday, Role: RoleHardSession},
		{Day: Wednesday, Role: RoleRest},
		{Day: Thursday, Role: RoleCrossTrainEasy},
		{Day: Sunday, Role: RoleLongSession},
	}}
	got := w.NonRestDays()
	want := []int{1, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NonRestDays() = %v, want %v", got, want)
	}
}
