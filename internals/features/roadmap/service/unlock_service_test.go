package service

import (
	"testing"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/roadmap/model"
)

func makeOrder(n int) []WeekKey {
	subject := uuid.New()
	order := make([]WeekKey, n)
	for i := range order {
		order[i] = WeekKey{SubjectID: subject, WeekID: uuid.New()}
	}
	return order
}

func weekIDs(keys []WeekKey) []uuid.UUID {
	ids := make([]uuid.UUID, len(keys))
	for i, k := range keys {
		ids[i] = k.WeekID
	}
	return ids
}

func TestUnlockedWeeksNoCompletions(t *testing.T) {
	order := makeOrder(5)
	got := UnlockedWeeks(order, map[uuid.UUID]bool{})
	if len(got) != 1 || got[0] != order[0] {
		t.Fatalf("expected only the first week, got %d weeks", len(got))
	}
}

func TestUnlockedWeeksLookahead(t *testing.T) {
	order := makeOrder(5)
	completed := map[uuid.UUID]bool{
		order[0].WeekID: true,
		order[1].WeekID: true,
	}
	got := UnlockedWeeks(order, completed)
	if len(got) != 3 {
		t.Fatalf("expected weeks 0..2 unlocked, got %d", len(got))
	}
}

func TestUnlockedWeeksAllComplete(t *testing.T) {
	order := makeOrder(4)
	completed := map[uuid.UUID]bool{}
	for _, k := range order {
		completed[k.WeekID] = true
	}
	got := UnlockedWeeks(order, completed)
	if len(got) != len(order) {
		t.Fatalf("expected the whole roadmap, got %d of %d", len(got), len(order))
	}
}

func TestUnlockedWeeksOutOfOrderCompletion(t *testing.T) {
	// only week 3 is marked complete; the frontier still moves there and
	// everything before it stays open
	order := makeOrder(6)
	completed := map[uuid.UUID]bool{order[3].WeekID: true}
	got := UnlockedWeeks(order, completed)
	if len(got) != 5 {
		t.Fatalf("expected weeks 0..4 unlocked, got %d", len(got))
	}
	for i, k := range got {
		if k != order[i] {
			t.Fatalf("unlocked[%d] is not a prefix of the order", i)
		}
	}
}

func TestUnlockedWeeksMonotonicity(t *testing.T) {
	// unlocking never shrinks as more weeks complete, regardless of the
	// order they complete in
	order := makeOrder(6)
	completed := map[uuid.UUID]bool{}
	prev := len(UnlockedWeeks(order, completed))

	markOrder := []int{2, 0, 4, 1, 3, 5}
	for _, idx := range markOrder {
		completed[order[idx].WeekID] = true
		got := len(UnlockedWeeks(order, completed))
		if got < prev {
			t.Fatalf("unlocked count shrank from %d to %d after completing index %d", prev, got, idx)
		}
		prev = got
	}
	if prev != len(order) {
		t.Fatalf("all complete should unlock everything, got %d", prev)
	}
}

func TestUnlockedWeeksEmptyOrder(t *testing.T) {
	if got := UnlockedWeeks(nil, map[uuid.UUID]bool{}); got != nil {
		t.Fatalf("empty order should unlock nothing, got %d", len(got))
	}
}

func TestBuildOrderSortsSubjectsThenWeeks(t *testing.T) {
	subA := model.RoadmapSubjectModel{RoadmapSubjectID: uuid.New(), RoadmapSubjectTitle: "HTML & CSS", RoadmapSubjectPosition: 1}
	subB := model.RoadmapSubjectModel{RoadmapSubjectID: uuid.New(), RoadmapSubjectTitle: "JavaScript", RoadmapSubjectPosition: 2}

	weekA2 := model.RoadmapWeekModel{RoadmapWeekID: uuid.New(), RoadmapWeekSubjectID: subA.RoadmapSubjectID, RoadmapWeekTitle: "Flexbox", RoadmapWeekPosition: 2}
	weekA1 := model.RoadmapWeekModel{RoadmapWeekID: uuid.New(), RoadmapWeekSubjectID: subA.RoadmapSubjectID, RoadmapWeekTitle: "Basics", RoadmapWeekPosition: 1}
	weekB1 := model.RoadmapWeekModel{RoadmapWeekID: uuid.New(), RoadmapWeekSubjectID: subB.RoadmapSubjectID, RoadmapWeekTitle: "Variables", RoadmapWeekPosition: 1}

	order := BuildOrder(
		[]model.RoadmapSubjectModel{subB, subA},
		[]model.RoadmapWeekModel{weekB1, weekA2, weekA1},
	)

	want := []uuid.UUID{weekA1.RoadmapWeekID, weekA2.RoadmapWeekID, weekB1.RoadmapWeekID}
	got := weekIDs(order)
	if len(got) != len(want) {
		t.Fatalf("order length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order[%d] wrong: subjects by position then weeks by position", i)
		}
	}
}
