package service

import (
	"sort"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/roadmap/model"
)

// WeekKey identifies one week inside the global roadmap order.
type WeekKey struct {
	SubjectID uuid.UUID
	WeekID    uuid.UUID
}

// BuildOrder flattens subjects and weeks into the cohort's global order:
// subjects by position, then each subject's weeks by position. Ties break on
// title so the order stays deterministic.
func BuildOrder(subjects []model.RoadmapSubjectModel, weeks []model.RoadmapWeekModel) []WeekKey {
	sort.SliceStable(subjects, func(i, j int) bool {
		if subjects[i].RoadmapSubjectPosition != subjects[j].RoadmapSubjectPosition {
			return subjects[i].RoadmapSubjectPosition < subjects[j].RoadmapSubjectPosition
		}
		return subjects[i].RoadmapSubjectTitle < subjects[j].RoadmapSubjectTitle
	})

	bySubject := make(map[uuid.UUID][]model.RoadmapWeekModel, len(subjects))
	for _, w := range weeks {
		bySubject[w.RoadmapWeekSubjectID] = append(bySubject[w.RoadmapWeekSubjectID], w)
	}

	var order []WeekKey
	for _, s := range subjects {
		ws := bySubject[s.RoadmapSubjectID]
		sort.SliceStable(ws, func(i, j int) bool {
			if ws[i].RoadmapWeekPosition != ws[j].RoadmapWeekPosition {
				return ws[i].RoadmapWeekPosition < ws[j].RoadmapWeekPosition
			}
			return ws[i].RoadmapWeekTitle < ws[j].RoadmapWeekTitle
		})
		for _, w := range ws {
			order = append(order, WeekKey{SubjectID: s.RoadmapSubjectID, WeekID: w.RoadmapWeekID})
		}
	}
	return order
}

// UnlockedWeeks returns the prefix of the global order a cohort can see.
//
// The frontier is the LAST completed week in the order, even when earlier
// weeks were skipped: teachers mark completion out of order and students must
// never lose access to anything before the furthest point taught. Everything
// up to that index is unlocked plus one week of lookahead. With no
// completions only the first week is open; with everything complete the whole
// roadmap is.
func UnlockedWeeks(order []WeekKey, completed map[uuid.UUID]bool) []WeekKey {
	if len(order) == 0 {
		return nil
	}

	last := -1
	for i, k := range order {
		if completed[k.WeekID] {
			last = i
		}
	}

	end := last + 1 // lookahead
	if end >= len(order) {
		end = len(order) - 1
	}
	return order[:end+1]
}
