package labtimetable

import "math"

// FreeInterval is one merged, maximal vacant interval within a (room,
// day) cell, at minute-level "HH:MM" precision.
type FreeInterval struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RoomDayVacancy is one (room, day) cell's non-empty list of merged
// free intervals. Cells with no vacancy are omitted from the report
// entirely.
type RoomDayVacancy struct {
	Room      Room           `json:"room"`
	Day       Day            `json:"day"`
	FreeSlots []FreeInterval `json:"freeSlots"`
}

// VacancySummary is the aggregate utilization figures over the whole
// grid, rounded to two decimals.
type VacancySummary struct {
	UtilizationRateByRoom map[Room]float64 `json:"utilizationRateByRoom"`
	OverallUtilizationRate float64          `json:"overallUtilizationRate"`
}

// VacancyReport is Analyze's return value.
type VacancyReport struct {
	Vacancies []RoomDayVacancy `json:"vacancies"`
	Summary   VacancySummary   `json:"summary"`
}

// Analyze takes a finalized assignment list, enumerates unassigned
// (room, day, block) slots, merges contiguous blocks into maximal
// intervals, and computes per-room and overall utilization ratios. It
// uses the default grid; an empty input produces every (room, day)
// cell fully free and 0.0 utilization throughout.
func Analyze(assignments []Assignment) VacancyReport {
	return NewScheduler().Analyze(assignments)
}

// Analyze is the Scheduler-bound form of the package-level Analyze,
// using this Scheduler's grid.
func (s *Scheduler) Analyze(assignments []Assignment) VacancyReport {
	grid := s.grid

	byCell := make(map[roomDayKey][]Assignment)
	for _, a := range assignments {
		key := roomDayKey{Room: a.Room, Day: a.Day}
		byCell[key] = append(byCell[key], a)
	}

	var report VacancyReport
	report.Summary.UtilizationRateByRoom = make(map[Room]float64, len(grid.AllRooms()))

	// totalMinutesByRoom / usedMinutesByRoom accumulate the
	// utilization denominator: 180 minutes per valid slot, independent
	// of whether that slot is ever actually occupied by at most one
	// course (the "inflated" 1260-per-(room,day) denominator — see
	// DESIGN.md).
	totalMinutesByRoom := make(map[Room]int, len(grid.AllRooms()))
	usedMinutesByRoom := make(map[Room]int, len(grid.AllRooms()))

	var totalAll, usedAll int

	for _, room := range grid.AllRooms() {
		for _, day := range grid.Days {
			key := roomDayKey{Room: room, Day: day}
			dayAssignments := byCell[key]

			freeSlots := freeIntervalsFor(grid, dayAssignments)
			if len(freeSlots) > 0 {
				report.Vacancies = append(report.Vacancies, RoomDayVacancy{
					Room:      room,
					Day:       day,
					FreeSlots: freeSlots,
				})
			}

			totalMinutes, usedMinutes := utilizationMinutes(grid, dayAssignments)
			totalMinutesByRoom[room] += totalMinutes
			usedMinutesByRoom[room] += usedMinutes
			totalAll += totalMinutes
			usedAll += usedMinutes
		}
	}

	for _, room := range grid.AllRooms() {
		total := totalMinutesByRoom[room]
		if total > 0 {
			report.Summary.UtilizationRateByRoom[room] = round2(float64(usedMinutesByRoom[room]) / float64(total))
		} else {
			report.Summary.UtilizationRateByRoom[room] = 0.0
		}
	}

	if totalAll > 0 {
		report.Summary.OverallUtilizationRate = round2(float64(usedAll) / float64(totalAll))
	}

	return report
}

// freeIntervalsFor emits every valid 3-hour start not overlapping any
// assigned interval in this cell, then merges consecutive intervals
// that overlap or touch. Idempotent by construction: an already-merged
// list is pairwise disjoint and non-adjacent, so merging it again
// joins nothing.
func freeIntervalsFor(grid Grid, dayAssignments []Assignment) []FreeInterval {
	var free []FreeInterval
	for _, start := range grid.Slots {
		end := blockEnd(start)
		if isFreeOfAssignments(start, end, dayAssignments) {
			free = append(free, FreeInterval{StartTime: start, EndTime: end})
		}
	}
	return mergeContiguous(free)
}

func isFreeOfAssignments(start, end string, dayAssignments []Assignment) bool {
	for _, a := range dayAssignments {
		if blocksOverlap(start, a.StartTime) {
			return false
		}
	}
	return true
}

// mergeContiguous merges consecutive free intervals, already sorted by
// construction (grid.Slots is ascending), whenever the next one starts
// at or before the current one's end.
func mergeContiguous(slots []FreeInterval) []FreeInterval {
	if len(slots) == 0 {
		return nil
	}

	merged := make([]FreeInterval, 0, len(slots))
	current := slots[0]

	for _, next := range slots[1:] {
		if mustMinutes(next.StartTime) <= mustMinutes(current.EndTime) {
			if mustMinutes(next.EndTime) > mustMinutes(current.EndTime) {
				current.EndTime = next.EndTime
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)
	return merged
}

// utilizationMinutes accumulates, for every valid slot, its full 180
// minutes into the cell's total, and the summed minutes of overlap with
// every assigned interval (clamped to 180 per slot) into the cell's
// used minutes.
func utilizationMinutes(grid Grid, dayAssignments []Assignment) (total, used int) {
	for _, start := range grid.Slots {
		end := blockEnd(start)
		total += blockDurationMinutes

		slotUsed := 0
		for _, a := range dayAssignments {
			slotUsed += overlapMinutes(start, end, a.StartTime, a.EndTime)
		}
		if slotUsed > blockDurationMinutes {
			slotUsed = blockDurationMinutes
		}
		used += slotUsed
	}
	return total, used
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
