package labtimetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeScenarioE checks a single mid-day assignment leaves exactly
// one merged free interval for the rest of the day.
func TestAnalyzeScenarioE(t *testing.T) {
	assignments := []Assignment{
		{Day: Monday, StartTime: "09:00", EndTime: "12:00", Room: Room1215},
	}

	report := Analyze(assignments)

	var mondayRoom1215 *RoomDayVacancy
	for i := range report.Vacancies {
		v := report.Vacancies[i]
		if v.Room == Room1215 && v.Day == Monday {
			mondayRoom1215 = &report.Vacancies[i]
		}
	}
	require.NotNil(t, mondayRoom1215)
	require.Len(t, mondayRoom1215.FreeSlots, 1)
	assert.Equal(t, FreeInterval{StartTime: "12:00", EndTime: "18:00"}, mondayRoom1215.FreeSlots[0])
}

// TestAnalyzeScenarioF checks Analyze on an empty assignment list leaves
// every cell fully free with zero utilization.
func TestAnalyzeScenarioF(t *testing.T) {
	report := Analyze(nil)

	assert.Equal(t, 0.0, report.Summary.OverallUtilizationRate)
	for _, room := range DefaultGrid.AllRooms() {
		assert.Equal(t, 0.0, report.Summary.UtilizationRateByRoom[room])
	}

	found := false
	for _, v := range report.Vacancies {
		if v.Room == Room1215 && v.Day == Monday {
			found = true
			require.Len(t, v.FreeSlots, 1)
			assert.Equal(t, FreeInterval{StartTime: "09:00", EndTime: "18:00"}, v.FreeSlots[0])
		}
	}
	assert.True(t, found)
}

func TestMergeContiguousIsIdempotent(t *testing.T) {
	slots := []FreeInterval{
		{StartTime: "09:00", EndTime: "12:00"},
		{StartTime: "12:00", EndTime: "15:00"},
		{StartTime: "15:00", EndTime: "18:00"},
	}
	once := mergeContiguous(slots)
	twice := mergeContiguous(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, []FreeInterval{{StartTime: "09:00", EndTime: "18:00"}}, once)
}

func TestUtilizationRatiosWithinBounds(t *testing.T) {
	assignments := []Assignment{
		{Day: Monday, StartTime: "09:00", EndTime: "12:00", Room: Room1215},
		{Day: Monday, StartTime: "12:00", EndTime: "15:00", Room: Room1215},
		{Day: Tuesday, StartTime: "09:00", EndTime: "12:00", Room: RoomRental},
	}
	report := Analyze(assignments)

	for _, ratio := range report.Summary.UtilizationRateByRoom {
		assert.GreaterOrEqual(t, ratio, 0.0)
		assert.LessOrEqual(t, ratio, 1.0)
	}
	assert.GreaterOrEqual(t, report.Summary.OverallUtilizationRate, 0.0)
	assert.LessOrEqual(t, report.Summary.OverallUtilizationRate, 1.0)
}

func TestFreeSlotsNeverOverlapAssignments(t *testing.T) {
	assignments := []Assignment{
		{Day: Wednesday, StartTime: "10:00", EndTime: "13:00", Room: Room1216},
	}
	report := Analyze(assignments)

	for _, v := range report.Vacancies {
		if v.Room != Room1216 || v.Day != Wednesday {
			continue
		}
		for _, free := range v.FreeSlots {
			overlap := overlapMinutes(free.StartTime, free.EndTime, "10:00", "13:00")
			assert.Zero(t, overlap)
		}
	}
}
