package labtimetable

// repair runs a two-phase fixup: fill every unassigned course with the
// first conflict-free (slot, day, room) combination (slots tried in
// ascending usage order, then days, then rooms, all in grid
// declaration order), then run up to 10 passes dropping and
// re-placing the lower-index course of any conflicting pair until a
// pass finds none. Deterministic, no RNG involved.
func repair(c *candidate) {
	for _, course := range c.problem.courses {
		if _, ok := c.assignments[course.ID]; !ok {
			fillOne(c, course)
		}
	}

	const maxPasses = 10
	for pass := 0; pass < maxPasses; pass++ {
		if !resolveOneConflict(c) {
			return
		}
	}
}

// fillOne tries to place a single course without introducing a new
// room or instructor conflict.
func fillOne(c *candidate, course Course) bool {
	slots := slotsByAscendingUsage(c)

	for _, start := range slots {
		for _, day := range c.problem.grid.Days {
			for _, room := range c.problem.grid.AllRooms() {
				if hasConflict(c, course, day, start, room) {
					continue
				}
				c.assignments[course.ID] = slot{Day: day, Start: start, Room: room}
				return true
			}
		}
	}
	return false
}

// slotsByAscendingUsage returns the grid's slots sorted by current
// usage count in c, ascending.
func slotsByAscendingUsage(c *candidate) []string {
	usage := make(map[string]int, len(c.problem.grid.Slots))
	for _, s := range c.problem.grid.Slots {
		usage[s] = 0
	}
	for _, s := range c.assignments {
		if _, known := usage[s.Start]; known {
			usage[s.Start]++
		}
	}

	slots := append([]string(nil), c.problem.grid.Slots...)
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && usage[slots[j-1]] > usage[slots[j]]; j-- {
			slots[j-1], slots[j] = slots[j], slots[j-1]
		}
	}
	return slots
}

// hasConflict reports whether placing course at (day, start, room)
// would conflict (same room or same instructor, overlapping interval)
// with any other course currently assigned in c.
func hasConflict(c *candidate, course Course, day Day, start string, room Room) bool {
	for _, other := range c.problem.courses {
		if other.ID == course.ID {
			continue
		}
		s, ok := c.assignments[other.ID]
		if !ok || s.Day != day || !blocksOverlap(start, s.Start) {
			continue
		}
		if s.Room == room {
			return true
		}
		if other.Instructor == course.Instructor {
			return true
		}
	}
	return false
}

// resolveOneConflict scans all assigned pairs in course order; on the
// first room or instructor conflict it finds, it drops the lower-index
// course and re-fills it, then returns true so the caller re-scans
// from scratch next pass. Returns false once a full scan finds no
// conflict.
func resolveOneConflict(c *candidate) bool {
	for i, c1 := range c.problem.courses {
		s1, ok := c.assignments[c1.ID]
		if !ok {
			continue
		}
		for j := i + 1; j < len(c.problem.courses); j++ {
			c2 := c.problem.courses[j]
			s2, ok := c.assignments[c2.ID]
			if !ok || s1.Day != s2.Day || !blocksOverlap(s1.Start, s2.Start) {
				continue
			}
			if s1.Room == s2.Room || c1.Instructor == c2.Instructor {
				delete(c.assignments, c1.ID)
				fillOne(c, c1)
				return true
			}
		}
	}
	return false
}
