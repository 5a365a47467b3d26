package labtimetable

// Assignment is the externally-facing placement of one course onto the
// (day, start, room) grid. Field tags match the wire names the
// surrounding HTTP service expects.
type Assignment struct {
	CourseCode string `json:"courseCode"`
	CourseName string `json:"courseName"`
	Instructor string `json:"instructor"`
	Department string `json:"department"`
	IsLab      bool   `json:"isLab"`
	Enrollment int    `json:"enrollment"`
	Weeks      int    `json:"weeks"`
	Credits    int    `json:"credits"`

	Day       Day    `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      Room   `json:"room"`
}

// slot is the internal (day, start, room) triple a candidate maps a
// course id to. Keeping it separate from Assignment means the search
// never has to recompute or carry administrative course fields while
// mutating a chromosome.
type slot struct {
	Day   Day
	Start string
	Room  Room
}
