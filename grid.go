package labtimetable

// Day is one of the five weekday labels the grid schedules onto.
type Day string

const (
	Monday    Day = "Mon"
	Tuesday   Day = "Tue"
	Wednesday Day = "Wed"
	Thursday  Day = "Thu"
	Friday    Day = "Fri"
)

// Room is one of the five bookable laboratory rooms. RoomRental is the
// single costly room flagged for the objective's rental penalty.
type Room string

const (
	Room1215  Room = "1215"
	Room1216  Room = "1216"
	Room1217  Room = "1217"
	Room1418  Room = "1418"
	RoomRental Room = "RENTAL_1"
)

// Grid is the closed, fixed vocabulary the search operates over: five
// days, five rooms (one of them rental) and seven 3-hour block starts
// between 09:00 and 18:00. The vocabularies are modeled as a value so
// the rest of the package never needs runtime dispatch over "which
// grid" — there is exactly one, DefaultGrid, and every exported entry
// point uses it implicitly.
type Grid struct {
	Days       []Day
	OwnedRooms []Room
	RentalRoom Room
	Slots      []string
}

// AllRooms returns the owned rooms followed by the rental room, in the
// order the objective and vacancy analyzer iterate them.
func (g Grid) AllRooms() []Room {
	rooms := make([]Room, 0, len(g.OwnedRooms)+1)
	rooms = append(rooms, g.OwnedRooms...)
	rooms = append(rooms, g.RentalRoom)
	return rooms
}

// DefaultGrid is the fixed grid the package operates over: five
// weekday labels, rooms "1215", "1216", "1217", "1418", "RENTAL_1", and
// the seven valid 3-hour block starts between 09:00 and 18:00.
var DefaultGrid = Grid{
	Days:       []Day{Monday, Tuesday, Wednesday, Thursday, Friday},
	OwnedRooms: []Room{Room1215, Room1216, Room1217, Room1418},
	RentalRoom: RoomRental,
	Slots:      []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00"},
}

// roomOwnershipBias is the probability the random generator and
// mutation operator assign an owned room rather than the rental room.
const roomOwnershipBias = 0.8
