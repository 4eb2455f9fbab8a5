package domain

// GridDay is one day of the Sessionize GridSmart view.
type GridDay struct {
	Date      string      `json:"date"`
	TimeSlots []*TimeSlot `json:"timeSlots"`
}

// TimeSlot groups the rooms presenting at one start time.
type TimeSlot struct {
	SlotStart string      `json:"slotStart"`
	Rooms     []*RoomSlot `json:"rooms"`
}

// RoomSlot is a room's occupancy within a time slot. Session is nil when
// nothing is scheduled in the room for that slot.
type RoomSlot struct {
	Name    string       `json:"name"`
	Session *RoomSession `json:"session"`
}

// RoomSession is the session stub inside a schedule room.
type RoomSession struct {
	Title    string        `json:"title"`
	Speakers []*SpeakerRef `json:"speakers"`
}
