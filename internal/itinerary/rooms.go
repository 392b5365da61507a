package itinerary

// DefaultRoomCapacity substitutes for a missing or non-positive room capacity.
const DefaultRoomCapacity = 2

// RoomsNeeded returns max(1, ceil(pax/capacity)).
func RoomsNeeded(pax, capacity int) int {
	if capacity <= 0 {
		capacity = DefaultRoomCapacity
	}
	if pax <= 0 {
		return 1
	}
	rooms := (pax + capacity - 1) / capacity
	if rooms < 1 {
		return 1
	}
	return rooms
}
