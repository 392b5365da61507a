package itinerary

import "testing"

func TestRoomsNeededScenarios(t *testing.T) {
	cases := []struct {
		pax, capacity, want int
	}{
		{4, 2, 2},
		{5, 4, 2},
		{1, 2, 1},
		{3, 3, 1},
		{7, 3, 3},
		{5, 0, 3},
		{5, -1, 3},
		{0, 2, 1},
	}
	for _, tc := range cases {
		if got := RoomsNeeded(tc.pax, tc.capacity); got != tc.want {
			t.Fatalf("RoomsNeeded(%d, %d) = %d, want %d", tc.pax, tc.capacity, got, tc.want)
		}
	}
}

func TestRoomsNeededMatchesCeilAndIsMonotonic(t *testing.T) {
	for capacity := 1; capacity <= 6; capacity++ {
		prev := 0
		for pax := 1; pax <= 40; pax++ {
			got := RoomsNeeded(pax, capacity)
			want := pax / capacity
			if pax%capacity != 0 {
				want++
			}
			if got != want {
				t.Fatalf("RoomsNeeded(%d, %d) = %d, want ceil %d", pax, capacity, got, want)
			}
			if got < prev {
				t.Fatalf("RoomsNeeded decreased at pax=%d capacity=%d: %d < %d", pax, capacity, got, prev)
			}
			if got < 1 {
				t.Fatalf("RoomsNeeded(%d, %d) < 1", pax, capacity)
			}
			prev = got
		}
	}
}
