// site/units.go - Unit identifier scheme for the residential project.
// The site is fixed at 18 blocks (A-R) of 5 floors with 4 units per
// floor. Apartment numbers are formatted {floor}0{unit}, e.g. "203" is
// block floor 2, unit 3.
package site

import "fmt"

const (
	blockCount    = 18
	floorCount    = 5
	unitsPerFloor = 4
)

// Blocks returns the 18 valid block letters, 'A' through 'R', in order.
func Blocks() []string {
	blocks := make([]string, 0, blockCount)
	for i := 0; i < blockCount; i++ {
		blocks = append(blocks, string(rune('A'+i)))
	}
	return blocks
}

// ApartmentNumbers returns the 20 valid apartment numbers in
// floor-major order: "101", "102", ... "503", "504".
func ApartmentNumbers() []string {
	numbers := make([]string, 0, floorCount*unitsPerFloor)
	for floor := 1; floor <= floorCount; floor++ {
		for unit := 1; unit <= unitsPerFloor; unit++ {
			numbers = append(numbers, fmt.Sprintf("%d0%d", floor, unit))
		}
	}
	return numbers
}

// FloorFromApartment derives the floor number from an apartment number.
// Apartment numbers are exactly three characters with the floor as the
// first digit, so "203" is floor 2.
func FloorFromApartment(apt string) (int, error) {
	if apt == "" {
		return 0, fmt.Errorf("empty apartment number")
	}
	c := apt[0]
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("apartment number %q does not start with a digit", apt)
	}
	return int(c - '0'), nil
}

// ValidBlock reports whether b is one of the site's block letters.
func ValidBlock(b string) bool {
	return len(b) == 1 && b[0] >= 'A' && b[0] < 'A'+blockCount
}

// ValidApartment reports whether apt is one of the site's apartment numbers.
func ValidApartment(apt string) bool {
	if len(apt) != 3 || apt[1] != '0' {
		return false
	}
	floor := apt[0]
	unit := apt[2]
	return floor >= '1' && floor <= '0'+floorCount && unit >= '1' && unit <= '0'+unitsPerFloor
}
