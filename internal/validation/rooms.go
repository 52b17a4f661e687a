package validation

import (
	"strconv"
	"strings"

	"bitbucket.org/crgw/hotel-avail/internal/schema"
	"bitbucket.org/crgw/hotel-avail/internal/tools/converting"
	"bitbucket.org/crgw/hotel-avail/internal/xmldoc"
)

// IsChild partitions passengers by age. Everyone older than MaxChildAge is an adult.
func IsChild(age int) bool {
	return age <= MaxChildAge
}

// Rooms treats every Paxes element as a room and every Pax below it as a
// passenger of that room.
func Rooms(doc *xmldoc.Document) ([]schema.Room, error) {
	paxes := doc.FindAll("Paxes")
	if len(paxes) > MaxRooms {
		return nil, ErrTooManyRooms
	}

	rooms := make([]schema.Room, 0, len(paxes))

	for _, roomNode := range paxes {
		room, err := parseRoom(roomNode)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

func parseRoom(node *xmldoc.Node) (schema.Room, error) {
	paxList := node.FindAll("Pax")
	if len(paxList) > MaxGuestsPerRoom {
		return schema.Room{}, ErrTooManyGuests
	}

	room := schema.Room{
		Passengers: make([]schema.Passenger, 0, len(paxList)),
	}

	for _, pax := range paxList {
		ageText := converting.UnwrapOr(pax.Attr("age"), DefaultPassengerAge)

		age, err := strconv.Atoi(strings.TrimSpace(ageText))
		if err != nil {
			return schema.Room{}, ErrInvalidAge
		}

		if IsChild(age) {
			room.Children++
		} else {
			room.Adults++
		}

		room.Passengers = append(room.Passengers, schema.Passenger{Age: age})
	}

	if room.Children > MaxChildrenPerRoom {
		return schema.Room{}, ErrTooManyChildren
	}

	if room.Children > 0 && room.Adults == 0 {
		return schema.Room{}, ErrChildrenWithoutAdult
	}

	return room, nil
}
