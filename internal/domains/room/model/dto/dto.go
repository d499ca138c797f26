package dto

import (
	"frontdesk/internal/domains/room/model"
)

type RoomResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	AllowedTypes []string `json:"allowed_types"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Name = room.Name
	r.AllowedTypes = room.AllowedTypes
}

type GetRoomsResponse struct {
	Items []RoomResponse `json:"items"`
	Total int            `json:"total"`
}

func (r *GetRoomsResponse) FromModels(rooms []model.Room) {
	r.Items = make([]RoomResponse, 0, len(rooms))

	for _, room := range rooms {
		item := RoomResponse{}
		item.FromModel(room)

		r.Items = append(r.Items, item)
	}

	r.Total = len(r.Items)
}
