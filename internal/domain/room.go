package domain

// Room номер гостиницы в том виде, в котором его отдаёт хранилище
type Room struct {
	ID       int64
	BranchID int64
	Number   string
	TypeID   int64
	TypeName string
}

// RoomGroup группа номеров одного типа для порядка отображения на таймлайне
type RoomGroup struct {
	TypeName string
	Rooms    []Room
}

// GroupRoomsByType разбивает список номеров на группы по названию типа.
// Порядок групп — порядок первого появления типа в списке,
// порядок номеров внутри группы сохраняется.
func GroupRoomsByType(rooms []Room) []RoomGroup {
	index := make(map[string]int, len(rooms))
	groups := make([]RoomGroup, 0)

	for _, room := range rooms {
		i, ok := index[room.TypeName]
		if !ok {
			i = len(groups)
			index[room.TypeName] = i
			groups = append(groups, RoomGroup{TypeName: room.TypeName})
		}
		groups[i].Rooms = append(groups[i].Rooms, room)
	}

	return groups
}
