package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRoomsByType(t *testing.T) {
	rooms := []Room{
		{ID: 1, Number: "101", TypeName: "Стандарт"},
		{ID: 2, Number: "201", TypeName: "Люкс"},
		{ID: 3, Number: "102", TypeName: "Стандарт"},
		{ID: 4, Number: "301", TypeName: "Семейный"},
		{ID: 5, Number: "202", TypeName: "Люкс"},
	}

	groups := GroupRoomsByType(rooms)

	require.Len(t, groups, 3)

	// Порядок групп — порядок первого появления типа
	assert.Equal(t, "Стандарт", groups[0].TypeName)
	assert.Equal(t, "Люкс", groups[1].TypeName)
	assert.Equal(t, "Семейный", groups[2].TypeName)

	// Порядок номеров внутри группы сохраняется
	assert.Equal(t, []int64{1, 3}, roomIDs(groups[0].Rooms))
	assert.Equal(t, []int64{2, 5}, roomIDs(groups[1].Rooms))
	assert.Equal(t, []int64{4}, roomIDs(groups[2].Rooms))
}

func TestGroupRoomsByType_Empty(t *testing.T) {
	assert.Empty(t, GroupRoomsByType(nil))
	assert.Empty(t, GroupRoomsByType([]Room{}))
}

func roomIDs(rooms []Room) []int64 {
	ids := make([]int64, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}
