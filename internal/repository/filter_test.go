package repository

import (
	"testing"

	"tugas-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWhereOwnerOnly(t *testing.T) {
	where, args := TaskFilter{OwnerID: 1}.Where()

	assert.Equal(t, "user_id = $1", where)
	assert.Equal(t, []interface{}{1}, args)
}

func TestWhereAllFields(t *testing.T) {
	filter := TaskFilter{
		OwnerID:  1,
		Search:   "milk",
		Category: "shopping",
		Status:   "pending",
	}
	where, args := filter.Where()

	assert.Equal(t,
		"user_id = $1 AND (title ILIKE $2 OR description ILIKE $2) AND category = $3 AND status = $4",
		where)
	assert.Equal(t, []interface{}{1, "%milk%", "shopping", "pending"}, args)
}

func TestWhereCategoryAllIsIgnored(t *testing.T) {
	where, args := TaskFilter{OwnerID: 1, Category: "all"}.Where()

	assert.Equal(t, "user_id = $1", where)
	assert.Equal(t, []interface{}{1}, args)
}

func TestMatchesOwnerScoping(t *testing.T) {
	task := models.Task{UserID: 1, Title: "Buy milk", Category: "shopping", Status: "pending"}

	assert.True(t, TaskFilter{OwnerID: 1}.Matches(task))
	// Task milik user lain tidak pernah cocok, apa pun filternya
	assert.False(t, TaskFilter{OwnerID: 2}.Matches(task))
	assert.False(t, TaskFilter{OwnerID: 2, Category: "shopping"}.Matches(task))
}

func TestMatchesSearch(t *testing.T) {
	task := models.Task{
		UserID:      1,
		Title:       "Buy milk",
		Description: "from the corner store",
		Category:    "shopping",
		Status:      "pending",
	}

	tests := []struct {
		name   string
		search string
		want   bool
	}{
		{"substring of title", "milk", true},
		{"substring of description", "corner", true},
		{"case-insensitive", "BUY", true},
		{"absent in both", "laundry", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TaskFilter{OwnerID: 1, Search: tt.search}.Matches(task)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesCategoryAndStatus(t *testing.T) {
	task := models.Task{UserID: 1, Title: "Buy milk", Category: "shopping", Status: "pending"}

	assert.True(t, TaskFilter{OwnerID: 1, Category: "shopping"}.Matches(task))
	assert.False(t, TaskFilter{OwnerID: 1, Category: "work"}.Matches(task))
	assert.True(t, TaskFilter{OwnerID: 1, Category: "all"}.Matches(task))
	assert.True(t, TaskFilter{OwnerID: 1, Status: "pending"}.Matches(task))
	assert.False(t, TaskFilter{OwnerID: 1, Status: "completed"}.Matches(task))
}
