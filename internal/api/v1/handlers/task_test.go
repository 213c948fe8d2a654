package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"tugas-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetTask(t *testing.T) {
	env := newTestApp()
	cookie, userID := registerAndLogin(t, env, "U1", "u1@example.com")

	dueDate := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created := createTask(t, env, cookie, map[string]interface{}{
		"title":       "Buy milk",
		"description": "from the corner store",
		"category":    "shopping",
		"priority":    "low",
		"due_date":    dueDate.Format(time.RFC3339),
	})
	assert.NotZero(t, created.ID)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, "pending", created.Status)

	// Round-trip: semua field kembali utuh lewat GET
	resp := doRequest(t, env.app, "GET", "/tasks/"+itoa(created.ID), nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Task
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Buy milk", fetched.Title)
	assert.Equal(t, "from the corner store", fetched.Description)
	assert.Equal(t, "shopping", fetched.Category)
	assert.Equal(t, "low", fetched.Priority)
	assert.Equal(t, "pending", fetched.Status)
	require.NotNil(t, fetched.DueDate)
	assert.True(t, fetched.DueDate.Equal(dueDate))
}

func TestCreateTaskDefaults(t *testing.T) {
	env := newTestApp()
	cookie, _ := registerAndLogin(t, env, "U1", "defaults@example.com")

	task := createTask(t, env, cookie, map[string]interface{}{
		"title": "Bare minimum",
	})
	assert.Equal(t, "other", task.Category)
	assert.Equal(t, "medium", task.Priority)
	assert.Equal(t, "pending", task.Status)
	assert.Nil(t, task.DueDate)
}

func TestCreateTaskValidation(t *testing.T) {
	env := newTestApp()
	cookie, _ := registerAndLogin(t, env, "U1", "validation@example.com")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing title", map[string]interface{}{"category": "work"}},
		{"invalid category", map[string]interface{}{"title": "X", "category": "games"}},
		{"invalid priority", map[string]interface{}{"title": "X", "priority": "urgent"}},
		{"invalid status", map[string]interface{}{"title": "X", "status": "archived"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, env.app, "POST", "/tasks", tt.body, cookie)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, decodeEnvelope(t, resp).Error)
		})
	}
}

func TestListTasksSearchFilter(t *testing.T) {
	env := newTestApp()
	cookie, _ := registerAndLogin(t, env, "U1", "search@example.com")

	createTask(t, env, cookie, map[string]interface{}{
		"title": "Buy milk", "description": "from the corner store",
	})
	createTask(t, env, cookie, map[string]interface{}{
		"title": "Walk the dog", "description": "around the block",
	})

	tests := []struct {
		name   string
		query  string
		titles []string
	}{
		{"match in title", "?search=milk", []string{"Buy milk"}},
		{"match in description", "?search=block", []string{"Walk the dog"}},
		{"case-insensitive", "?search=MILK", []string{"Buy milk"}},
		{"absent in both", "?search=laundry", []string{}},
		{"no filter", "", []string{"Buy milk", "Walk the dog"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, env.app, "GET", "/tasks"+tt.query, nil, cookie)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var tasks []models.Task
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &tasks))
			titles := []string{}
			for _, task := range tasks {
				titles = append(titles, task.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestListTasksCategoryFilter(t *testing.T) {
	env := newTestApp()
	cookieU1, _ := registerAndLogin(t, env, "U1", "cat-u1@example.com")
	cookieU2, _ := registerAndLogin(t, env, "U2", "cat-u2@example.com")

	createTask(t, env, cookieU1, map[string]interface{}{
		"title": "Buy milk", "category": "shopping", "priority": "low",
	})
	createTask(t, env, cookieU1, map[string]interface{}{
		"title": "Write report", "category": "work",
	})

	// Filter kategori hanya mengembalikan task milik pemiliknya
	resp := doRequest(t, env.app, "GET", "/tasks?category=shopping", nil, cookieU1)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)

	// User lain dengan filter yang sama tidak melihat apa pun
	resp = doRequest(t, env.app, "GET", "/tasks?category=shopping", nil, cookieU2)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &tasks))
	assert.Empty(t, tasks)

	// category=all berarti tanpa batasan kategori
	resp = doRequest(t, env.app, "GET", "/tasks?category=all", nil, cookieU1)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &tasks))
	assert.Len(t, tasks, 2)
}

func TestListTasksStatusFilter(t *testing.T) {
	env := newTestApp()
	cookie, _ := registerAndLogin(t, env, "U1", "status@example.com")

	createTask(t, env, cookie, map[string]interface{}{"title": "Open", "status": "pending"})
	createTask(t, env, cookie, map[string]interface{}{"title": "Done", "status": "completed"})

	resp := doRequest(t, env.app, "GET", "/tasks?status=completed", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Done", tasks[0].Title)
}

func TestCrossUserAccessIsNotFound(t *testing.T) {
	env := newTestApp()
	cookieA, _ := registerAndLogin(t, env, "A", "owner-a@example.com")
	cookieB, _ := registerAndLogin(t, env, "B", "owner-b@example.com")

	task := createTask(t, env, cookieA, map[string]interface{}{"title": "Private"})

	// Task milik A dijawab 404 untuk B pada semua operasi
	resp := doRequest(t, env.app, "GET", "/tasks/"+itoa(task.ID), nil, cookieB)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "task not found", decodeEnvelope(t, resp).Error)

	resp = doRequest(t, env.app, "PUT", "/tasks/"+itoa(task.ID),
		map[string]interface{}{"title": "Hijacked"}, cookieB)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, "DELETE", "/tasks/"+itoa(task.ID), nil, cookieB)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Pemiliknya masih bisa mengakses task tersebut
	resp = doRequest(t, env.app, "GET", "/tasks/"+itoa(task.ID), nil, cookieA)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateTask(t *testing.T) {
	env := newTestApp()
	cookie, _ := registerAndLogin(t, env, "U1", "update@example.com")

	task := createTask(t, env, cookie, map[string]interface{}{
		"title": "Buy milk", "category": "shopping",
	})

	resp := doRequest(t, env.app, "PUT", "/tasks/"+itoa(task.ID),
		map[string]interface{}{"status": "completed"}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Task
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &updated))
	assert.Equal(t, "completed", updated.Status)
	// Field yang tidak dikirim tetap seperti semula
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "shopping", updated.Category)
}

func TestUpdateTaskInvalidEnum(t *testing.T) {
	env := newTestApp()
	cookie, _ := registerAndLogin(t, env, "U1", "update-enum@example.com")

	task := createTask(t, env, cookie, map[string]interface{}{"title": "X"})

	resp := doRequest(t, env.app, "PUT", "/tasks/"+itoa(task.ID),
		map[string]interface{}{"status": "archived"}, cookie)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid status", decodeEnvelope(t, resp).Error)
}

func TestDeleteTask(t *testing.T) {
	env := newTestApp()
	cookie, _ := registerAndLogin(t, env, "U1", "delete@example.com")

	task := createTask(t, env, cookie, map[string]interface{}{"title": "Ephemeral"})

	resp := doRequest(t, env.app, "DELETE", "/tasks/"+itoa(task.ID), nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, "GET", "/tasks/"+itoa(task.ID), nil, cookie)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteMissingTask(t *testing.T) {
	env := newTestApp()
	cookie, _ := registerAndLogin(t, env, "U1", "delete-missing@example.com")

	// Menghapus id yang tidak ada harus 404, bukan sukses diam-diam
	resp := doRequest(t, env.app, "DELETE", "/tasks/99999", nil, cookie)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "task not found", decodeEnvelope(t, resp).Error)
}

func TestTasksRequireAuth(t *testing.T) {
	env := newTestApp()

	resp := doRequest(t, env.app, "GET", "/tasks", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, "POST", "/tasks",
		map[string]interface{}{"title": "X"}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
