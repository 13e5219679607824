//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, client *http.Client, method, url, token string, payload interface{}) *http.Response {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func listTitles(t *testing.T, client *http.Client, token string) []string {
	resp := doJSON(t, client, "GET", baseURL+"/notifications", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Notifications []struct {
			ID      int64   `json:"id"`
			UserID  *string `json:"user_id"`
			Title   string  `json:"title"`
			Read    bool    `json:"read"`
			Created string  `json:"created_at"`
		} `json:"notifications"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	titles := make([]string, 0, len(result.Notifications))
	for _, n := range result.Notifications {
		titles = append(titles, n.Title)
	}
	return titles
}

func TestNotificationVisibility(t *testing.T) {
	// This test assumes the API server is running on localhost:8080
	// and connects to the same DB as the test runner for seeding.

	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	tokenA, idA := registerAndLogin(t, client, "viewer-a@example.com", "Viewer A")
	tokenB, idB := registerAndLogin(t, client, "viewer-b@example.com", "Viewer B")

	now := time.Now()
	env.InsertNotification(t, nil, "system-wide", now.Add(-3*time.Second))
	env.InsertNotification(t, &idA, "for-a-only", now.Add(-2*time.Second))
	env.InsertNotification(t, &idB, "for-b-only", now.Add(-1*time.Second))

	t.Run("Viewer Sees Own And System Records", func(t *testing.T) {
		titles := listTitles(t, client, tokenA)
		assert.Equal(t, []string{"for-a-only", "system-wide"}, titles)
	})

	t.Run("Foreign Records Never Leak", func(t *testing.T) {
		titles := listTitles(t, client, tokenB)
		assert.Equal(t, []string{"for-b-only", "system-wide"}, titles)
		assert.NotContains(t, titles, "for-a-only")
	})
}

func TestNotificationWindow(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	token, _ := registerAndLogin(t, client, "window@example.com", "Window Viewer")

	base := time.Now().Add(-time.Minute)
	for i := 0; i < 20; i++ {
		env.InsertNotification(t, nil, fmt.Sprintf("seed-%02d", i), base.Add(time.Duration(i)*time.Second))
	}

	titles := listTitles(t, client, token)
	require.Len(t, titles, 15)

	// Newest first, oldest five fall outside the window.
	assert.Equal(t, "seed-19", titles[0])
	assert.Equal(t, "seed-05", titles[14])
	assert.NotContains(t, titles, "seed-04")
	assert.NotContains(t, titles, "seed-00")
}

func TestNotificationBroadcastFlow(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	senderToken, senderID := registerAndLogin(t, client, "sender@example.com", "Sender")
	viewerToken, _ := registerAndLogin(t, client, "viewer@example.com", "Viewer")

	payload := map[string]string{
		"title":   "Deployment finished",
		"message": "Build 42 is live",
		"type":    "success",
	}

	// 1. A plain account cannot broadcast.
	t.Run("Send Requires Capability", func(t *testing.T) {
		resp := doJSON(t, client, "POST", baseURL+"/notifications/send", senderToken, payload)
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		var result map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Missing required capability: send_notification", result["message"])
	})

	// 2. Promote and broadcast for real.
	t.Run("Broadcast Round Trip", func(t *testing.T) {
		env.PromoteRole(t, senderID, "admin")

		resp := doJSON(t, client, "POST", baseURL+"/notifications/send", senderToken, payload)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		titles := listTitles(t, client, viewerToken)
		require.NotEmpty(t, titles)
		assert.Equal(t, "Deployment finished", titles[0])
	})

	// 3. The persisted record drives the unread counter for every viewer.
	t.Run("Unread Count And Mark Read", func(t *testing.T) {
		resp := doJSON(t, client, "GET", baseURL+"/notifications/unread-count", viewerToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count struct {
			Count int64 `json:"count"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&count))
		require.Equal(t, int64(1), count.Count)

		var id int64
		require.NoError(t, env.DB.QueryRow("SELECT id FROM notifications ORDER BY created_at DESC LIMIT 1").Scan(&id))

		markResp := doJSON(t, client, "PUT", fmt.Sprintf("%s/notifications/%d/read", baseURL, id), viewerToken, nil)
		defer markResp.Body.Close()
		require.Equal(t, http.StatusNoContent, markResp.StatusCode)

		// Read state is global per record, so the sender sees it read too.
		afterResp := doJSON(t, client, "GET", baseURL+"/notifications/unread-count", senderToken, nil)
		defer afterResp.Body.Close()
		require.Equal(t, http.StatusOK, afterResp.StatusCode)
		require.NoError(t, json.NewDecoder(afterResp.Body).Decode(&count))
		assert.Equal(t, int64(0), count.Count)
	})
}
