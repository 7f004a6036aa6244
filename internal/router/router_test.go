package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"pet-care-tracker/internal/adapters/notify/wshub"
	"pet-care-tracker/internal/adapters/storage/memory"
	"pet-care-tracker/internal/ports/notify"
	"pet-care-tracker/internal/router"
	"pet-care-tracker/internal/store"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
}

func newServer(t *testing.T) (*httptest.Server, *wshub.Hub) {
	t.Helper()

	hub := wshub.NewHub(nil, nil)
	s, err := store.New(context.Background(), memory.NewMedium(),
		store.WithClock(fixedNow),
		store.WithLocation(time.UTC),
		store.WithNotifier(hub),
	)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Store: s, Notifications: hub}))
	t.Cleanup(func() {
		hub.Close()
		ts.Close()
	})
	return ts, hub
}

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	ts, _ := newServer(t)

	// 1) Estado inicial: dataset de ejemplo
	{
		st, body := doReq(t, ts.URL, "GET", "/state", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 state, got %d body=%s", st, string(body))
		}
		var snap store.Snapshot
		mustDecode(t, body, &snap)
		if len(snap.Pets) != 2 || len(snap.Reminders) != 6 {
			t.Fatalf("expected seed 2 pets / 6 reminders, got %d / %d", len(snap.Pets), len(snap.Reminders))
		}
	}

	// 2) Alta de mascota
	petID := createJSON(t, ts.URL, "/pets", map[string]any{
		"name":  "Milo",
		"type":  "dog",
		"breed": "mixed",
		"notes": "<b>friendly</b>",
	})

	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var p map[string]any
		mustDecode(t, body, &p)
		if p["notes"] != "friendly" {
			t.Fatalf("expected sanitized notes, got %v", p["notes"])
		}
	}

	// 3) Validaciones del formulario
	{
		st, _ := doReq(t, ts.URL, "POST", "/reminders", map[string]any{
			"petId": "missing", "title": "Walk", "type": "walking", "frequency": "daily", "time": "18:00",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown pet, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "POST", "/reminders", map[string]any{
			"petId": petID, "title": "Walk", "type": "walking", "frequency": "daily", "time": "6pm",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad time, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "POST", "/pets", map[string]any{"name": "", "type": "dog"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for blank name, got %d", st)
		}
	}

	// 4) Recordatorio de hoy: aparece en /today en orden de hora
	reminderID := createJSON(t, ts.URL, "/reminders", map[string]any{
		"petId":     petID,
		"title":     "Vet visit",
		"type":      "veterinary",
		"frequency": "once",
		"time":      "10:15",
		"date":      "2024-06-10T15:00:00Z",
	})

	{
		st, body := doReq(t, ts.URL, "GET", "/reminders/today", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 today, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		mustDecode(t, body, &items)
		got := make([]string, 0, len(items))
		for _, it := range items {
			got = append(got, it["time"].(string))
		}
		want := "07:30,08:00,10:15,18:00,19:30"
		if strings.Join(got, ",") != want {
			t.Fatalf("expected today times %s, got %v", want, got)
		}
	}

	{
		st, _ := doReq(t, ts.URL, "GET", "/reminders/upcoming?days=abc", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad days, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/reminders/calendar?from=2024-06-09&days=3", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 calendar, got %d body=%s", st, string(body))
		}
		var days []map[string]any
		mustDecode(t, body, &days)
		if len(days) != 3 || days[1]["isToday"] != true {
			t.Fatalf("unexpected calendar body=%s", string(body))
		}
	}

	// 5) Toggle
	{
		st, body := doReq(t, ts.URL, "POST", "/reminders/"+reminderID+"/toggle", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 toggle, got %d body=%s", st, string(body))
		}
		var r map[string]any
		mustDecode(t, body, &r)
		if r["isComplete"] != true {
			t.Fatalf("expected isComplete=true after toggle, body=%s", string(body))
		}

		st, _ = doReq(t, ts.URL, "POST", "/reminders/nope/toggle", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 toggle unknown, got %d", st)
		}
	}

	// 6) Registros dependientes
	createJSON(t, ts.URL, "/health-logs", map[string]any{
		"petId": petID, "date": "2024-06-10T09:00:00Z", "appetite": "normal", "energy": "high", "behavior": "playful",
	})
	createJSON(t, ts.URL, "/feeding-schedules", map[string]any{
		"petId": petID, "mealName": "Breakfast", "time": "08:00", "portionSize": "1 cup", "foodType": "dry",
	})
	createJSON(t, ts.URL, "/training-sessions", map[string]any{
		"petId": petID, "date": "2024-06-09T17:00:00Z", "duration": 20, "skills": []string{"sit"}, "progress": "in_progress",
	})
	createJSON(t, ts.URL, "/documents", map[string]any{
		"petId": petID, "title": "Rabies certificate", "type": "vaccination", "date": "2024-01-05T00:00:00Z", "imageUrl": "/docs/rabies.png",
	})

	for _, path := range []string{"reminders", "health-logs", "feeding-schedules", "training-sessions", "documents"} {
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/"+path, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing %s, got %d", path, st)
		}
		var items []any
		mustDecode(t, body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 %s for pet, got %d", path, len(items))
		}
	}

	// 7) Baja en cascada
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/reminders/"+reminderID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected cascaded reminder to be gone, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID+"/health-logs", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 listing logs of deleted pet, got %d", st)
		}

		// borrar de nuevo no es error
		st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+petID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting missing pet, got %d", st)
		}
	}
}

func TestHTTP_WebSocket_ReceivesToast(t *testing.T) {
	ts, hub := newServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial ws: %v", err)
	}
	_ = resp.Body.Close()
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for hub.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	createJSON(t, ts.URL, "/pets", map[string]any{"name": "Nala", "type": "cat"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev notify.Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read ws: %v", err)
	}
	if ev.Title != "Pet Added" || ev.Description != "Nala has been added to your pets." {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func createJSON(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var out struct {
		ID string `json:"id"`
	}
	mustDecode(t, body, &out)
	if out.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return out.ID
}

func mustDecode(t *testing.T, body []byte, dst any) {
	t.Helper()
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("decode: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
