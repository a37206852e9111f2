package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/autolote/autolote-core/internal/auth"
)

// dialWS connects to the test server's /ws endpoint with the given token.
func dialWS(t *testing.T, ts *httptest.Server, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	if token != "" {
		url += "?token=" + token
	}
	return websocket.DefaultDialer.Dial(url, nil)
}

// readWS reads one message with a deadline so a broken test fails instead of hanging.
func readWS(t *testing.T, conn *websocket.Conn) WSMessage {
	t.Helper()

	//nolint:errcheck // deadline failure surfaces as a read error below
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg WSMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading websocket message: %v", err)
	}
	return msg
}

func TestWebSocket_RequiresToken(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.router)
	defer ts.Close()

	_, resp, err := dialWS(t, ts, "")
	if err == nil {
		t.Fatal("dial without token should fail")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("handshake status = %v, want 401", resp)
	}

	_, resp, err = dialWS(t, ts, "garbage-token")
	if err == nil {
		t.Fatal("dial with invalid token should fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("handshake status = %v, want 403", resp)
	}
}

func TestWebSocket_SubscribeAndBroadcast(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.router)
	defer ts.Close()

	user := env.createUser(t, "ws@autolote.com", auth.RoleVendedor)
	conn, _, err := dialWS(t, ts, env.tokenFor(t, user))
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	// Subscribe to vehicle change notifications
	sub := WSMessage{
		Type:    WSTypeSubscribe,
		ID:      "1",
		Payload: WSSubscribePayload{Channels: []string{ChannelCarrosUpdated}},
	}
	if err := conn.WriteJSON(sub); err != nil {
		t.Fatalf("sending subscribe: %v", err)
	}

	resp := readWS(t, conn)
	if resp.Type != WSTypeResponse {
		t.Fatalf("subscribe response type = %q, want response", resp.Type)
	}

	// A broadcast on the subscribed channel reaches the client
	env.server.hub.Broadcast(ChannelCarrosUpdated, nil)

	event := readWS(t, conn)
	if event.Type != WSTypeEvent {
		t.Errorf("event type = %q, want event", event.Type)
	}
	if event.EventType != ChannelCarrosUpdated {
		t.Errorf("event channel = %q, want %q", event.EventType, ChannelCarrosUpdated)
	}
}

func TestWebSocket_UnsubscribedChannelIsSilent(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.router)
	defer ts.Close()

	user := env.createUser(t, "ws@autolote.com", auth.RoleVendedor)
	conn, _, err := dialWS(t, ts, env.tokenFor(t, user))
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	sub := WSMessage{
		Type:    WSTypeSubscribe,
		ID:      "1",
		Payload: WSSubscribePayload{Channels: []string{ChannelCarrosUpdated}},
	}
	if err := conn.WriteJSON(sub); err != nil {
		t.Fatalf("sending subscribe: %v", err)
	}
	readWS(t, conn) // subscribe ack

	// Broadcast on a channel the client did not subscribe to
	env.server.hub.Broadcast(ChannelUsersUpdated, nil)
	// Then one it did, as a marker
	env.server.hub.Broadcast(ChannelCarrosUpdated, nil)

	event := readWS(t, conn)
	if event.EventType != ChannelCarrosUpdated {
		t.Errorf("first delivered event = %q, want %q (usersUpdated must be filtered)",
			event.EventType, ChannelCarrosUpdated)
	}
}

func TestWebSocket_MutationTriggersNotification(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.router)
	defer ts.Close()

	gerente := env.createUser(t, "gerente@autolote.com", auth.RoleGerente)
	conn, _, err := dialWS(t, ts, env.tokenFor(t, gerente))
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	sub := WSMessage{
		Type:    WSTypeSubscribe,
		ID:      "1",
		Payload: WSSubscribePayload{Channels: []string{ChannelCarrosUpdated}},
	}
	if err := conn.WriteJSON(sub); err != nil {
		t.Fatalf("sending subscribe: %v", err)
	}
	readWS(t, conn) // subscribe ack

	// Creating a vehicle over HTTP pushes a signal to subscribers
	rec := env.request(t, http.MethodPost, "/carros", env.tokenFor(t, gerente), sampleCarroPayload())
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}

	event := readWS(t, conn)
	if event.Type != WSTypeEvent || event.EventType != ChannelCarrosUpdated {
		t.Errorf("event = %+v, want carrosUpdated event", event)
	}
}

func TestWebSocket_Ping(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.router)
	defer ts.Close()

	user := env.createUser(t, "ws@autolote.com", auth.RoleVendedor)
	conn, _, err := dialWS(t, ts, env.tokenFor(t, user))
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(WSMessage{Type: WSTypePing, ID: "42"}); err != nil {
		t.Fatalf("sending ping: %v", err)
	}

	resp := readWS(t, conn)
	if resp.Type != WSTypePong {
		t.Errorf("ping response type = %q, want pong", resp.Type)
	}
	if resp.ID != "42" {
		t.Errorf("ping response id = %q, want 42", resp.ID)
	}
}

func TestHub_ClientCount(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.router)
	defer ts.Close()

	user := env.createUser(t, "ws@autolote.com", auth.RoleVendedor)

	if n := env.server.hub.ClientCount(); n != 0 {
		t.Fatalf("initial client count = %d, want 0", n)
	}

	conn, _, err := dialWS(t, ts, env.tokenFor(t, user))
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}

	// Registration happens synchronously in the handler before the pumps start
	waitFor(t, func() bool { return env.server.hub.ClientCount() == 1 })

	conn.Close()
	waitFor(t, func() bool { return env.server.hub.ClientCount() == 0 })
}

// waitFor polls a condition for up to two seconds.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}
