package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"ludo/server/game"
	"ludo/server/models"
	"ludo/server/notifier"
	"ludo/shared"

	"github.com/nats-io/nats.go"
)

type ClientInfo struct {
	ClientID string
	LastSeen time.Time
}

var (
	activeClients = make(map[string]*ClientInfo)
	mu            = sync.Mutex{}
)

func PingHandler(serverID int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		defer r.Body.Close()

		var msg models.Message
		if len(body) > 0 {
			json.Unmarshal(body, &msg)
		}

		resp := models.Message{
			From: serverID,
			Msg:  "PONG",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

// Handler para processar os heartbeats recebidos via NATS
func HandleHeartbeat(serverID int, request shared.Request, nc *nats.Conn, msg *nats.Msg) {
	clientID := request.ClientID
	mu.Lock()
	activeClients[clientID] = &ClientInfo{
		ClientID: clientID,
		LastSeen: time.Now(),
	}
	mu.Unlock()
}

// HandleDisconnect trata a saída voluntária de um cliente. Sempre sucede,
// mesmo que o cliente não esteja em sala nenhuma.
func HandleDisconnect(server *models.Server, request shared.Request, nc *nats.Conn, msg *nats.Msg) {
	DisconnectClient(server, nc, request.ClientID)

	resp := shared.Response{
		Status: "success",
		Action: "DISCONNECT",
		Server: server.ID,
	}
	data, _ := json.Marshal(resp)
	if msg.Reply != "" {
		nc.Publish(msg.Reply, data)
	}
}

// Remove clientes que ficaram 15s sem heartbeat, pelo mesmo caminho da
// desconexão explícita
func StartHeartbeatMonitor(server *models.Server, nc *nats.Conn) {
	go func() {
		for {
			time.Sleep(5 * time.Second)
			now := time.Now()

			mu.Lock()
			stale := []string{}
			for id, c := range activeClients {
				if now.Sub(c.LastSeen) > 15*time.Second {
					stale = append(stale, id)
				}
			}
			mu.Unlock()

			for _, id := range stale {
				log.Printf("[%d] - Cliente '%s' inativo. Removendo...", server.ID, id)
				DisconnectClient(server, nc, id)
			}
		}
	}()
}

// DisconnectClient tira o jogador de todas as salas e avisa quem ficou
func DisconnectClient(server *models.Server, nc *nats.Conn, clientID string) {
	mu.Lock()
	delete(activeClients, clientID)
	mu.Unlock()

	affected := game.RemovePlayer(clientID)
	for _, roomID := range affected {
		room := game.GetRoom(roomID)
		if room == nil {
			continue //sala ficou vazia e já foi deletada
		}

		notifier.BroadcastRoom(nc, roomID, shared.GameMessage{
			Type:    "PLAYER_LEFT",
			EventID: room.EventID,
			RoomID:  roomID,
			From:    clientID,
			Data:    mustMarshal(playerInfos(room)),
		})
		notifier.BroadcastRoom(nc, roomID, shared.GameMessage{
			Type:    "GAME_UPDATE",
			EventID: room.EventID,
			RoomID:  roomID,
			Data:    mustMarshal(game.GetGameState(roomID)),
		})
	}

	if len(affected) > 0 {
		log.Printf("[%d] - Cliente '%s' removido das salas %v", server.ID, clientID, affected)
	}
}

// ---- Helpers de resposta ----

//Converte qualquer struct em json.RawMessage
func mustMarshal(v interface{}) json.RawMessage {
	b, _ := json.Marshal(v)
	return json.RawMessage(b)
}

func replySuccess(nc *nats.Conn, msg *nats.Msg, serverID int, action string, data json.RawMessage) {
	if msg.Reply == "" {
		return
	}
	resp := shared.Response{
		Status: "success",
		Action: action,
		Data:   data,
		Server: serverID,
	}
	out, _ := json.Marshal(resp)
	nc.Publish(msg.Reply, out)
}

func replyError(nc *nats.Conn, msg *nats.Msg, serverID int, action, reason string) {
	if msg.Reply == "" {
		return
	}
	resp := shared.Response{
		Status: "error",
		Action: action,
		Error:  reason,
		Server: serverID,
	}
	out, _ := json.Marshal(resp)
	nc.Publish(msg.Reply, out)
}
