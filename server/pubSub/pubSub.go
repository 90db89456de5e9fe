package pubSub

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"ludo/server/handlers"
	"ludo/server/models"
	"ludo/shared"

	"github.com/nats-io/nats.go"
)

func StartNats(server *models.Server, natsURL string) (*nats.Conn, error) {
	if natsURL == "" {
		natsURL = os.Getenv("NATS_URL")
	}

	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2 * time.Second),
	}

	nc, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no NATS: %w", err)
	}

	// Subscribe no tópico de requests do servidor
	topic := fmt.Sprintf("server.%d.requests", server.ID)
	_, err = nc.Subscribe(topic, func(msg *nats.Msg) {
		var req shared.Request
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Printf("[%d] Erro ao decodificar request: %v", server.ID, err)
			return
		}

		//Chama o handler correto
		switch req.Action {
		case "INIT_GAME":
			handlers.HandleInitGame(server, req, nc, msg)
		case "JOIN_ROOM":
			handlers.HandleJoinRoom(server, req, nc, msg)
		case "ROLL_DICE":
			handlers.HandleRollDice(server, req, nc, msg)
		case "MOVE_TOKEN":
			handlers.HandleMoveToken(server, req, nc, msg)
		case "CHAT_MESSAGE":
			handlers.HandleChat(server, req, nc, msg)
		case "HEARTBEAT":
			handlers.HandleHeartbeat(server.ID, req, nc, msg)
		case "DISCONNECT":
			handlers.HandleDisconnect(server, req, nc, msg)
		default:
			log.Printf("[%d] Ação desconhecida recebida: %s", server.ID, req.Action)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao se inscrever no tópico: %w", err)
	}

	log.Printf("[%d] - Inscrito em %s", server.ID, topic)
	return nc, nil
}
