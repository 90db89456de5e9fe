package notifier

import (
	"encoding/json"
	"fmt"
	"log"

	"ludo/shared"

	"github.com/nats-io/nats.go"
)

func RoomTopic(roomID string) string {
	return fmt.Sprintf("room.%s.events", roomID)
}

func ClientTopic(clientID string) string {
	return fmt.Sprintf("client.%s.inbox", clientID)
}

// BroadcastRoom publica uma mensagem para todos os ocupantes da sala
func BroadcastRoom(nc *nats.Conn, roomID string, msg shared.GameMessage) {
	if nc == nil {
		return //sem NATS (testes unitários), não há o que publicar
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Notifier] Erro ao serializar mensagem %s: %v", msg.Type, err)
		return
	}

	if err := nc.Publish(RoomTopic(roomID), data); err != nil {
		log.Printf("[Notifier] Erro ao publicar %s na sala %s: %v", msg.Type, roomID, err)
	}
}

// NotifyClient envia uma mensagem privada para o inbox de um cliente
func NotifyClient(nc *nats.Conn, clientID string, msg shared.GameMessage) {
	if nc == nil {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Notifier] Erro ao serializar mensagem %s: %v", msg.Type, err)
		return
	}

	if err := nc.Publish(ClientTopic(clientID), data); err != nil {
		log.Printf("[Notifier] Erro ao publicar %s para %s: %v", msg.Type, clientID, err)
	}
}

// NotifyError manda um erro privado para o cliente que causou a falha
func NotifyError(nc *nats.Conn, clientID, eventID, reason string) {
	NotifyClient(nc, clientID, shared.GameMessage{
		Type:    "ERROR",
		EventID: eventID,
		Data:    json.RawMessage(fmt.Sprintf("%q", reason)),
	})
}
