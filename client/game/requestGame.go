package game

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ludo/client/models"
	"ludo/shared"
	"ludo/style"

	"github.com/nats-io/nats.go"
)

//Envia uma ação para o servidor e espera a resposta
func sendRequest(nc *nats.Conn, server models.ServerInfo, clientID, action string, payload interface{}) (shared.Response, bool) {
	var resp shared.Response

	data, err := json.Marshal(payload)
	if err != nil {
		log.Println("Erro ao serializar payload:", err)
		return resp, false
	}

	req := shared.Request{
		ClientID: clientID,
		Action:   action,
		Payload:  json.RawMessage(data),
	}
	reqData, _ := json.Marshal(req)

	topic := fmt.Sprintf("server.%d.requests", server.ID)
	msg, err := nc.Request(topic, reqData, 5*time.Second)
	if err != nil {
		fmt.Println("Erro ao enviar requisição:", err)
		return resp, false
	}

	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		fmt.Println("Erro ao decodificar resposta do servidor:", err)
		return resp, false
	}

	if resp.Status != "success" {
		style.PrintVerm(fmt.Sprintf("\nFalha em %s: %s\n", action, resp.Error))
		return resp, false
	}
	return resp, true
}

func InitGame(nc *nats.Conn, server models.ServerInfo, session *models.Session, totalTime int) bool {
	payload := shared.InitGamePayload{
		RoomID:    session.RoomID,
		EventID:   session.EventID,
		PlayerID:  session.ClientID,
		TotalTime: totalTime,
	}
	_, ok := sendRequest(nc, server, session.ClientID, "INIT_GAME", payload)
	if ok {
		style.PrintVerd(fmt.Sprintf("\nSala %s criada! Aguardando oponente...\n", session.RoomID))
	}
	return ok
}

func JoinRoom(nc *nats.Conn, server models.ServerInfo, session *models.Session) bool {
	payload := shared.JoinRoomPayload{
		RoomID:   session.RoomID,
		EventID:  session.EventID,
		PlayerID: session.ClientID,
	}
	_, ok := sendRequest(nc, server, session.ClientID, "JOIN_ROOM", payload)
	if ok {
		style.PrintVerd(fmt.Sprintf("\nVocê entrou na sala %s!\n", session.RoomID))
	}
	return ok
}

func RollDice(nc *nats.Conn, server models.ServerInfo, session *models.Session) {
	payload := shared.RollDicePayload{RoomID: session.RoomID, EventID: session.EventID}
	resp, ok := sendRequest(nc, server, session.ClientID, "ROLL_DICE", payload)
	if !ok {
		return
	}

	var result struct {
		Dice int `json:"dice"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		fmt.Println("Erro ao decodificar resultado do dado:", err)
		return
	}
	session.LastDice = result.Dice
	style.PrintCian(fmt.Sprintf("\nVocê tirou %d!\n", result.Dice))
}

func MoveToken(nc *nats.Conn, server models.ServerInfo, session *models.Session, tokenIndex, steps int) {
	payload := shared.MoveTokenPayload{
		RoomID:     session.RoomID,
		EventID:    session.EventID,
		TokenIndex: tokenIndex,
		Steps:      steps,
		DiceCount:  session.LastDice,
		Kill:       true, //se capturar, reivindica a vez extra
	}
	resp, ok := sendRequest(nc, server, session.ClientID, "MOVE_TOKEN", payload)
	if !ok {
		return
	}

	var result struct {
		Capture  bool `json:"capture"`
		Retained bool `json:"retained"`
	}
	json.Unmarshal(resp.Data, &result)
	if result.Capture {
		style.PrintAma("\nVocê capturou uma peça do oponente!\n")
	}
	if result.Retained {
		style.PrintVerd("Você joga de novo.\n")
	}
}

func SendChat(nc *nats.Conn, server models.ServerInfo, session *models.Session, message string) {
	payload := shared.ChatPayload{
		RoomID:  session.RoomID,
		EventID: session.EventID,
		Message: message,
	}
	sendRequest(nc, server, session.ClientID, "CHAT_MESSAGE", payload)
}

func Disconnect(nc *nats.Conn, server models.ServerInfo, clientID string) {
	sendRequest(nc, server, clientID, "DISCONNECT", struct{}{})
}

//Heartbeat periódico para o servidor saber que continuamos vivos
func StartHeartbeat(nc *nats.Conn, server models.ServerInfo, clientID string) {
	go func() {
		topic := fmt.Sprintf("server.%d.requests", server.ID)
		for {
			req := shared.Request{ClientID: clientID, Action: "HEARTBEAT"}
			data, _ := json.Marshal(req)
			if err := nc.Publish(topic, data); err != nil {
				log.Println("Erro ao enviar heartbeat:", err)
			}
			time.Sleep(5 * time.Second)
		}
	}()
}
