package handlers

import (
	"encoding/json"
	"fmt"
	"log"

	"ludo/server/game"
	"ludo/server/models"
	"ludo/server/notifier"
	"ludo/shared"

	"github.com/nats-io/nats.go"
)

// HandleInitGame cria a sala com o primeiro jogador sentado
func HandleInitGame(server *models.Server, request shared.Request, nc *nats.Conn, msg *nats.Msg) {
	var payload shared.InitGamePayload
	if err := json.Unmarshal(request.Payload, &payload); err != nil {
		log.Printf("[%d] - Erro ao desserializar INIT_GAME: %v", server.ID, err)
		replyError(nc, msg, server.ID, "INIT_GAME", "Payload inválido")
		return
	}

	//Validação antes de qualquer lookup
	if payload.RoomID == "" || payload.EventID == "" || payload.PlayerID == "" || payload.TotalTime <= 0 {
		notifier.NotifyError(nc, request.ClientID, payload.EventID, "roomId, eventId, playerId ou totalTime inválido")
		replyError(nc, msg, server.ID, "INIT_GAME", "roomId, eventId, playerId ou totalTime inválido")
		return
	}

	game.InitializeRoom(payload.RoomID, payload.EventID, payload.PlayerID, payload.TotalTime)
	log.Printf("[%d] - Sala %s criada pelo jogador %s (evento %s, totalTime %ds)",
		server.ID, payload.RoomID, payload.PlayerID, payload.EventID, payload.TotalTime)

	notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
		Type:    "GAME_INIT",
		EventID: payload.EventID,
		RoomID:  payload.RoomID,
		From:    payload.PlayerID,
		Data:    mustMarshal(payload),
	})
	replySuccess(nc, msg, server.ID, "INIT_GAME", nil)
}

// HandleJoinRoom senta o segundo jogador e dispara o início da partida
func HandleJoinRoom(server *models.Server, request shared.Request, nc *nats.Conn, msg *nats.Msg) {
	var payload shared.JoinRoomPayload
	if err := json.Unmarshal(request.Payload, &payload); err != nil {
		log.Printf("[%d] - Erro ao desserializar JOIN_ROOM: %v", server.ID, err)
		replyError(nc, msg, server.ID, "JOIN_ROOM", "Payload inválido")
		return
	}

	if payload.RoomID == "" || payload.EventID == "" || payload.PlayerID == "" {
		notifier.NotifyError(nc, request.ClientID, payload.EventID, "roomId, eventId ou playerId inválido")
		replyError(nc, msg, server.ID, "JOIN_ROOM", "roomId, eventId ou playerId inválido")
		return
	}

	player := &shared.Player{
		ID:   payload.PlayerID,
		Name: fmt.Sprintf("Player2_%s", payload.PlayerID),
	}
	if !game.JoinRoom(payload.RoomID, player, payload.EventID) {
		notifier.NotifyError(nc, request.ClientID, payload.EventID, "Sala não encontrada, eventId não confere ou jogador inválido")
		replyError(nc, msg, server.ID, "JOIN_ROOM", "Sala não encontrada, eventId não confere ou jogador inválido")
		return
	}

	room := game.GetRoom(payload.RoomID)
	log.Printf("[%d] - Jogador %s entrou na sala %s", server.ID, payload.PlayerID, payload.RoomID)

	notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
		Type:    "ROOM_UPDATE",
		EventID: payload.EventID,
		RoomID:  payload.RoomID,
		Data:    marshalRoom(room),
	})

	//Sala cheia: partida começa e o relógio da sala liga
	if roomFull(room) {
		game.StartGame(payload.RoomID)
		state := game.GetGameState(payload.RoomID)

		notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
			Type:    "GAME_STARTED",
			EventID: payload.EventID,
			RoomID:  payload.RoomID,
			Data: mustMarshal(shared.GameStartedData{
				GameState: state,
				Players:   playerInfos(room),
			}),
		})
		game.StartRoomTimer(nc, payload.RoomID)
		log.Printf("[%d] - Partida iniciada na sala %s", server.ID, payload.RoomID)
	}

	replySuccess(nc, msg, server.ID, "JOIN_ROOM", nil)
}

// HandleRollDice rola o dado para o jogador da vez
func HandleRollDice(server *models.Server, request shared.Request, nc *nats.Conn, msg *nats.Msg) {
	var payload shared.RollDicePayload
	if err := json.Unmarshal(request.Payload, &payload); err != nil {
		log.Printf("[%d] - Erro ao desserializar ROLL_DICE: %v", server.ID, err)
		replyError(nc, msg, server.ID, "ROLL_DICE", "Payload inválido")
		return
	}

	result := game.RollDice(payload.RoomID, request.ClientID, payload.EventID)
	if result == nil {
		notifier.NotifyError(nc, request.ClientID, payload.EventID, "Não é sua vez, sala inválida ou eventId não confere")
		replyError(nc, msg, server.ID, "ROLL_DICE", "Não é sua vez, sala inválida ou eventId não confere")
		return
	}

	notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
		Type:    "DICE_ROLLED",
		EventID: payload.EventID,
		RoomID:  payload.RoomID,
		From:    request.ClientID,
		Data:    mustMarshal(shared.DiceRolledData{PlayerID: request.ClientID, Dice: result.Dice}),
	})
	notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
		Type:    "GAME_UPDATE",
		EventID: payload.EventID,
		RoomID:  payload.RoomID,
		Data:    mustMarshal(game.GetGameState(payload.RoomID)),
	})

	replySuccess(nc, msg, server.ID, "ROLL_DICE", mustMarshal(result))
}

// HandleMoveToken resolve o movimento e anuncia o desfecho do turno
func HandleMoveToken(server *models.Server, request shared.Request, nc *nats.Conn, msg *nats.Msg) {
	var payload shared.MoveTokenPayload
	if err := json.Unmarshal(request.Payload, &payload); err != nil {
		log.Printf("[%d] - Erro ao desserializar MOVE_TOKEN: %v", server.ID, err)
		replyError(nc, msg, server.ID, "MOVE_TOKEN", "Payload inválido")
		return
	}

	result := game.MoveToken(payload.RoomID, request.ClientID, payload.TokenIndex,
		payload.Steps, payload.EventID, payload.DiceCount, payload.Kill)
	if !result.Success {
		notifier.NotifyError(nc, request.ClientID, payload.EventID, "Movimento inválido ou eventId não confere")
		replyError(nc, msg, server.ID, "MOVE_TOKEN", "Movimento inválido ou eventId não confere")
		return
	}

	notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
		Type:    "GAME_UPDATE",
		EventID: payload.EventID,
		RoomID:  payload.RoomID,
		Data:    mustMarshal(game.GetGameState(payload.RoomID)),
	})

	//O anúncio segue a decisão do motor, não a do cliente
	if result.Retained {
		notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
			Type:    "TURN_CONTINUED",
			EventID: payload.EventID,
			RoomID:  payload.RoomID,
			From:    request.ClientID,
		})
	} else {
		notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
			Type:    "TURN_CHANGED",
			EventID: payload.EventID,
			RoomID:  payload.RoomID,
			Data:    mustMarshal(shared.TurnChangedData{NextPlayer: result.NextPlayer}),
		})
	}

	if winner := game.CheckWinner(payload.RoomID); winner != "" {
		log.Printf("[%d] - Jogador %s venceu na sala %s", server.ID, winner, payload.RoomID)
		notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
			Type:    "GAME_OVER",
			EventID: payload.EventID,
			RoomID:  payload.RoomID,
			Data:    mustMarshal(shared.GameOverData{Winner: &winner}),
		})
		game.DeleteRoom(payload.RoomID)
	}

	replySuccess(nc, msg, server.ID, "MOVE_TOKEN", mustMarshal(result))
}

// HandleChat repassa a mensagem para a sala, sem tocar no estado do jogo
func HandleChat(server *models.Server, request shared.Request, nc *nats.Conn, msg *nats.Msg) {
	var payload shared.ChatPayload
	if err := json.Unmarshal(request.Payload, &payload); err != nil {
		log.Printf("[%d] - Erro ao desserializar CHAT_MESSAGE: %v", server.ID, err)
		replyError(nc, msg, server.ID, "CHAT_MESSAGE", "Payload inválido")
		return
	}

	notifier.BroadcastRoom(nc, payload.RoomID, shared.GameMessage{
		Type:    "CHAT_MESSAGE",
		EventID: payload.EventID,
		RoomID:  payload.RoomID,
		From:    request.ClientID,
		Data:    mustMarshal(shared.ChatData{PlayerID: request.ClientID, Message: payload.Message}),
	})
	replySuccess(nc, msg, server.ID, "CHAT_MESSAGE", nil)
}

// ---- Helpers ----

func roomFull(room *shared.GameRoom) bool {
	if room == nil {
		return false
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()
	return len(room.Players) == game.MaxPlayers
}

func playerInfos(room *shared.GameRoom) []shared.PlayerInfo {
	room.Mu.Lock()
	defer room.Mu.Unlock()
	infos := make([]shared.PlayerInfo, 0, len(room.Players))
	for _, p := range room.Players {
		infos = append(infos, shared.PlayerInfo{ID: p.ID, Name: p.Name})
	}
	return infos
}

func marshalRoom(room *shared.GameRoom) json.RawMessage {
	if room == nil {
		return nil
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()
	return mustMarshal(struct {
		ID        string           `json:"id"`
		EventID   string           `json:"eventId"`
		Players   []*shared.Player `json:"players"`
		GameState shared.GameState `json:"gameState"`
		TotalTime int              `json:"totalTime"`
	}{room.ID, room.EventID, room.Players, room.GameState, room.TotalTime})
}
