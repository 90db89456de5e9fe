package game

import (
	"encoding/json"
	"fmt"
	"log"

	"ludo/client/models"
	"ludo/shared"
	"ludo/style"

	"github.com/nats-io/nats.go"
)

//Escuta os eventos da sala e mantém o estado local da sessão
func StartRoomListener(nc *nats.Conn, session *models.Session) {
	roomTopic := fmt.Sprintf("room.%s.events", session.RoomID)

	_, err := nc.Subscribe(roomTopic, func(msg *nats.Msg) {
		HandleIncomingGameMessage(msg.Data, session)
	})
	if err != nil {
		log.Printf("Erro ao iniciar listener NATS para %s: %v", roomTopic, err)
		return
	}

	inboxTopic := fmt.Sprintf("client.%s.inbox", session.ClientID)
	_, err = nc.Subscribe(inboxTopic, func(msg *nats.Msg) {
		HandleIncomingGameMessage(msg.Data, session)
	})
	if err != nil {
		log.Printf("Erro ao iniciar listener NATS para %s: %v", inboxTopic, err)
	}
}

//Processa mensagens de jogo recebidas
func HandleIncomingGameMessage(msgData []byte, session *models.Session) {
	var msg shared.GameMessage
	if err := json.Unmarshal(msgData, &msg); err != nil {
		log.Println("Erro ao decodificar GameMessage:", err)
		return
	}

	switch msg.Type {
	case "GAME_INIT":
		style.PrintCian("\nSala criada, aguardando o segundo jogador.\n")
	case "ROOM_UPDATE":
		style.PrintCian("\nUm jogador entrou na sala.\n")
	case "GAME_STARTED":
		var data shared.GameStartedData
		if err := json.Unmarshal(msg.Data, &data); err == nil && data.GameState != nil {
			session.MyTurn = data.GameState.CurrentPlayer == session.ClientID
			if session.MyTurn {
				style.PrintVerd("\nPartida iniciada! É a sua vez.\n")
			} else {
				style.PrintAma("\nPartida iniciada! Vez do oponente.\n")
			}
		}
	case "DICE_ROLLED":
		var data shared.DiceRolledData
		if err := json.Unmarshal(msg.Data, &data); err == nil && data.PlayerID != session.ClientID {
			fmt.Printf("\nO oponente tirou %d no dado.\n", data.Dice)
		}
	case "TURN_CONTINUED":
		session.MyTurn = msg.From == session.ClientID
		if !session.MyTurn {
			style.PrintAma("\nO oponente joga de novo.\n")
		}
	case "TURN_CHANGED":
		var data shared.TurnChangedData
		if err := json.Unmarshal(msg.Data, &data); err == nil {
			session.MyTurn = data.NextPlayer == session.ClientID
			if session.MyTurn {
				style.PrintVerd("\nÉ a sua vez!\n")
			} else {
				style.PrintAma("\nVez do oponente.\n")
			}
		}
	case "CHAT_MESSAGE":
		var data shared.ChatData
		if err := json.Unmarshal(msg.Data, &data); err == nil && data.PlayerID != session.ClientID {
			fmt.Printf("\n[chat] %s: %s\n", data.PlayerID, data.Message)
		}
	case "PLAYER_LEFT":
		style.PrintVerm("\nO oponente saiu da sala.\n")
	case "TIMER_UPDATE":
		//silencioso: o cliente só usa para detectar fim por tempo via GAME_OVER
	case "GAME_UPDATE":
		//estado completo chega aqui; a interface de terminal não o desenha
	case "GAME_OVER":
		var data shared.GameOverData
		if err := json.Unmarshal(msg.Data, &data); err == nil {
			if data.Winner == nil {
				style.PrintVerm("\nTempo esgotado! Partida encerrada sem vencedor.\n")
			} else if *data.Winner == session.ClientID {
				style.PrintVerd("\nVocê venceu!\n")
			} else {
				style.PrintVerm(fmt.Sprintf("\nFim de jogo. Vencedor: %s\n", *data.Winner))
			}
		}
		session.MyTurn = false
	case "ERROR":
		var reason string
		json.Unmarshal(msg.Data, &reason)
		style.PrintVerm(fmt.Sprintf("\nErro: %s\n", reason))
	default:
		log.Printf("Mensagem desconhecida recebida: %s", msg.Type)
	}
}
