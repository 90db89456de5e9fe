package game

import (
	"encoding/json"
	"log"
	"time"

	"ludo/server/notifier"
	"ludo/shared"

	"github.com/nats-io/nats.go"
)

//Limite de tempo de um turno antes da vez ser passada à força
const TurnLimitSeconds = 40

//Liga o relógio de 1s da sala. Sala que já tem timer rodando é um no-op.
func StartRoomTimer(nc *nats.Conn, roomID string) {
	room := GetRoom(roomID)
	if room == nil {
		return
	}

	room.Mu.Lock()
	if room.TimerStop != nil {
		room.Mu.Unlock()
		return
	}
	stop := make(chan struct{})
	room.TimerStop = stop
	room.Mu.Unlock()

	log.Printf("Timer da sala %s iniciado", roomID)

	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !TickRoom(nc, roomID) {
					return
				}
			}
		}
	}()
}

//Fecha o canal de parada do timer. Chamar com room.Mu já adquirido.
func stopRoomTimerLocked(room *shared.GameRoom) {
	if room.TimerStop != nil {
		close(room.TimerStop)
		room.TimerStop = nil
	}
}

//Um passo da supervisão da sala: encerra por tempo total, força a passagem
//de vez por tempo de turno e publica os relógios correntes. Retorna false
//quando a sala acabou ou não existe mais.
func TickRoom(nc *nats.Conn, roomID string) bool {
	room := GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	eventID := room.EventID
	timers := timersLocked(room)

	//Tempo total esgotado: fim de jogo sem vencedor e sala deletada
	if timers.TotalTime <= 0 {
		room.GameState.Status = shared.Finished
		room.Mu.Unlock()

		notifier.BroadcastRoom(nc, roomID, shared.GameMessage{
			Type:    "GAME_OVER",
			EventID: eventID,
			RoomID:  roomID,
			Data:    mustMarshal(shared.GameOverData{Winner: nil}),
		})
		DeleteRoom(roomID)
		log.Printf("Sala %s encerrada por tempo total esgotado", roomID)
		return false
	}

	turnPassed := false
	if timers.TurnTime >= TurnLimitSeconds {
		passTurnLocked(room)
		timers = timersLocked(room)
		turnPassed = true
	}
	state := room.GameState
	room.Mu.Unlock()

	if turnPassed {
		log.Printf("Sala %s: turno passado à força para %s", roomID, state.CurrentPlayer)
		notifier.BroadcastRoom(nc, roomID, shared.GameMessage{
			Type:    "TURN_CHANGED",
			EventID: eventID,
			RoomID:  roomID,
			Data:    mustMarshal(shared.TurnChangedData{NextPlayer: state.CurrentPlayer}),
		})
		notifier.BroadcastRoom(nc, roomID, shared.GameMessage{
			Type:    "GAME_UPDATE",
			EventID: eventID,
			RoomID:  roomID,
			Data:    mustMarshal(state),
		})
	}

	notifier.BroadcastRoom(nc, roomID, shared.GameMessage{
		Type:    "TIMER_UPDATE",
		EventID: eventID,
		RoomID:  roomID,
		Data:    mustMarshal(timers),
	})
	return true
}

func mustMarshal(v interface{}) json.RawMessage {
	b, _ := json.Marshal(v)
	return json.RawMessage(b)
}
