package game

import (
	"fmt"
	"sync"
	"time"

	"ludo/shared"
)

var (
	GameRooms   = make(map[string]*shared.GameRoom)
	GameRoomsMu sync.RWMutex
)

//Cria a sala com o primeiro jogador sentado. Chamar de novo com o mesmo id
//sobrescreve a sala anterior (e derruba o timer dela, se houver).
func InitializeRoom(roomID, eventID, playerID string, totalTime int) string {
	room := &shared.GameRoom{
		ID:      roomID,
		EventID: eventID,
		Players: []*shared.Player{
			{
				ID:     playerID,
				Name:   fmt.Sprintf("Player1_%s", playerID),
				Color:  GetColor(0),
				Tokens: InitTokens(),
			},
		},
		GameState: shared.GameState{
			Status: shared.WaitingPlayers,
			Board:  InitBoard(),
		},
		Start:     time.Now(),
		TurnStart: time.Now(),
		TotalTime: totalTime,
	}

	GameRoomsMu.Lock()
	old := GameRooms[roomID]
	GameRooms[roomID] = room
	GameRoomsMu.Unlock()

	if old != nil {
		old.Mu.Lock()
		stopRoomTimerLocked(old)
		old.Mu.Unlock()
	}
	return roomID
}

//Segundo jogador entra na sala. Retorna false sem mutação se a sala não
//existe, o eventId não bate, a sala está cheia ou o jogador já está nela.
func JoinRoom(roomID string, player *shared.Player, eventID string) bool {
	room := GetRoom(roomID)
	if room == nil {
		return false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.EventID != eventID || len(room.Players) >= MaxPlayers || room.Players[0].ID == player.ID {
		return false
	}

	player.Color = GetColor(len(room.Players))
	player.Tokens = InitTokens()
	room.Players = append(room.Players, player)
	return true
}

func StartGame(roomID string) {
	room := GetRoom(roomID)
	if room == nil {
		return
	}

	room.Mu.Lock()
	room.GameState.Status = shared.InProgress
	room.GameState.CurrentPlayer = room.Players[0].ID
	room.TurnStart = time.Now()
	room.Mu.Unlock()
}

func GetRoom(roomID string) *shared.GameRoom {
	GameRoomsMu.RLock()
	defer GameRoomsMu.RUnlock()
	return GameRooms[roomID]
}

//Snapshot do estado para serializar fora do lock. As fatias do tabuleiro são
//copiadas: a sala continua mutando as dela enquanto o chamador marshala.
func GetGameState(roomID string) *shared.GameState {
	room := GetRoom(roomID)
	if room == nil {
		return nil
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	state := room.GameState
	state.Board.Path = append([]*shared.PathCell{}, room.GameState.Board.Path...)
	state.Board.SafeZones = append([]int{}, room.GameState.Board.SafeZones...)
	state.Board.HomePaths = make([][]*int, len(room.GameState.Board.HomePaths))
	for i, lane := range room.GameState.Board.HomePaths {
		state.Board.HomePaths[i] = append([]*int{}, lane...)
	}
	return &state
}

//Tempos correntes da sala, em segundos inteiros
func GetTimers(roomID string) shared.TimerData {
	room := GetRoom(roomID)
	if room == nil {
		return shared.TimerData{}
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	return timersLocked(room)
}

func timersLocked(room *shared.GameRoom) shared.TimerData {
	elapsed := int(time.Since(room.Start).Seconds())
	remaining := room.TotalTime - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return shared.TimerData{
		TotalTime:     remaining,
		TurnTime:      int(time.Since(room.TurnStart).Seconds()),
		CurrentPlayer: room.GameState.CurrentPlayer,
	}
}

//Remove o jogador de todas as salas em que estiver. Sala vazia é deletada;
//se o jogador removido estava na vez, a vez passa para quem sobrou.
//Retorna os ids das salas afetadas para o chamador notificar quem ficou.
func RemovePlayer(playerID string) []string {
	GameRoomsMu.RLock()
	roomIDs := make([]string, 0, len(GameRooms))
	for id := range GameRooms {
		roomIDs = append(roomIDs, id)
	}
	GameRoomsMu.RUnlock()

	affected := []string{}
	for _, roomID := range roomIDs {
		room := GetRoom(roomID)
		if room == nil {
			continue
		}

		room.Mu.Lock()
		playerIndex := -1
		for i, p := range room.Players {
			if p.ID == playerID {
				playerIndex = i
				break
			}
		}
		if playerIndex == -1 {
			room.Mu.Unlock()
			continue
		}

		room.Players = append(room.Players[:playerIndex], room.Players[playerIndex+1:]...)
		affected = append(affected, roomID)

		if len(room.Players) == 0 {
			room.Mu.Unlock()
			DeleteRoom(roomID)
			continue
		}
		if room.GameState.CurrentPlayer == playerID {
			passTurnLocked(room)
		}
		room.Mu.Unlock()
	}
	return affected
}

//Deleta a sala incondicionalmente, parando o timer antes de liberar o id
func DeleteRoom(roomID string) {
	GameRoomsMu.Lock()
	room := GameRooms[roomID]
	delete(GameRooms, roomID)
	GameRoomsMu.Unlock()

	if room != nil {
		room.Mu.Lock()
		stopRoomTimerLocked(room)
		room.Mu.Unlock()
	}
}
