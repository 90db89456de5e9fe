package game

import (
	"crypto/rand"
	"math/big"
	"time"

	"ludo/shared"
)

type RollResult struct {
	Dice    int    `json:"dice"`
	EventID string `json:"eventId"`
}

type MoveResult struct {
	Success    bool   `json:"success"`
	Capture    bool   `json:"capture"`
	Retained   bool   `json:"retained"` //jogador manteve a vez (seis ou captura)
	NextPlayer string `json:"nextPlayer"`
	EventID    string `json:"eventId"`
}

//sorteio uniforme de 1 a 6
func rollDie() int {
	n, _ := rand.Int(rand.Reader, big.NewInt(6))
	return int(n.Int64()) + 1
}

//Rola o dado para o jogador da vez. Retorna nil se a sala não existe, a
//partida não começou, o eventId não bate ou não é a vez do jogador.
func RollDice(roomID, playerID, eventID string) *RollResult {
	room := GetRoom(roomID)
	if room == nil {
		return nil
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.GameState.Status != shared.InProgress ||
		room.GameState.CurrentPlayer != playerID ||
		room.EventID != eventID {
		return nil
	}

	dice := rollDie()
	room.GameState.Dice = &dice
	room.GameState.DiceCount++
	return &RollResult{Dice: dice, EventID: eventID}
}

//Resolve o movimento de uma peça. Movimentos ilegais retornam Success=false
//sem nenhuma mutação do estado da sala.
func MoveToken(roomID, playerID string, tokenIndex, steps int, eventID string, diceCount int, kill bool) MoveResult {
	result := MoveResult{EventID: eventID}

	room := GetRoom(roomID)
	if room == nil {
		return result
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if room.GameState.Status != shared.InProgress ||
		room.GameState.CurrentPlayer != playerID ||
		room.GameState.Dice == nil ||
		room.EventID != eventID {
		return result
	}

	playerIndex := -1
	for i, p := range room.Players {
		if p.ID == playerID {
			playerIndex = i
			break
		}
	}
	if playerIndex == -1 || tokenIndex < 0 || tokenIndex >= TokensPerPlayer {
		return result
	}
	//steps vem do cliente; fora de 1..6 não é um resultado de dado válido
	if steps < 1 || steps > 6 {
		return result
	}

	player := room.Players[playerIndex]
	token := &player.Tokens[tokenIndex]
	start := GetStartingIndex(playerIndex)

	newPathIndex := token.PathIndex
	newStage := token.Stage

	switch token.Stage {
	case shared.TokenBase:
		//só entra no tabuleiro com um seis, na casa de saída da sua cor
		if steps != 6 {
			return result
		}
		newStage = shared.TokenPath
		newPathIndex = start

	case shared.TokenPath:
		newPathIndex += steps
		if newPathIndex >= PathSize {
			overflow := newPathIndex - PathSize
			newPathIndex = start + overflow //deu a volta, rebaseia na saída
		}
		homeEntryIndex := (start + PathSize - 1) % PathSize
		if newPathIndex == homeEntryIndex && steps <= HomePathSize {
			newStage = shared.TokenHomePath
			newPathIndex = 0
		}

	case shared.TokenHomePath:
		newPathIndex += steps
		if newPathIndex > HomePathSize-1 {
			return result //não pode passar da última casa
		}
		if newPathIndex == HomePathSize-1 {
			newStage = shared.TokenHome
		}

	case shared.TokenHome:
		return result //peça que chegou não se move mais
	}

	//Captura: só em casa do caminho compartilhado que não seja segura
	capture := false
	if newStage == shared.TokenPath && !IsSafeZone(newPathIndex%PathSize) {
		for oppIndex, opponent := range room.Players {
			if oppIndex == playerIndex {
				continue
			}
			for i := range opponent.Tokens {
				oppToken := &opponent.Tokens[i]
				if oppToken.Stage == shared.TokenPath && oppToken.PathIndex%PathSize == newPathIndex%PathSize {
					oppToken.Stage = shared.TokenBase
					oppToken.PathIndex = -1
					capture = true
				}
			}
		}
	}

	token.Stage = newStage
	token.PathIndex = newPathIndex
	room.GameState.Board.Path = updateBoardPath(room.Players)
	room.GameState.Board.HomePaths[playerIndex] = updateHomePath(player)

	//Seis ou captura confirmada pelo cliente mantém a vez; senão ela passa
	if diceCount == 6 || (kill && capture) {
		room.GameState.Dice = nil
		result.Retained = true
	} else {
		room.GameState.Dice = nil
		room.GameState.DiceCount = 0
		passTurnLocked(room)
	}

	result.Success = true
	result.Capture = capture
	result.NextPlayer = room.GameState.CurrentPlayer
	return result
}

func PassTurn(roomID string) {
	room := GetRoom(roomID)
	if room == nil {
		return
	}
	room.Mu.Lock()
	passTurnLocked(room)
	room.Mu.Unlock()
}

func passTurnLocked(room *shared.GameRoom) {
	currentIndex := 0
	for i, p := range room.Players {
		if p.ID == room.GameState.CurrentPlayer {
			currentIndex = i
			break
		}
	}
	nextIndex := (currentIndex + 1) % len(room.Players)
	room.GameState.CurrentPlayer = room.Players[nextIndex].ID
	room.GameState.Dice = nil
	room.GameState.DiceCount = 0
	room.TurnStart = time.Now()
}

//Vence quem tiver as 4 peças em casa. Retorna "" enquanto ninguém venceu.
func CheckWinner(roomID string) string {
	room := GetRoom(roomID)
	if room == nil {
		return ""
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	for _, player := range room.Players {
		finished := 0
		for _, token := range player.Tokens {
			if token.Stage == shared.TokenHome {
				finished++
			}
		}
		if finished == TokensPerPlayer {
			return player.ID
		}
	}
	return ""
}
