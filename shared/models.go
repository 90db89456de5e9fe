package shared

import "encoding/json"

type Request struct {
	ClientID string          `json:"client_id"`
	Action   string          `json:"action"`
	Payload  json.RawMessage `json:"payload"`
}

type Response struct {
	Status string          `json:"status"`
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
	Server int             `json:"server"`
}

// GameMessage é o envelope de tudo que o servidor publica para salas e inboxes
type GameMessage struct {
	Type    string          `json:"type"`
	EventID string          `json:"eventId,omitempty"`
	RoomID  string          `json:"roomId,omitempty"`
	From    string          `json:"from,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ---- Payloads das ações que chegam dos clientes ----

type InitGamePayload struct {
	RoomID    string `json:"roomId"`
	EventID   string `json:"eventId"`
	PlayerID  string `json:"playerId"`
	TotalTime int    `json:"totalTime"` //duração total da partida em segundos
}

type JoinRoomPayload struct {
	RoomID   string `json:"roomId"`
	EventID  string `json:"eventId"`
	PlayerID string `json:"playerId"`
}

type RollDicePayload struct {
	RoomID  string `json:"roomId"`
	EventID string `json:"eventId"`
}

type MoveTokenPayload struct {
	RoomID     string `json:"roomId"`
	EventID    string `json:"eventId"`
	TokenIndex int    `json:"tokenIndex"`
	Steps      int    `json:"steps"`
	DiceCount  int    `json:"diceCount"`
	Kill       bool   `json:"kill"`
}

type ChatPayload struct {
	RoomID  string `json:"roomId"`
	EventID string `json:"eventId"`
	Message string `json:"message"`
}

// ---- Dados que acompanham as notificações ----

type DiceRolledData struct {
	PlayerID string `json:"playerId"`
	Dice     int    `json:"dice"`
}

type GameStartedData struct {
	GameState *GameState   `json:"gameState"`
	Players   []PlayerInfo `json:"players"`
}

type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TurnChangedData struct {
	NextPlayer string `json:"nextPlayer"`
}

type GameOverData struct {
	Winner *string `json:"winner"` //nil quando o tempo acabou sem vencedor
}

type TimerData struct {
	TotalTime     int    `json:"totalTime"` //tempo total restante
	TurnTime      int    `json:"turnTime"`  //segundos desde o início do turno
	CurrentPlayer string `json:"currentPlayer"`
}

type ChatData struct {
	PlayerID string `json:"playerId"`
	Message  string `json:"message"`
}
