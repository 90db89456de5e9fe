package shared

import (
	"sync"
	"time"
)

//Estado da partida
type GameStatus string

const (
	WaitingPlayers GameStatus = "WAITING"
	InProgress     GameStatus = "IN_PROGRESS"
	Finished       GameStatus = "FINISHED"
)

//Estágio de vida de uma peça no tabuleiro
type TokenStage string

const (
	TokenBase     TokenStage = "base"     //ainda não entrou no tabuleiro
	TokenPath     TokenStage = "path"     //no caminho compartilhado de 52 casas
	TokenHomePath TokenStage = "homePath" //na reta final privada de 6 casas
	TokenHome     TokenStage = "home"     //chegou, não se move mais
)

type Token struct {
	Stage     TokenStage `json:"position"`
	PathIndex int        `json:"pathIndex"` //-1 na base; 0-51 no caminho; 0-5 na reta final
}

type Player struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Tokens []Token `json:"tokens"`
}

//Peça parada numa casa do caminho compartilhado
type PathCell struct {
	PlayerID   string `json:"playerId"`
	TokenIndex int    `json:"tokenIndex"`
}

type Board struct {
	Path      []*PathCell `json:"path"`      //52 casas, nil = vazia
	HomePaths [][]*int    `json:"homePaths"` //4 retas finais de 6 casas, valor = índice da peça
	SafeZones []int       `json:"safeZones"`
}

type GameState struct {
	Status        GameStatus `json:"status"`
	CurrentPlayer string     `json:"currentPlayer"`
	Dice          *int       `json:"dice"` //nil quando ainda não rolou ou já consumiu
	DiceCount     int        `json:"diceCount"`
	Board         Board      `json:"board"`
}

type GameRoom struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Players   []*Player `json:"players"`
	GameState GameState `json:"gameState"`
	Start     time.Time `json:"start"`
	TurnStart time.Time `json:"turnStart"`
	TotalTime int       `json:"totalTime"` //segundos

	// Mu serializa toda mutação da sala: handlers e timer competem por ele
	Mu sync.Mutex `json:"-"`
	// TimerStop fica junto da sala para o teardown ser atômico com a deleção
	TimerStop chan struct{} `json:"-"`
}
