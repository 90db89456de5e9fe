package models

type ServerInfo struct {
	ID   int
	Name string
	NATS string
}

//Estado local da sessão do jogador
type Session struct {
	ClientID string
	RoomID   string
	EventID  string
	MyTurn   bool
	LastDice int
}
