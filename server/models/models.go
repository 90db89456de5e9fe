package models

import (
	"sync"
)

type Server struct {
	ID   int
	Port string
	Mu   sync.Mutex
}

type Message struct {
	From    int    `json:"from"`
	MsgType string `json:"msg_type"`
	Msg     string `json:"msg"`
}
