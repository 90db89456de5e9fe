package main

import (
	"encoding/json"
	"fmt"
	"log"
	"ludo/shared"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// --- Variáveis de Configuração do Teste ---

const (
	// NATS do server 1
	testNatsURL = "nats://localhost:4223"
	// tópico do server 1
	testServerTopic = "server.1.requests"
	// Timeout padrão para respostas
	testTimeout = 15 * time.Second
)

// --- Helper: O Cliente Falso ---

// cliente falso
type TestClient struct {
	t        *testing.T
	nc       *nats.Conn
	clientID string
	inbox    chan *nats.Msg // inbox privado do cliente (ERROR etc)
	roomChan chan *nats.Msg // eventos da sala em que o cliente está
	sub      *nats.Subscription
	roomSub  *nats.Subscription
}

// cria e conecta um novo cliente falso.
func newTestClient(t *testing.T) *TestClient {
	nc, err := nats.Connect(testNatsURL)
	if err != nil {
		t.Errorf("Falha ao conectar ao NATS em %s: %v. O servidor NATS está rodando?", testNatsURL, err)
		return nil
	}

	clientID := "testplayer-" + uuid.New().String()[:8]
	inboxChan := make(chan *nats.Msg, 10)
	clientTopic := fmt.Sprintf("client.%s.inbox", clientID)

	sub, err := nc.Subscribe(clientTopic, func(msg *nats.Msg) {
		inboxChan <- msg
	})
	if err != nil {
		t.Errorf("Falha ao se inscrever no tópico de inbox %s: %v", clientTopic, err)
		nc.Close()
		return nil
	}

	return &TestClient{
		t:        t,
		nc:       nc,
		clientID: clientID,
		inbox:    inboxChan,
		sub:      sub,
	}
}

// entra no tópico de eventos da sala.
func (c *TestClient) listenRoom(roomID string) {
	c.roomChan = make(chan *nats.Msg, 32)
	sub, err := c.nc.Subscribe(fmt.Sprintf("room.%s.events", roomID), func(msg *nats.Msg) {
		c.roomChan <- msg
	})
	if err != nil {
		c.t.Errorf("[%s] Falha ao se inscrever na sala %s: %v", c.clientID, roomID, err)
		return
	}
	c.roomSub = sub
}

func (c *TestClient) disconnect() {
	req := shared.Request{
		ClientID: c.clientID,
		Action:   "DISCONNECT",
	}
	reqData, _ := json.Marshal(req)

	_, err := c.nc.Request(testServerTopic, reqData, 2*time.Second)
	if err != nil {
		c.t.Logf("[%s] Aviso: Erro na requisição de DISCONNECT durante o Close(): %v", c.clientID, err)
	}
}

// desconecta o cliente.
func (c *TestClient) Close() {
	c.disconnect()
	if c.roomSub != nil {
		c.roomSub.Unsubscribe()
	}
	if c.sub != nil {
		c.sub.Unsubscribe()
	}
	if c.nc != nil {
		c.nc.Close()
	}
}

// espera por um evento de um tipo específico na sala, ignorando os demais
// (TIMER_UPDATE chega o tempo todo).
func (c *TestClient) waitForRoomEvent(eventType string, timeout time.Duration) (*shared.GameMessage, error) {
	deadline := time.After(timeout)
	for {
		select {
		case msg, ok := <-c.roomChan:
			if !ok {
				return nil, fmt.Errorf("canal da sala fechado")
			}
			var gameMsg shared.GameMessage
			if err := json.Unmarshal(msg.Data, &gameMsg); err == nil && gameMsg.Type == eventType {
				return &gameMsg, nil
			}
		case <-deadline:
			return nil, fmt.Errorf("timeout esperando evento %s na sala", eventType)
		}
	}
}

// --- Ações do Cliente Falso ---

// envia uma requisição e decodifica a resposta.
func (c *TestClient) request(action string, payload interface{}) *shared.Response {
	var raw json.RawMessage
	if payload != nil {
		raw, _ = json.Marshal(payload)
	}
	req := shared.Request{
		ClientID: c.clientID,
		Action:   action,
		Payload:  raw,
	}
	reqData, _ := json.Marshal(req)

	msg, err := c.nc.Request(testServerTopic, reqData, testTimeout)
	if err != nil {
		c.t.Errorf("[%s] Erro na requisição %s: %v", c.clientID, action, err)
		return nil
	}

	var resp shared.Response
	json.Unmarshal(msg.Data, &resp)
	return &resp
}

// simula a criação de uma sala.
func (c *TestClient) initGame(roomID, eventID string) bool {
	resp := c.request("INIT_GAME", shared.InitGamePayload{
		RoomID:    roomID,
		EventID:   eventID,
		PlayerID:  c.clientID,
		TotalTime: 600,
	})
	if resp == nil || resp.Status != "success" {
		c.t.Errorf("[%s] Falha no INIT_GAME", c.clientID)
		return false
	}
	return true
}

// simula a entrada na sala.
func (c *TestClient) joinRoom(roomID, eventID string) bool {
	resp := c.request("JOIN_ROOM", shared.JoinRoomPayload{
		RoomID:   roomID,
		EventID:  eventID,
		PlayerID: c.clientID,
	})
	if resp == nil || resp.Status != "success" {
		c.t.Errorf("[%s] Falha no JOIN_ROOM", c.clientID)
		return false
	}
	return true
}

// simula a rolagem do dado. Retorna o valor rolado, ou 0 em falha.
func (c *TestClient) rollDice(roomID, eventID string) int {
	resp := c.request("ROLL_DICE", shared.RollDicePayload{RoomID: roomID, EventID: eventID})
	if resp == nil || resp.Status != "success" {
		c.t.Errorf("[%s] Falha no ROLL_DICE", c.clientID)
		return 0
	}
	var result struct {
		Dice int `json:"dice"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		c.t.Errorf("[%s] Falha ao decodificar o dado: %v", c.clientID, err)
		return 0
	}
	return result.Dice
}

// --- OS TESTES ---

// testa o fluxo de criar sala, entrar e começar a partida (2 CLIENTES)
func TestIntegration_CreateAndStartGame(t *testing.T) {
	if testing.Short() {
		t.Skip("Pulando teste de integração (requer servidor rodando)")
	}

	clientA := newTestClient(t)
	if clientA == nil {
		t.Fatal("Falha ao criar cliente A")
	}
	defer clientA.Close()

	clientB := newTestClient(t)
	if clientB == nil {
		t.Fatal("Falha ao criar cliente B")
	}
	defer clientB.Close()

	roomID := "testroom-" + uuid.New().String()[:8]
	eventID := uuid.New().String()[:8]

	clientA.listenRoom(roomID)
	clientB.listenRoom(roomID)

	if !clientA.initGame(roomID, eventID) {
		t.Fatal("INIT_GAME falhou")
	}
	if !clientB.joinRoom(roomID, eventID) {
		t.Fatal("JOIN_ROOM falhou")
	}

	started, err := clientA.waitForRoomEvent("GAME_STARTED", testTimeout)
	if err != nil {
		t.Fatalf("Cliente A não viu GAME_STARTED: %v", err)
	}

	var data shared.GameStartedData
	if err := json.Unmarshal(started.Data, &data); err != nil {
		t.Fatalf("Falha ao decodificar GAME_STARTED: %v", err)
	}
	if len(data.Players) != 2 {
		t.Errorf("Esperava 2 jogadores na partida, obteve %d", len(data.Players))
	}
	if data.GameState == nil || data.GameState.CurrentPlayer != clientA.clientID {
		t.Errorf("O criador da sala deveria começar jogando")
	}

	// sala em andamento publica o relógio a cada segundo
	if _, err := clientB.waitForRoomEvent("TIMER_UPDATE", testTimeout); err != nil {
		t.Errorf("Cliente B não viu TIMER_UPDATE: %v", err)
	}

	t.Logf("Sucesso! Partida %s iniciada para A e B.", roomID)
}

// testa o fluxo de rolar o dado depois da partida começar
func TestIntegration_RollDice(t *testing.T) {
	if testing.Short() {
		t.Skip("Pulando teste de integração (requer servidor rodando)")
	}

	clientA := newTestClient(t)
	if clientA == nil {
		t.Fatal("Falha ao criar cliente A")
	}
	defer clientA.Close()

	clientB := newTestClient(t)
	if clientB == nil {
		t.Fatal("Falha ao criar cliente B")
	}
	defer clientB.Close()

	roomID := "testroom-" + uuid.New().String()[:8]
	eventID := uuid.New().String()[:8]

	clientA.listenRoom(roomID)
	clientB.listenRoom(roomID)

	if !clientA.initGame(roomID, eventID) {
		t.Fatal("INIT_GAME falhou")
	}
	if !clientB.joinRoom(roomID, eventID) {
		t.Fatal("JOIN_ROOM falhou")
	}
	if _, err := clientA.waitForRoomEvent("GAME_STARTED", testTimeout); err != nil {
		t.Fatalf("Partida não começou: %v", err)
	}

	dice := clientA.rollDice(roomID, eventID)
	if dice < 1 || dice > 6 {
		t.Fatalf("Dado fora do intervalo: %d", dice)
	}

	rolled, err := clientB.waitForRoomEvent("DICE_ROLLED", testTimeout)
	if err != nil {
		t.Fatalf("Cliente B não viu DICE_ROLLED: %v", err)
	}
	var rolledData shared.DiceRolledData
	json.Unmarshal(rolled.Data, &rolledData)
	if rolledData.PlayerID != clientA.clientID || rolledData.Dice != dice {
		t.Errorf("DICE_ROLLED não bate: %+v (esperava %d de %s)", rolledData, dice, clientA.clientID)
	}
}

// payload indecifrável ainda recebe resposta de erro, nunca silêncio
func TestIntegration_MalformedPayload(t *testing.T) {
	if testing.Short() {
		t.Skip("Pulando teste de integração (requer servidor rodando)")
	}

	client := newTestClient(t)
	if client == nil {
		t.Fatal("Falha ao criar cliente")
	}
	defer client.Close()

	req := shared.Request{
		ClientID: client.clientID,
		Action:   "CHAT_MESSAGE",
		Payload:  json.RawMessage(`"isto não é um objeto"`),
	}
	reqData, _ := json.Marshal(req)

	msg, err := client.nc.Request(testServerTopic, reqData, 5*time.Second)
	if err != nil {
		t.Fatalf("Servidor não respondeu ao payload malformado: %v", err)
	}

	var resp shared.Response
	json.Unmarshal(msg.Data, &resp)
	if resp.Status != "error" {
		t.Errorf("Esperava resposta de erro, obteve status %q", resp.Status)
	}
}

// simula N pares de clientes criando salas ao mesmo tempo
func TestIntegration_StressRooms(t *testing.T) {
	if testing.Short() {
		t.Skip("Pulando teste de integração (requer servidor rodando)")
	}
	t.Parallel() // Permite rodar em paralelo com outros testes

	const PAIR_COUNT = 25 // 25 salas simultâneas
	log.Printf("[STRESS_ROOMS] Iniciando teste com %d salas...", PAIR_COUNT)

	var wg sync.WaitGroup
	var successCounter int32

	wg.Add(PAIR_COUNT)

	for i := 0; i < PAIR_COUNT; i++ {
		go func(i int) {
			defer wg.Done()

			clientA := newTestClient(t)
			if clientA == nil {
				return
			}
			defer clientA.Close()

			clientB := newTestClient(t)
			if clientB == nil {
				return
			}
			defer clientB.Close()

			roomID := fmt.Sprintf("stressroom-%d-%s", i, uuid.New().String()[:8])
			eventID := uuid.New().String()[:8]

			clientA.listenRoom(roomID)

			if !clientA.initGame(roomID, eventID) {
				return
			}
			if !clientB.joinRoom(roomID, eventID) {
				return
			}
			if _, err := clientA.waitForRoomEvent("GAME_STARTED", 30*time.Second); err != nil {
				clientA.t.Errorf("[%s] %v", clientA.clientID, err)
				return
			}

			atomic.AddInt32(&successCounter, 1)
		}(i)
	}

	wg.Wait()

	// Verificação Final
	finalSuccesses := atomic.LoadInt32(&successCounter)
	log.Printf("[STRESS_ROOMS] Teste concluído: %d/%d salas iniciaram com sucesso.", finalSuccesses, PAIR_COUNT)

	if finalSuccesses != PAIR_COUNT {
		t.Fatalf("Teste de stress falhou! Esperado %d salas, mas obteve %d", PAIR_COUNT, finalSuccesses)
	}
}
