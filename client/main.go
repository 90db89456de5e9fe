package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"ludo/client/game"
	"ludo/client/models"
	"ludo/client/utils"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

func main() {
	//Lista de servidores disponíveis
	servers := []models.ServerInfo{
		{ID: 1, Name: "Servidor 1", NATS: "nats://localhost:4223"},
		{ID: 2, Name: "Servidor 2", NATS: "nats://localhost:4224"},
		{ID: 3, Name: "Servidor 3", NATS: "nats://localhost:4225"},
	}

	//Escolha do servidor
	chooseString := utils.EscolherServidor(len(servers))
	chooseInt, err := strconv.Atoi(chooseString)
	if err != nil || chooseInt < 1 || chooseInt > len(servers) {
		fmt.Println("Escolha inválida.")
		return
	}
	chosenServer := servers[chooseInt-1]
	fmt.Printf("\nVocê escolheu: %s (ID=%d)\n", chosenServer.Name, chosenServer.ID)

	//Conexão NATS
	nc, err := nats.Connect(chosenServer.NATS)
	if err != nil {
		log.Fatalf("Erro ao conectar no NATS do servidor escolhido: %v", err)
	}
	defer nc.Close()
	fmt.Println("Conectado ao NATS do servidor escolhido:", chosenServer.NATS)

	//ID do cliente para NATS
	clientID := "player-" + uuid.New().String()[:8]
	fmt.Printf("\nSeu ID desta sessão é: %s\n", clientID)

	game.StartHeartbeat(nc, chosenServer, clientID)

	//Captura Ctrl+C para desconectar
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		game.Disconnect(nc, chosenServer, clientID)
		os.Exit(0)
	}()

	handleMainMenu(nc, chosenServer, clientID)
}

//Menu inicial
func handleMainMenu(nc *nats.Conn, server models.ServerInfo, clientID string) {
	for {
		option := utils.MenuInicial()
		switch option {
		case "1": //Criar sala
			session := &models.Session{
				ClientID: clientID,
				RoomID:   utils.PerguntarSala(),
				EventID:  uuid.New().String()[:8],
			}
			game.StartRoomListener(nc, session)
			if game.InitGame(nc, server, session, perguntarTempo()) {
				fmt.Printf("Compartilhe com o oponente: sala %s, evento %s\n", session.RoomID, session.EventID)
				startGameLoop(nc, server, session)
			}
		case "2": //Entrar em sala existente
			session := &models.Session{
				ClientID: clientID,
				RoomID:   utils.PerguntarSala(),
				EventID:  utils.PerguntarEvento(),
			}
			game.StartRoomListener(nc, session)
			if game.JoinRoom(nc, server, session) {
				startGameLoop(nc, server, session)
			}
		case "3": //Sair
			game.Disconnect(nc, server, clientID)
			fmt.Println("Até mais!")
			return
		default:
			fmt.Println("Opção inválida, tente novamente.")
		}
	}
}

func perguntarTempo() int {
	totalTime, err := strconv.Atoi(utils.PerguntarTempoTotal())
	if err != nil || totalTime <= 0 {
		fmt.Println("Tempo inválido, usando 600 segundos.")
		return 600
	}
	return totalTime
}

//Loop do jogador dentro da sala
func startGameLoop(nc *nats.Conn, server models.ServerInfo, session *models.Session) {
	for {
		option := utils.MenuSala()
		switch option {
		case "1": //Rolar dado
			game.RollDice(nc, server, session)
		case "2": //Mover peça
			tokenIndex, err1 := strconv.Atoi(utils.PerguntarPeca())
			steps, err2 := strconv.Atoi(utils.PerguntarPassos())
			if err1 != nil || err2 != nil {
				fmt.Println("Entrada inválida.")
				continue
			}
			game.MoveToken(nc, server, session, tokenIndex, steps)
		case "3": //Chat
			game.SendChat(nc, server, session, utils.PerguntarMensagem())
		case "4": //Sair da sala
			game.Disconnect(nc, server, session.ClientID)
			return
		default:
			fmt.Println("Opção inválida, tente novamente.")
		}
	}
}
