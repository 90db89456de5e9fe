package main

import (
	"log"
	"net/http"
	"strconv"

	"ludo/server/handlers"
	"ludo/server/models"
	"ludo/server/pubSub"
	"ludo/server/utils"
)

func StartServer(idString, port, natsURL string) error {
	id, err := strconv.Atoi(idString)
	if err != nil || id <= 0 {
		id = utils.GerarIdAleatorio() % 1000
		log.Printf("SERVER_ID ausente, usando id gerado %d", id)
	}
	if port == "" {
		port = "8001"
	}

	server := models.NewServer(id, port)

	nc, err := pubSub.StartNats(server, natsURL)
	if err != nil {
		return err
	}
	defer nc.Close()

	//Varredura de clientes sem heartbeat
	handlers.StartHeartbeatMonitor(server, nc)

	http.HandleFunc("/ping", handlers.PingHandler(server.ID))

	log.Printf("[%d] - Servidor HTTP iniciado na porta %s, pronto para NATS", server.ID, server.Port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("Erro no servidor HTTP: %v", err)
	}

	return nil
}
