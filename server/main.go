package main

import (
	"log"
	"os"
)

func main() {
	idString := os.Getenv("SERVER_ID")
	port := os.Getenv("PORT")
	natsURL := os.Getenv("NATS_URL")

	if err := StartServer(idString, port, natsURL); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
