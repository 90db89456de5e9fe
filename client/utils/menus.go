package utils

import (
	"fmt"
)

func EscolherServidor(count int) string {
	fmt.Println("------------------------------")
	fmt.Println("       Escolher servidor      ")
	fmt.Println("------------------------------")
	for i := 1; i <= count; i++ {
		fmt.Printf("%d - Servidor %d\n", i, i)
	}
	fmt.Print("Insira o servidor que deseja: ")
	return ReadLineSafe()
}

func MenuInicial() string {
	fmt.Println("\n----------------------------------")
	fmt.Println("           MENU INICIAL           ")
	fmt.Println("----------------------------------")
	fmt.Println("1 - Criar sala")
	fmt.Println("2 - Entrar em sala")
	fmt.Println("3 - Sair")
	fmt.Print("Insira a opção desejada: ")
	return ReadLineSafe()
}

func MenuSala() string {
	fmt.Println("\n----------------------------------")
	fmt.Println("              Partida             ")
	fmt.Println("----------------------------------")
	fmt.Println("1 - Rolar dado")
	fmt.Println("2 - Mover peça")
	fmt.Println("3 - Enviar mensagem")
	fmt.Println("4 - Sair da sala")
	fmt.Print("Insira a opção desejada: ")
	return ReadLineSafe()
}

func PerguntarSala() string {
	fmt.Print("Id da sala: ")
	return ReadLineSafe()
}

func PerguntarEvento() string {
	fmt.Print("Id do evento da sala: ")
	return ReadLineSafe()
}

func PerguntarTempoTotal() string {
	fmt.Print("Duração total da partida em segundos: ")
	return ReadLineSafe()
}

func PerguntarPeca() string {
	fmt.Print("Peça a mover (0 a 3): ")
	return ReadLineSafe()
}

func PerguntarPassos() string {
	fmt.Print("Quantas casas andar: ")
	return ReadLineSafe()
}

func PerguntarMensagem() string {
	fmt.Print("Mensagem: ")
	return ReadLineSafe()
}
