package utils

import (
	"bufio"
	"os"
	"strings"
)

var reader = bufio.NewReader(os.Stdin)

//Lê uma linha do terminal sem quebrar com \r do Windows
func ReadLineSafe() string {
	line, _ := reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	return strings.TrimSpace(line)
}
