package utils

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

//Gerar um ID aleatório
func GerarIdAleatorio() int {
	var b [4]byte
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err)
	}
	id := int(binary.LittleEndian.Uint32(b[:]))
	return int(math.Abs(float64(id)))
}
