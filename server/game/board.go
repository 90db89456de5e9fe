package game

import (
	"ludo/shared"
)

const (
	PathSize        = 52 //casas do caminho compartilhado
	HomePathSize    = 6  //casas da reta final de cada jogador
	TokensPerPlayer = 4
	MaxPlayers      = 2
)

//Casas imunes a captura: casas de saída e estrelas
var safeZones = []int{0, 8, 13, 21, 26, 34, 39, 47}

//Casa de entrada de cada assento no caminho compartilhado
var startingIndexes = []int{0, 13, 26, 39}

var colors = []string{"red", "blue", "green", "yellow"}

func GetStartingIndex(playerIndex int) int {
	return startingIndexes[playerIndex%4]
}

func GetColor(playerIndex int) string {
	return colors[playerIndex%4]
}

func IsSafeZone(pathIndex int) bool {
	for _, zone := range safeZones {
		if zone == pathIndex {
			return true
		}
	}
	return false
}

func InitBoard() shared.Board {
	homePaths := make([][]*int, 4)
	for i := range homePaths {
		homePaths[i] = make([]*int, HomePathSize)
	}
	return shared.Board{
		Path:      make([]*shared.PathCell, PathSize),
		HomePaths: homePaths,
		SafeZones: append([]int{}, safeZones...),
	}
}

func InitTokens() []shared.Token {
	tokens := make([]shared.Token, TokensPerPlayer)
	for i := range tokens {
		tokens[i] = shared.Token{Stage: shared.TokenBase, PathIndex: -1}
	}
	return tokens
}

//Reconstrói a ocupação do caminho compartilhado a partir das peças vivas
func updateBoardPath(players []*shared.Player) []*shared.PathCell {
	path := make([]*shared.PathCell, PathSize)
	for _, player := range players {
		for tIndex, token := range player.Tokens {
			if token.Stage == shared.TokenPath {
				path[token.PathIndex%PathSize] = &shared.PathCell{
					PlayerID:   player.ID,
					TokenIndex: tIndex,
				}
			}
		}
	}
	return path
}

//Reconstrói a reta final de um jogador: casa -> índice da peça que a ocupa
func updateHomePath(player *shared.Player) []*int {
	lane := make([]*int, HomePathSize)
	for tIndex, token := range player.Tokens {
		if token.Stage == shared.TokenHomePath {
			idx := tIndex
			lane[token.PathIndex] = &idx
		}
	}
	return lane
}
