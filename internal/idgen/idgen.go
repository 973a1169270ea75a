package idgen

import "math/rand/v2"

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID возвращает короткий псевдослучайный идентификатор из семи символов
// base-36. Коллизии не проверяются: для однопользовательской витрины этого
// достаточно, для многопользовательской понадобился бы UUID.
func NewID() string {
	b := make([]byte, 7)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
