package activationkey

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"registration/internal/core/domain/activation"
	"registration/internal/core/domain/user"
)

const saltSize = 20

// Generator derives a key as the hex SHA-1 digest of a random salt followed by the username.
type Generator struct {
	random io.Reader
}

func NewGenerator() *Generator {
	return &Generator{random: rand.Reader}
}

func (g *Generator) GenerateKey(u user.User) (activation.Key, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(g.random, salt); err != nil {
		return activation.Key(""), fmt.Errorf("could not read random salt: %w", err)
	}
	hash := sha1.New()
	hash.Write(salt)
	io.WriteString(hash, string(u.Username))
	return activation.Key(hex.EncodeToString(hash.Sum(nil))), nil
}
