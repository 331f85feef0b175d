package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// HashAuthKey хеширует auth key с использованием SHA256.
// Ключ уже защищен через Argon2id, SHA256 добавляет дополнительный слой:
// в хранилище попадает только хеш, не сам ключ.
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", fmt.Errorf("auth key cannot be empty")
	}

	hash := sha256.Sum256(authKey)
	return hex.EncodeToString(hash[:]), nil
}

// VerifyAuthKey проверяет, соответствует ли auth key сохраненному хешу
func VerifyAuthKey(authKey []byte, hashedAuthKey string) error {
	if len(authKey) == 0 {
		return fmt.Errorf("auth key cannot be empty")
	}
	if hashedAuthKey == "" {
		return fmt.Errorf("hashed auth key cannot be empty")
	}

	computedHash, err := HashAuthKey(authKey)
	if err != nil {
		return fmt.Errorf("failed to compute auth key hash: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(computedHash), []byte(hashedAuthKey)) != 1 {
		return fmt.Errorf("invalid auth key")
	}

	return nil
}
