package blockchain

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/oneshot/internal/domain"
)

// ParsePrivateKey parses a hex private key with or without 0x prefix
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimSpace(hexKey)
	if hexKey == "" {
		return nil, domain.ErrMissingSigner
	}
	hexKey = strings.TrimPrefix(strings.TrimPrefix(hexKey, "0x"), "0X")

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		// never echo the key itself
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// SignerAddress returns the account controlled by key
func SignerAddress(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}
