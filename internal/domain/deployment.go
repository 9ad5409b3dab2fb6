package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// DeployResult is the outcome of a successful deployment run
type DeployResult struct {
	Contract string
	Address  common.Address
	TxHash   common.Hash
	Network  string
	ChainID  uint64
}
