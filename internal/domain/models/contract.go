package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BytecodeObject represents bytecode information in a compilation artifact.
// Hardhat writes the bytecode as a plain hex string, Foundry as an object
// with the hex under "object"; both decode into this type.
type BytecodeObject struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap,omitempty"`
	LinkReferences map[string]any `json:"linkReferences,omitempty"`
}

// UnmarshalJSON accepts both the Hardhat string form and the Foundry object form
func (b *BytecodeObject) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		b.Object = hex
		return nil
	}

	type plain BytecodeObject
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("bytecode is neither a hex string nor an object: %w", err)
	}
	*b = BytecodeObject(obj)
	return nil
}

// IsEmpty reports whether there is no code to deploy (interfaces, abstract contracts)
func (b BytecodeObject) IsEmpty() bool {
	return b.Object == "" || b.Object == "0x"
}

// Bytes decodes the bytecode. Unlinked library placeholders are rejected.
func (b BytecodeObject) Bytes() ([]byte, error) {
	if strings.Contains(b.Object, "__") {
		return nil, fmt.Errorf("bytecode has unlinked library references")
	}
	hex := b.Object
	if !strings.HasPrefix(hex, "0x") {
		hex = "0x" + hex
	}
	return hexutil.Decode(hex)
}

// Artifact represents a Hardhat or Foundry compilation artifact
type Artifact struct {
	ContractName     string          `json:"contractName"` // Hardhat only
	SourceName       string          `json:"sourceName"`   // Hardhat only
	ABI              json.RawMessage `json:"abi"`
	Bytecode         BytecodeObject  `json:"bytecode"`
	DeployedBytecode BytecodeObject  `json:"deployedBytecode"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
}

// Contract represents a contract found in the artifact directory
type Contract struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"` // Source path, e.g. "contracts/ExceptionExample.sol"
	ArtifactPath string    `json:"artifactPath,omitempty"`
	Artifact     *Artifact `json:"artifact,omitempty"`
}

// FullName returns the "path:Name" form of the contract
func (c *Contract) FullName() string {
	if c.Path == "" {
		return c.Name
	}
	return fmt.Sprintf("%s:%s", c.Path, c.Name)
}
