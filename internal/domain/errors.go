package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrEmptyBytecode is returned when an artifact carries no creation bytecode
	// (interfaces and abstract contracts)
	ErrEmptyBytecode = errors.New("artifact has no creation bytecode")

	// ErrMissingEndpoint is returned when no RPC endpoint could be resolved
	ErrMissingEndpoint = errors.New("no RPC endpoint configured")

	// ErrMissingSigner is returned when no signer credential is configured
	ErrMissingSigner = errors.New("no signer configured")

	// ErrChainIDMismatch is returned when the endpoint serves a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrDeploymentReverted is returned when the creation transaction was mined but failed
	ErrDeploymentReverted = errors.New("deployment transaction reverted")

	// ErrNotConfirmed is returned when an address is requested before confirmation
	ErrNotConfirmed = errors.New("deployment not confirmed")

	// ErrDeploymentDeclined is returned when the operator rejects the confirmation prompt
	ErrDeploymentDeclined = errors.New("deployment declined")
)

// Stage identifies the pipeline step a deployment failed in.
type Stage string

const (
	StageBlueprintResolution Stage = "blueprint resolution"
	StageSubmission          Stage = "submission"
	StageConfirmation        Stage = "confirmation"
	StageAddressRetrieval    Stage = "address retrieval"
)

// DeployError is the terminal error of a deployment run. Err is the provider
// error exactly as it was returned.
type DeployError struct {
	Stage    Stage
	Contract string
	Err      error
}

func (e *DeployError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.Contract, e.Err)
}

func (e *DeployError) Unwrap() error {
	return e.Err
}

// NewDeployError wraps err with the stage it occurred in.
func NewDeployError(stage Stage, contract string, err error) *DeployError {
	return &DeployError{Stage: stage, Contract: contract, Err: err}
}

// StageOf returns the stage of the first DeployError in err's chain.
func StageOf(err error) (Stage, bool) {
	var deployErr *DeployError
	if errors.As(err, &deployErr) {
		return deployErr.Stage, true
	}
	return "", false
}

type NoArtifactMatchErr struct {
	Name        string
	Dir         string
	Suggestions []string
}

func (e NoArtifactMatchErr) Error() string {
	msg := fmt.Sprintf("no artifact found for contract %q in %s", e.Name, e.Dir)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

type AmbiguousArtifactErr struct {
	Name    string
	Matches []string
}

func (e AmbiguousArtifactErr) Error() string {
	// Sort artifact paths for consistent output
	sorted := make([]string, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Strings(sorted)

	var suggestions []string
	for _, path := range sorted {
		suggestions = append(suggestions, fmt.Sprintf("  - %s", path))
	}

	return fmt.Sprintf("multiple artifacts found for %q - use path:contract format to disambiguate:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}
