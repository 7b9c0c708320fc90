// Package hostfn builds display summaries of Soroban invoke_host_function operations.
//
// A Record holds the host function calls of one operation. Only the first call is summarized:
// its type selects how the parameters are read.
//
//	upload_wasm      parameters are not shown
//	create_contract  parameters are shown as recorded, keyed by their property name
//	invoke_contract  parameters are decoded from XDR and keyed by their type tag
//	anything else    only the type is shown
package hostfn

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHostFunctions is returned for a record without any host function call.
var ErrNoHostFunctions = errors.New("record has no host functions")

// FunctionType is the kind of a host function call as recorded on the ledger.
type FunctionType string

const (
	FunctionTypeUploadWasm     FunctionType = "upload_wasm"
	FunctionTypeCreateContract FunctionType = "create_contract"
	FunctionTypeInvokeContract FunctionType = "invoke_contract"
)

func (t FunctionType) String() string {
	return string(t)
}

// Call is a single host function call with its ordered parameters.
type Call struct {
	Type       FunctionType `json:"type"`
	Parameters []Parameter  `json:"parameters,omitempty"`
}

// Record is an invoke_host_function operation record.
type Record struct {
	ID              string `json:"id,omitempty"`
	SourceAccount   string `json:"source_account,omitempty"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	Type            string `json:"type,omitempty"`
	HostFunctions   []Call `json:"host_functions"`
}

// First returns the call that is summarized for the record.
func (r Record) First() (Call, error) {
	if len(r.HostFunctions) == 0 {
		return Call{}, ErrNoHostFunctions
	}

	return r.HostFunctions[0], nil
}

// ReadRecords decodes either a single record object or an array of records.
func ReadRecords(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, errors.New("no records in input")
	}

	if strings.HasPrefix(trimmed, "[") {
		var records []Record
		if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}

		return records, nil
	}

	var record Record
	if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	return []Record{record}, nil
}
