package transaction

import (
	"encoding/json"

	"github.com/steemit/rc-engine-go/data/operation"
)

// Transaction is a signed transaction as served by the chain API: an ordered
// list of operations plus replay protection fields. The serialized byte length
// is measured externally and is not part of this structure
type Transaction struct {
	RefBlockNum    uint16                `json:"ref_block_num"`
	RefBlockPrefix uint32                `json:"ref_block_prefix"`
	Expiration     string                `json:"expiration"`
	Operations     []operation.Operation `json:"operations"`
	Extensions     []json.RawMessage     `json:"extensions"`
	Signatures     []string              `json:"signatures"`
}

// UnmarshalJSON decodes the transaction, resolving each tagged operation
// envelope into its concrete variant
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	type transactionAlias struct {
		RefBlockNum    uint16            `json:"ref_block_num"`
		RefBlockPrefix uint32            `json:"ref_block_prefix"`
		Expiration     string            `json:"expiration"`
		Operations     []json.RawMessage `json:"operations"`
		Extensions     []json.RawMessage `json:"extensions"`
		Signatures     []string          `json:"signatures"`
	}

	alias := &transactionAlias{}
	err := json.Unmarshal(data, alias)
	if err != nil {
		return err
	}

	tx.RefBlockNum = alias.RefBlockNum
	tx.RefBlockPrefix = alias.RefBlockPrefix
	tx.Expiration = alias.Expiration
	tx.Extensions = alias.Extensions
	tx.Signatures = alias.Signatures

	tx.Operations = make([]operation.Operation, 0, len(alias.Operations))
	for _, rawOperation := range alias.Operations {
		op, errDecode := operation.UnmarshalOperation(rawOperation)
		if errDecode != nil {
			return errDecode
		}

		tx.Operations = append(tx.Operations, op)
	}

	return nil
}
