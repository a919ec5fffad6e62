package resourcecost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
)

// ResourceType indexes one of the five priced resources
type ResourceType int

// The canonical resource order. It is consensus relevant: cost maps and block
// dynamics are always emitted in this order
const (
	ResourceHistoryBytes ResourceType = iota
	ResourceNewAccounts
	ResourceMarketBytes
	ResourceStateBytes
	ResourceExecutionTime

	// NumResourceTypes is the number of priced resources
	NumResourceTypes
)

var resourceNames = [NumResourceTypes]string{
	"resource_history_bytes",
	"resource_new_accounts",
	"resource_market_bytes",
	"resource_state_bytes",
	"resource_execution_time",
}

// String returns the resource's wire name
func (rt ResourceType) String() string {
	if rt < 0 || rt >= NumResourceTypes {
		return fmt.Sprintf("resource_unknown_%d", int(rt))
	}

	return resourceNames[rt]
}

// ResourceTypeByName resolves a wire name to its resource type
func ResourceTypeByName(name string) (ResourceType, error) {
	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		if resourceNames[rt] == name {
			return rt, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownResourceName, name)
}

// UsageVector holds the per-resource usage counters of one transaction,
// indexed by ResourceType
type UsageVector [NumResourceTypes]int64

// MarshalJSON emits the counters as a name-keyed object in canonical resource order
func (uv UsageVector) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString("{")
	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		if rt > 0 {
			buffer.WriteString(",")
		}
		buffer.WriteString(fmt.Sprintf("%q:%d", resourceNames[rt], uv[rt]))
	}
	buffer.WriteString("}")

	return buffer.Bytes(), nil
}

// CostVector holds the per-resource credit costs of one transaction,
// indexed by ResourceType
type CostVector [NumResourceTypes]*big.Int

// Total returns the summed cost across all resources
func (cv *CostVector) Total() *big.Int {
	total := big.NewInt(0)
	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		if cv[rt] != nil {
			total.Add(total, cv[rt])
		}
	}

	return total
}

// MarshalJSON emits the costs as a name-keyed object in canonical resource order
func (cv CostVector) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString("{")
	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		cost := cv[rt]
		if cost == nil {
			cost = big.NewInt(0)
		}
		if rt > 0 {
			buffer.WriteString(",")
		}
		buffer.WriteString(fmt.Sprintf("%q:%q", resourceNames[rt], cost.String()))
	}
	buffer.WriteString("}")

	return buffer.Bytes(), nil
}

// PoolState is a snapshot of the per-resource pool balances, indexed by
// ResourceType. Snapshots are values: cost queries never mutate them
type PoolState [NumResourceTypes]*big.Int

// Clone returns a deep copy of the snapshot
func (ps *PoolState) Clone() PoolState {
	cloned := PoolState{}
	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		if ps[rt] != nil {
			cloned[rt] = big.NewInt(0).Set(ps[rt])
		}
	}

	return cloned
}

// UnmarshalJSON decodes the chain API pool snapshot shape:
// {"<resource>": {"pool": <decimal, number or string>}}
func (ps *PoolState) UnmarshalJSON(data []byte) error {
	rawPools := map[string]struct {
		Pool json.RawMessage `json:"pool"`
	}{}
	err := json.Unmarshal(data, &rawPools)
	if err != nil {
		return err
	}

	for name, entry := range rawPools {
		rt, errResolve := ResourceTypeByName(name)
		if errResolve != nil {
			return errResolve
		}

		ps[rt], err = decodeBigInt(entry.Pool)
		if err != nil {
			return fmt.Errorf("%w for %s", err, name)
		}
	}

	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		if ps[rt] == nil {
			return fmt.Errorf("%w: %s", ErrMissingResourcePool, resourceNames[rt])
		}
	}

	return nil
}

// MarshalJSON emits the chain API pool snapshot shape in canonical resource order
func (ps PoolState) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString("{")
	for rt := ResourceType(0); rt < NumResourceTypes; rt++ {
		pool := ps[rt]
		if pool == nil {
			pool = big.NewInt(0)
		}
		if rt > 0 {
			buffer.WriteString(",")
		}
		buffer.WriteString(fmt.Sprintf("%q:{\"pool\":%q}", resourceNames[rt], pool.String()))
	}
	buffer.WriteString("}")

	return buffer.Bytes(), nil
}

// decodeBigInt accepts both the bare number and the quoted decimal string
// encodings used by the chain API for wide integers
func decodeBigInt(raw json.RawMessage) (*big.Int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrInvalidPoolValue
	}

	if trimmed[0] == '"' {
		var text string
		err := json.Unmarshal(trimmed, &text)
		if err != nil {
			return nil, ErrInvalidPoolValue
		}
		trimmed = []byte(text)
	}

	value, ok := big.NewInt(0).SetString(string(trimmed), 10)
	if !ok {
		return nil, ErrInvalidPoolValue
	}

	return value, nil
}
