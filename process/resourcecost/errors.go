package resourcecost

import "errors"

// ErrNilResourcesConfig signals that a nil resources config was provided
var ErrNilResourcesConfig = errors.New("nil resources config")

// ErrNilTransactionCostHandler signals that a nil transaction cost handler was provided
var ErrNilTransactionCostHandler = errors.New("nil transaction cost handler")

// ErrNilTransaction signals that a nil transaction was provided
var ErrNilTransaction = errors.New("nil transaction")

// ErrInvalidSerializedSize signals that the externally measured transaction size is not usable
var ErrInvalidSerializedSize = errors.New("invalid serialized transaction size")

// ErrNilRegenRate signals that a nil regeneration rate was provided
var ErrNilRegenRate = errors.New("nil regeneration rate")

// ErrNegativeRegenRate signals that a negative regeneration rate was provided
var ErrNegativeRegenRate = errors.New("negative regeneration rate")

// ErrNilResourcePool signals that a pool snapshot entry is missing
var ErrNilResourcePool = errors.New("nil resource pool")

// ErrNegativeResourcePool signals that a pool snapshot entry is negative
var ErrNegativeResourcePool = errors.New("negative resource pool")

// ErrMissingResourcePool signals that a pool snapshot does not cover every resource
var ErrMissingResourcePool = errors.New("missing resource pool")

// ErrInvalidPoolValue signals that a pool balance could not be parsed
var ErrInvalidPoolValue = errors.New("invalid pool value")

// ErrUnknownResourceName signals a resource name outside the known set
var ErrUnknownResourceName = errors.New("unknown resource name")

// ErrDuplicatedResource signals that a resource is configured more than once
var ErrDuplicatedResource = errors.New("duplicated resource")

// ErrMissingResource signals that a resource has no configuration entry
var ErrMissingResource = errors.New("missing resource")

// ErrInvalidCurveCoefficient signals an unparseable or out of range curve coefficient
var ErrInvalidCurveCoefficient = errors.New("invalid price curve coefficient")

// ErrInvalidCurveShift signals an out of range curve shift
var ErrInvalidCurveShift = errors.New("invalid price curve shift")

// ErrNilPriceCurveParams signals that nil price curve parameters were provided
var ErrNilPriceCurveParams = errors.New("nil price curve params")

// ErrDegeneratePriceCurve signals a non-positive pricing denominator
var ErrDegeneratePriceCurve = errors.New("degenerate price curve denominator")

// ErrInvalidDecayParams signals unparseable or out of range decay parameters
var ErrInvalidDecayParams = errors.New("invalid decay params")

// ErrInvalidResourceUnit signals a zero resource unit
var ErrInvalidResourceUnit = errors.New("invalid resource unit")

// ErrInvalidDynamicsValue signals an unparseable pool dynamics value
var ErrInvalidDynamicsValue = errors.New("invalid pool dynamics value")
