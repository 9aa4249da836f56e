package model

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Amount wraps an arbitrary-precision integer so it round-trips through
// mongo as Decimal128. Storing a numeric type rather than a string keeps
// $inc and $sum usable on balance fields.
type Amount struct {
	sdkmath.Int
}

func NewAmount(i sdkmath.Int) Amount {
	return Amount{Int: i}
}

func ZeroAmount() Amount {
	return Amount{Int: sdkmath.ZeroInt()}
}

func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if a.IsNil() {
		a.Int = sdkmath.ZeroInt()
	}
	dec, err := primitive.ParseDecimal128(a.String())
	if err != nil {
		return 0, nil, fmt.Errorf("amount %s does not fit decimal128: %w", a.String(), err)
	}
	return bson.MarshalValue(dec)
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	var dec primitive.Decimal128
	if err := raw.Unmarshal(&dec); err != nil {
		return fmt.Errorf("failed to unmarshal amount: %w", err)
	}
	i, ok := sdkmath.NewIntFromString(dec.String())
	if !ok {
		return fmt.Errorf("amount %s is not an integer", dec.String())
	}
	a.Int = i
	return nil
}
