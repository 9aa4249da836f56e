package model

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAmountRoundTrip(t *testing.T) {
	type doc struct {
		Value Amount `bson:"value"`
	}

	// 1 ETH in wei exercises the full 18-decimal range
	in := doc{Value: NewAmount(sdkmath.NewIntWithDecimal(1, 18))}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	require.Equal(t, in.Value.Int, out.Value.Int)
}

func TestAmountNilMarshalsAsZero(t *testing.T) {
	type doc struct {
		Value Amount `bson:"value"`
	}

	raw, err := bson.Marshal(doc{})
	require.NoError(t, err)

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	require.True(t, out.Value.IsZero())
}
