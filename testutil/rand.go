package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/brianvoe/gofakeit/v7"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns empty string
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

func RandomCommunityID() string {
	return fmt.Sprintf("community-%d", gofakeit.Number(100_000, 999_999))
}

// RandomFundingAmount returns a positive amount in funding minor units,
// between 1 and 1000 whole units.
func RandomFundingAmount() sdkmath.Int {
	return sdkmath.NewInt(int64(gofakeit.Number(1, 1000))).MulRaw(1_000_000)
}

func RandomHexAddress() string {
	return "0x" + randomHex(40)
}

func RandomTxHash() string {
	return "0x" + randomHex(64)
}

func randomHex(length int) string {
	const charset = "0123456789abcdef"

	out := make([]byte, length)
	for i := range out {
		out[i] = charset[gofakeit.Number(0, len(charset)-1)]
	}
	return string(out)
}
