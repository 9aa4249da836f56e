package balanceoracle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/modbotdev/budget-ledger/internal/config"
)

const (
	testTokenContract = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	testWallet        = "0x1111111111111111111111111111111111111111"
)

func oracleConfig(rpcAddr string) *config.OracleConfig {
	return &config.OracleConfig{
		RPCAddr:       rpcAddr,
		TokenContract: testTokenContract,
		WalletAddress: testWallet,
		Timeout:       2 * time.Second,
		MaxRetryTimes: 2,
		RetryInterval: 10 * time.Millisecond,
	}
}

func TestActualBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "eth_call", req.Method)

		params := req.Params[0].(map[string]interface{})
		require.Equal(t, testTokenContract, params["to"])
		require.Equal(t,
			balanceOfSelector+"0000000000000000000000001111111111111111111111111111111111111111",
			params["data"],
		)

		// 100 USDC in 6-decimal units
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      1,
			"result":  "0x5f5e100",
		})
	}))
	defer srv.Close()

	client := NewClient(oracleConfig(srv.URL))
	balance, err := client.ActualBalance(t.Context())
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(100_000_000), balance)
}

func TestActualBalanceZeroResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      1,
			"result":  "0x",
		})
	}))
	defer srv.Close()

	client := NewClient(oracleConfig(srv.URL))
	balance, err := client.ActualBalance(t.Context())
	require.NoError(t, err)
	require.True(t, balance.IsZero())
}

func TestActualBalanceRPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      1,
			"error":   map[string]interface{}{"code": -32000, "message": "header not found"},
		})
	}))
	defer srv.Close()

	client := NewClient(oracleConfig(srv.URL))
	_, err := client.ActualBalance(t.Context())
	require.ErrorContains(t, err, "header not found")
}

func TestActualBalanceRetriesOnServerError(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      1,
			"result":  "0x1",
		})
	}))
	defer srv.Close()

	client := NewClient(oracleConfig(srv.URL))
	balance, err := client.ActualBalance(t.Context())
	require.NoError(t, err)
	require.Equal(t, sdkmath.OneInt(), balance)
	require.Equal(t, int64(2), calls.Load())
}

func TestParseHexQuantity(t *testing.T) {
	_, err := parseHexQuantity("0xzz")
	require.Error(t, err)

	v, err := parseHexQuantity("0x0")
	require.NoError(t, err)
	require.True(t, v.IsZero())
}
