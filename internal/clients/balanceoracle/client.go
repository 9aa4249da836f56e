package balanceoracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/avast/retry-go/v4"

	"github.com/modbotdev/budget-ledger/internal/config"
)

// balanceOf(address) selector, first four bytes of its keccak hash
const balanceOfSelector = "0x70a08231"

const defaultMaxRetryTimes = 3
const defaultRetryInterval = 500 * time.Millisecond

type Client struct {
	httpClient *http.Client
	cfg        *config.OracleConfig
}

func NewClient(cfg *config.OracleConfig) *Client {
	if cfg == nil {
		return nil
	}

	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

type rpcRequest struct {
	Jsonrpc string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result string    `json:"result"`
	Error  *rpcError `json:"error"`
}

type callParams struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

// ActualBalance returns the funding-token balance of the configured wallet
// via an eth_call against the token contract.
func (c *Client) ActualBalance(ctx context.Context) (sdkmath.Int, error) {
	callForBalance := func() (sdkmath.Int, error) {
		return c.balanceOf(ctx)
	}

	balance, err := clientCallWithRetry(ctx, callForBalance, c.cfg)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to get wallet balance: %w", err)
	}

	return balance, nil
}

func (c *Client) balanceOf(ctx context.Context) (sdkmath.Int, error) {
	reqBody := rpcRequest{
		Jsonrpc: "2.0",
		ID:      1,
		Method:  "eth_call",
		Params: []interface{}{
			callParams{
				To:   c.cfg.TokenContract,
				Data: balanceOfSelector + leftPadAddress(c.cfg.WalletAddress),
			},
			"latest",
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return sdkmath.Int{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.RPCAddr, bytes.NewReader(payload))
	if err != nil {
		return sdkmath.Int{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sdkmath.Int{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return sdkmath.Int{}, fmt.Errorf("rpc endpoint returned status %d", resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to decode rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		return sdkmath.Int{}, fmt.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	return parseHexQuantity(rpcResp.Result)
}

// leftPadAddress encodes an address as a 32-byte ABI word.
func leftPadAddress(addr string) string {
	hexPart := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X"))
	return strings.Repeat("0", 64-len(hexPart)) + hexPart
}

func parseHexQuantity(s string) (sdkmath.Int, error) {
	hexPart := strings.TrimPrefix(s, "0x")
	if hexPart == "" {
		return sdkmath.ZeroInt(), nil
	}

	value, ok := new(big.Int).SetString(hexPart, 16)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("malformed hex quantity %q", s)
	}

	return sdkmath.NewIntFromBigInt(value), nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.OracleConfig,
) (T, error) {
	maxRetryTimes := cfg.MaxRetryTimes
	if maxRetryTimes == 0 {
		maxRetryTimes = defaultMaxRetryTimes
	}
	retryInterval := cfg.RetryInterval
	if retryInterval == 0 {
		retryInterval = defaultRetryInterval
	}

	return retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(maxRetryTimes),
		retry.Delay(retryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}
