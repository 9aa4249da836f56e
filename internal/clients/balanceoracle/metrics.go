package balanceoracle

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/modbotdev/budget-ledger/internal/observability/metrics"
)

type ClientWithMetrics struct {
	client OracleInterface
}

func NewClientWithMetrics(client OracleInterface) *ClientWithMetrics {
	return &ClientWithMetrics{client: client}
}

func (c *ClientWithMetrics) ActualBalance(ctx context.Context) (result sdkmath.Int, err error) {
	//nolint:errcheck
	c.run("ActualBalance", func() error {
		result, err = c.client.ActualBalance(ctx)
		return err
	})
	return
}

func (c *ClientWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordOracleClientLatency(duration, method, err != nil)
	return err
}
