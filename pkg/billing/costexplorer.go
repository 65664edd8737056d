package billing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
)

const dateLayout = "2006-01-02"

// blendedCost is the Cost Explorer metric queried for month-to-date spend.
const blendedCost = "BlendedCost"

// CostExplorer implements CostSource against the AWS Cost Explorer API.
type CostExplorer struct {
	client *costexplorer.Client
}

// NewCostExplorer builds a Cost Explorer client from a static access-key
// pair. Cost Explorer is a global service; us-east-1 is its home region.
func NewCostExplorer(ctx context.Context, region, accessKeyID, secretAccessKey string) (*CostExplorer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &CostExplorer{
		client: costexplorer.NewFromConfig(cfg),
	}, nil
}

// MonthToDateSpend queries blended cost at monthly granularity for the
// window returned by QueryWindow.
func (c *CostExplorer) MonthToDateSpend(ctx context.Context, now time.Time) (CostSnapshot, error) {
	start, end := QueryWindow(now.UTC())

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format(dateLayout)),
			End:   aws.String(end.Format(dateLayout)),
		},
		Granularity: types.GranularityMonthly,
		Metrics:     []string{blendedCost},
	}

	out, err := c.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return CostSnapshot{}, fmt.Errorf("get cost and usage: %w", err)
	}

	if len(out.ResultsByTime) == 0 {
		return CostSnapshot{}, fmt.Errorf("cost explorer returned no results for %s..%s",
			start.Format(dateLayout), end.Format(dateLayout))
	}

	metric, ok := out.ResultsByTime[0].Total[blendedCost]
	if !ok || metric.Amount == nil {
		return CostSnapshot{}, fmt.Errorf("cost explorer response missing %s total", blendedCost)
	}

	amount, err := strconv.ParseFloat(*metric.Amount, 64)
	if err != nil {
		return CostSnapshot{}, fmt.Errorf("parse cost amount %q: %w", *metric.Amount, err)
	}

	return CostSnapshot{
		Amount:      amount,
		PeriodStart: start,
		PeriodEnd:   end,
	}, nil
}
