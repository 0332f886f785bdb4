package dynamo

import (
	"context"
	"fmt"
	"fooodimp-be/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// TableChecker verifies that every configured table is reachable.
type TableChecker struct {
	api    API
	tables []string
}

func NewTableChecker(api API, tables ...string) *TableChecker {
	return &TableChecker{api: api, tables: tables}
}

// Check describes each table in turn and reports the first failure.
func (c *TableChecker) Check(ctx context.Context) error {
	for _, table := range c.tables {
		_, err := c.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(table),
		})
		if err != nil {
			logger.FromCtx(ctx).Warn("table health check failed",
				zap.String("table", table),
				zap.String("aws_error_code", ErrorCode(err)),
				zap.Error(err),
			)
			return fmt.Errorf("table %s: %w", table, err)
		}
	}
	return nil
}
