package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/heartmarshall/notes-backend/internal/adapter/kv"
)

// mapError converts DynamoDB SDK errors to kv errors.
// context.DeadlineExceeded and context.Canceled pass through.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("%s: %w", op, kv.ErrConditionFailed)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ProvisionedThroughputExceededException",
			"RequestLimitExceeded",
			"ThrottlingException",
			"InternalServerError",
			"ServiceUnavailable",
			"ResourceNotFoundException":
			return fmt.Errorf("%s: %w: %w", op, kv.ErrUnavailable, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	// No API response at all: the request never reached DynamoDB.
	return fmt.Errorf("%s: %w: %w", op, kv.ErrUnavailable, err)
}
