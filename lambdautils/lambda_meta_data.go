package lambdautils

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

// Log field names for invocation metadata.
const (
	FieldFunction  = "function"
	FieldVersion   = "function_version"
	FieldRequestID = "request_id"
)

// LambdaMetaData stores details about the current lambda invocation.
type LambdaMetaData struct {
	FunctionName    string
	FunctionVersion string
	LogGroupName    string
	LogStreamName   string
	MemoryLimitInMB int
	Context         *lambdacontext.LambdaContext

	requestID string
}

// GetLambdaMetaData returns MetaData extracted from the current lambda context.
//
// When ctx carries no lambda context (local runs, tests) a random request id
// is generated so log lines of one invocation can still be correlated.
func GetLambdaMetaData(ctx context.Context) LambdaMetaData {
	lm := LambdaMetaData{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
	}

	lm.Context, _ = lambdacontext.FromContext(ctx)

	if lm.Context != nil && lm.Context.AwsRequestID != "" {
		lm.requestID = lm.Context.AwsRequestID
	} else {
		lm.requestID = uuid.NewString()
	}

	return lm
}

// RequestID returns the aws request id of the invocation, or the generated
// fallback id.
func (lm LambdaMetaData) RequestID() string {
	return lm.requestID
}

// InvokedFunctionArn returns the arn used to invoke the function, if known.
func (lm LambdaMetaData) InvokedFunctionArn() string {
	if lm.Context == nil {
		return ""
	}

	return lm.Context.InvokedFunctionArn
}

// LogAttrs returns slog attributes describing the invocation. Empty values are
// omitted.
func (lm LambdaMetaData) LogAttrs() []any {
	attrs := []any{slog.String(FieldRequestID, lm.requestID)}

	if lm.FunctionName != "" {
		attrs = append(attrs, slog.String(FieldFunction, lm.FunctionName))
	}

	if lm.FunctionVersion != "" {
		attrs = append(attrs, slog.String(FieldVersion, lm.FunctionVersion))
	}

	return attrs
}
