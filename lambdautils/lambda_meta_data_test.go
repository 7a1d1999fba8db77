package lambdautils

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func prepareContext(fn, v, alias, requestID string) context.Context {
	lambdacontext.FunctionName = fn
	lambdacontext.FunctionVersion = v
	lambdacontext.LogGroupName = "logGroupName-test"
	lambdacontext.LogStreamName = "logStreamName-test"
	lambdacontext.MemoryLimitInMB = 100

	arn := []string{"arn:aws:lambda:us-east-1:xxxxx:function", fn}
	if alias != "" {
		arn = append(arn, alias)
	}

	lctx := lambdacontext.LambdaContext{
		AwsRequestID:       requestID,
		InvokedFunctionArn: strings.Join(arn, ":"),
	}
	return lambdacontext.NewContext(context.Background(), &lctx)
}

func clearContext() {
	lambdacontext.FunctionName = os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	lambdacontext.FunctionVersion = os.Getenv("AWS_LAMBDA_FUNCTION_VERSION")
	lambdacontext.LogGroupName = os.Getenv("AWS_LAMBDA_LOG_GROUP_NAME")
	lambdacontext.LogStreamName = os.Getenv("AWS_LAMBDA_LOG_STREAM_NAME")
	if limit, err := strconv.Atoi(os.Getenv("AWS_LAMBDA_FUNCTION_MEMORY_SIZE")); err != nil {
		lambdacontext.MemoryLimitInMB = 0
	} else {
		lambdacontext.MemoryLimitInMB = limit
	}
}

func attrMap(attrs []any) map[string]string {
	m := map[string]string{}
	for _, a := range attrs {
		attr := a.(slog.Attr)
		m[attr.Key] = attr.Value.String()
	}
	return m
}

func TestLambdaMetaData(t *testing.T) {
	// NOTE: lambdacontext exposes the function metadata as package globals, so
	// they must be set and restored around the test.
	defer clearContext()

	cases := []struct {
		fn          string
		v           string
		alias       string
		requestID   string
		expectedArn string
	}{
		{"relay", "1", "PRODUCTION", "req-1", "arn:aws:lambda:us-east-1:xxxxx:function:relay:PRODUCTION"},
		{"relay", "$LATEST", "$LATEST", "req-2", "arn:aws:lambda:us-east-1:xxxxx:function:relay:$LATEST"},
		{"relay", "4", "", "req-3", "arn:aws:lambda:us-east-1:xxxxx:function:relay"},
		{"relay-gateway", "3", "DEV", "req-4", "arn:aws:lambda:us-east-1:xxxxx:function:relay-gateway:DEV"},
	}

	for _, c := range cases {
		ctx := prepareContext(c.fn, c.v, c.alias, c.requestID)
		meta := GetLambdaMetaData(ctx)

		assert.Equal(t, c.fn, meta.FunctionName)
		assert.Equal(t, c.v, meta.FunctionVersion)
		assert.Equal(t, 100, meta.MemoryLimitInMB)
		assert.Equal(t, "logGroupName-test", meta.LogGroupName)
		assert.Equal(t, "logStreamName-test", meta.LogStreamName)
		assert.Equal(t, c.expectedArn, meta.InvokedFunctionArn())
		assert.Equal(t, c.requestID, meta.RequestID())
	}
}

func TestLambdaMetaData_noContext(t *testing.T) {
	defer clearContext()
	lambdacontext.FunctionName = ""
	lambdacontext.FunctionVersion = ""

	meta := GetLambdaMetaData(context.Background())

	assert.Nil(t, meta.Context)
	assert.Empty(t, meta.InvokedFunctionArn())

	_, err := uuid.Parse(meta.RequestID())
	assert.NoError(t, err)

	other := GetLambdaMetaData(context.Background())
	assert.NotEqual(t, meta.RequestID(), other.RequestID())
}

func TestLambdaMetaData_LogAttrs(t *testing.T) {
	defer clearContext()

	ctx := prepareContext("relay", "7", "", "req-9")
	attrs := GetLambdaMetaData(ctx).LogAttrs()

	expected := map[string]string{
		FieldRequestID: "req-9",
		FieldFunction:  "relay",
		FieldVersion:   "7",
	}
	assert.Equal(t, expected, attrMap(attrs))
}

func TestLambdaMetaData_LogAttrs_omitsEmpty(t *testing.T) {
	defer clearContext()
	lambdacontext.FunctionName = ""
	lambdacontext.FunctionVersion = ""

	lctx := lambdacontext.LambdaContext{AwsRequestID: "req-10"}
	ctx := lambdacontext.NewContext(context.Background(), &lctx)

	attrs := GetLambdaMetaData(ctx).LogAttrs()

	assert.Equal(t, map[string]string{FieldRequestID: "req-10"}, attrMap(attrs))
}
