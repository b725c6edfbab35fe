package tracing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDs(t *testing.T) {
	traceID := GenerateTraceID()
	assert.True(t, strings.HasPrefix(traceID, "oht-"))
	assert.Len(t, traceID, len("oht-")+36)

	requestID := GenerateRequestID()
	assert.True(t, strings.HasPrefix(requestID, "ohr-"))
	assert.NotEqual(t, requestID, GenerateRequestID())
}

func TestTraceFieldsHooks(t *testing.T) {
	t.Run("with trace and request ID", func(t *testing.T) {
		ctx := WithTraceID(context.Background(), "oht-test-trace-id")
		ctx = WithRequestID(ctx, "ohr-test-request-id")

		fields := TraceFieldsHooks(ctx, "test message")
		require.Len(t, fields, 2)
		assert.Equal(t, "trace_id", fields[0].Key)
		assert.Equal(t, "oht-test-trace-id", fields[0].String)
		assert.Equal(t, "request_id", fields[1].Key)
		assert.Equal(t, "ohr-test-request-id", fields[1].String)
	})

	t.Run("with operation name", func(t *testing.T) {
		ctx := WithOperationName(context.Background(), "GET /articles/:article")
		fields := TraceFieldsHooks(ctx, "test message")
		require.Len(t, fields, 1)
		assert.Equal(t, "operation_name", fields[0].Key)
	})

	t.Run("without values", func(t *testing.T) {
		fields := TraceFieldsHooks(context.Background(), "test message")
		assert.Len(t, fields, 0)
	})

	t.Run("with nil context", func(t *testing.T) {
		//nolint:staticcheck // nil context is tolerated by hooks.
		fields := TraceFieldsHooks(nil, "test message")
		assert.Len(t, fields, 0)
	})
}
