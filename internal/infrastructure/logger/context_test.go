package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestWithContext(t *testing.T) {
	logger, err := New(&Config{Level: "debug", Format: "console"})
	require.NoError(t, err)

	ctx := context.Background()
	ctxWithLogger := WithContext(ctx, logger)

	retrievedLogger := FromContext(ctxWithLogger)
	assert.NotNil(t, retrievedLogger)
}

func TestFromContext_NotFound(t *testing.T) {
	ctx := context.Background()
	logger := FromContext(ctx)

	// Should return a no-op logger
	assert.NotNil(t, logger)
}

func TestWithRequestID(t *testing.T) {
	logger, err := New(&Config{Level: "debug", Format: "console"})
	require.NoError(t, err)

	ctx := context.Background()
	requestID := "req-123"

	newCtx, newLogger := WithRequestID(ctx, logger, requestID)

	assert.NotNil(t, newCtx)
	assert.NotNil(t, newLogger)
	assert.Equal(t, requestID, GetRequestID(newCtx))
}

func TestWithStaffID(t *testing.T) {
	logger, err := New(&Config{Level: "debug", Format: "console"})
	require.NoError(t, err)

	ctx := context.Background()
	staffID := "staff-456"

	newCtx, newLogger := WithStaffID(ctx, logger, staffID)

	assert.NotNil(t, newCtx)
	assert.NotNil(t, newLogger)
	assert.Equal(t, staffID, GetStaffID(newCtx))
}

func TestGetRequestID_NotFound(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
}

func TestGetStaffID_NotFound(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetStaffID(ctx))
}

func TestContextKeysAreDistinct(t *testing.T) {
	assert.NotEqual(t, RequestIDKey, StaffIDKey)
	assert.NotEqual(t, LoggerKey, RequestIDKey)
}

// memoryLogger builds a JSON logger writing into buf for output assertions
func memoryLogger(buf *bytes.Buffer) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey: "msg",
		LevelKey:   "level",
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func TestContextLogger_InjectsContextFields(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := memoryLogger(&buf)

	ctx := WithContext(context.Background(), baseLogger)
	ctx, _ = WithRequestID(ctx, baseLogger, "req-abc")
	ctx = context.WithValue(ctx, StaffIDKey, "staff-789")

	L(ctx).Info("processing request")

	output := buf.String()
	assert.Contains(t, output, `"request_id":"req-abc"`)
	assert.Contains(t, output, `"staff_id":"staff-789"`)
	assert.Contains(t, output, "processing request")
}

func TestContextLogger_EmptyFieldsOmitted(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := memoryLogger(&buf)

	WithLogger(context.Background(), baseLogger).Info("no identity")

	output := buf.String()
	assert.NotContains(t, output, `"request_id":""`)
	assert.NotContains(t, output, `"staff_id":""`)
}

func TestContextLogger_With(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := memoryLogger(&buf)

	cl := WithLogger(context.Background(), baseLogger).With(zap.String("component", "billing"))
	cl.Warn("slow lookup")

	output := buf.String()
	assert.Contains(t, output, `"component":"billing"`)
	assert.Contains(t, output, "slow lookup")
}
