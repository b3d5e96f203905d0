package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracer_ExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	shutdown, err := InitTracer(ctx, "attendance-backend-test", &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(ctx, "check-in")
	span.End()

	require.NoError(t, shutdown(ctx))
	assert.Contains(t, buf.String(), "check-in")
	assert.Contains(t, buf.String(), "attendance-backend-test")
}
