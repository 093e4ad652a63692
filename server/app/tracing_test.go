package app_test

import (
	"errors"
	"testing"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })
	return recorder
}

func spansByName(spans []sdktrace.ReadOnlySpan) map[string]sdktrace.ReadOnlySpan {
	byName := map[string]sdktrace.ReadOnlySpan{}
	for _, s := range spans {
		byName[s.Name()] = s
	}
	return byName
}

func TestDeleteUserSpans(t *testing.T) {
	t.Run("one span per step under the run", func(t *testing.T) {
		recorder := recordSpans(t)
		h := newHarness(t)
		h.users.EXPECT().GetUser("u").Return(&app.User{Id: "u"}, nil)
		h.expectUserCleanup("u")

		_, err := h.service.DeleteUser("u", deleteOpts)
		require.NoError(t, err)

		spans := spansByName(recorder.Ended())
		require.Len(t, spans, len(app.Steps())+1)

		run, ok := spans["offboard.DeleteUser"]
		require.True(t, ok)
		assert.Equal(t, codes.Unset, run.Status().Code)
		assert.Contains(t, run.Attributes(), attribute.String("user_id", "u"))
		assert.Contains(t, run.Attributes(), attribute.String("erasure_mode", string(app.ErasureDelete)))

		for _, step := range app.Steps() {
			s, ok := spans["offboard."+string(step)]
			require.True(t, ok, step)
			assert.Equal(t, run.SpanContext().SpanID(), s.Parent().SpanID(), step)
		}
	})

	t.Run("a failed step marks the run", func(t *testing.T) {
		recorder := recordSpans(t)
		h := newHarness(t)
		h.users.EXPECT().GetUser("u").Return(&app.User{Id: "u"}, nil)
		h.subs.EXPECT().DeleteSubscriptionsForUser("u").Return(int64(0), errors.New("deadlock"))
		h.federation.EXPECT().Refresh().Return(nil)

		_, err := h.service.DeleteUser("u", deleteOpts)
		require.Error(t, err)

		spans := spansByName(recorder.Ended())
		assert.Equal(t, codes.Error, spans["offboard.DeleteUser"].Status().Code)
		assert.Equal(t, codes.Error, spans["offboard."+string(app.StepRemoveSubscriptions)].Status().Code)
		assert.Equal(t, codes.Unset, spans["offboard."+string(app.StepRemoveRooms)].Status().Code)
		assert.NotContains(t, spans, "offboard."+string(app.StepRemoveUser))
	})
}
