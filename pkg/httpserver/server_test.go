package httpserver_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekit/pkg/httpserver"
)

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		t.Parallel()
		srv := httpserver.New(
			httpserver.WithAddr("127.0.0.1:0"),
			httpserver.WithShutdownTimeout(time.Second),
		)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.NotFoundHandler())
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("shutdown is safe before run", func(t *testing.T) {
		t.Parallel()
		srv := httpserver.New()
		require.NoError(t, srv.Shutdown(context.Background()))
	})

	t.Run("fails to start on an unusable address", func(t *testing.T) {
		t.Parallel()
		srv := httpserver.New(httpserver.WithAddr("256.256.256.256:99999"))
		err := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})
}
