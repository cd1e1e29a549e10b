package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/46h1/buzzer/internal/stream"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// keepAliveInterval keeps idle proxies from closing a quiet stream.
const keepAliveInterval = 25 * time.Second

// Stream writes every snapshot of sub as a server-sent event until the client goes away or
// the subscription ends. The snapshot sequence is the event id.
func Stream[T any](c echo.Context, event string, sub *stream.Subscription[T]) error {
	defer sub.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-keepAlive.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case snap, ok := <-sub.C():
			if !ok {
				return nil
			}
			if err := writeEvent(res, event, snap); err != nil {
				return err
			}
			res.Flush()
		}
	}
}

func writeEvent[T any](res *echo.Response, event string, snap stream.Snapshot[T]) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	// a write error means the client is gone, which ends the stream quietly
	_, _ = fmt.Fprintf(res, "id: %d\nevent: %s\ndata: %s\n\n", snap.Seq, event, payload)

	return nil
}
