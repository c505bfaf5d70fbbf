// Package echorelay adapts the relay projection handler to echo
package echorelay

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/aneshas/ledger"
	"github.com/aneshas/ledger/relay"
	"github.com/labstack/echo/v4"
)

var _ Projector = (*relay.Relay)(nil)

// Projector is an interface for projecting pushed transactions
type Projector interface {
	Project(ctx context.Context, projection ledger.Projection, data []byte) error
}

// Wrap returns a func wrapper around the Relay projection handler which
// adapts it to echo.HandlerFunc
func Wrap(p Projector) func(projection ledger.Projection) echo.HandlerFunc {
	return func(projection ledger.Projection) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()

			req, err := io.ReadAll(r.Body)
			if err != nil {
				return err
			}

			err = p.Project(r.Context(), projection, req)
			if err != nil {
				if errors.Is(err, relay.ErrNoRetry) {
					return c.JSONBlob(http.StatusOK, []byte(relay.SuccessResp))
				}

				if errors.Is(err, relay.ErrKeepGoing) {
					return c.JSONBlob(http.StatusOK, []byte(relay.KeepGoingResp))
				}

				return c.JSONBlob(http.StatusOK, []byte(relay.RetryResp))
			}

			return c.JSONBlob(http.StatusOK, []byte(relay.SuccessResp))
		}
	}
}
