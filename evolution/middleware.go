package evolution

import (
	"encore.dev/middleware"

	idempotencymw "elementalsouls.app/evolution/middleware/idempotency"
)

// IdempotencyMiddleware runs before any lock is taken, so a replayed request
// never contends with the run it is replaying.
//
//encore:middleware target=tag:idempotency
func (s *Service) IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	return idempotencymw.Handle(s.idempotency, req, next)
}
