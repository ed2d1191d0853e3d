// Package service defines interfaces for domain-level collaborators that
// are implemented by the infrastructure layer.
package service

import "context"

// Notifier is the fire-and-forget "show message" collaborator. It reports
// login/signup success, checkout redirects and order confirmations.
// Implementations must not block and have no error path.
type Notifier interface {
	Notify(ctx context.Context, title, description string)
}
