// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import "fmt"

// PreconditionError reports a plan that the user directory or role catalog
// cannot satisfy. Nothing has been written when it is returned.
type PreconditionError struct {
	Tenant string
	Reason string
}

func (e *PreconditionError) Error() string {
	if e.Tenant == "" {
		return fmt.Sprintf("seed precondition failed: %s", e.Reason)
	}
	return fmt.Sprintf("seed precondition failed for tenant %q: %s", e.Tenant, e.Reason)
}
