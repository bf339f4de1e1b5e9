package alert

import "time"

// InCooldown reports whether a successful attempt at sentAt still suppresses
// re-notification at now, for the given window. The old edge is exclusive:
// an attempt exactly window ago is NOT in cooldown anymore.
func InCooldown(sentAt, now time.Time, window time.Duration) bool {
	return sentAt.After(now.Add(-window))
}
