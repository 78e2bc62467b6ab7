package github

import "context"

// EnsureQuota checks remaining quota for the active token and advances
// the ring when it dips below the pool-scaled floor. Best effort: a
// failed quota check is logged and never blocks the caller.
func (c *Client) EnsureQuota(ctx context.Context) {
	if c.ring.Size() == 0 {
		return
	}
	rs, err := c.RateLimit(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("github quota check failed, continuing")
		return
	}
	threshold := guardFloorPerToken * c.ring.Size()
	if rs.Remaining < threshold {
		c.log.Info().
			Int("remaining", rs.Remaining).
			Int("threshold", threshold).
			Time("reset_at", rs.ResetAt).
			Msg("github quota low, rotating token")
		c.ring.Advance()
	}
}
