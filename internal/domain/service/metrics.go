package service

// Reasons an order may be skipped without crediting any spend.
const (
	SkipReasonInvalid     = "invalid"
	SkipReasonDuplicate   = "duplicate"
	SkipReasonNonPositive = "non_positive"
)

// MembershipMetrics records workflow outcomes.
type MembershipMetrics interface {
	OrderCredited()
	OrderSkipped(reason string)
	CardUpgraded()
	DefaultCardIssued()
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) OrderCredited()      {}
func (NopMetrics) OrderSkipped(string) {}
func (NopMetrics) CardUpgraded()       {}
func (NopMetrics) DefaultCardIssued()  {}
