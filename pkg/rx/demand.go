package rx

// Demand is the number of additional values a consumer is willing to accept.
// It is either a non-negative count or the unlimited sentinel. The zero value
// is NoDemand.
type Demand struct {
	count     uint64
	unlimited bool
}

// NoDemand accepts no values.
var NoDemand = Demand{}

// Unlimited accepts any number of values.
var Unlimited = Demand{unlimited: true}

// MaxDemand returns a demand for up to n values. Negative n is programmer
// misuse and panics.
func MaxDemand(n int) Demand {
	if n < 0 {
		panic("rx: MaxDemand requires n >= 0")
	}
	return Demand{count: uint64(n)}
}

// Add accumulates demand, saturating at unlimited.
func (d Demand) Add(other Demand) Demand {
	if d.unlimited || other.unlimited {
		return Unlimited
	}
	sum := d.count + other.count
	if sum < d.count { // overflow
		return Unlimited
	}
	return Demand{count: sum}
}

// Sub decreases demand, flooring at zero. Unlimited minus anything stays
// unlimited.
func (d Demand) Sub(other Demand) Demand {
	if d.unlimited {
		return Unlimited
	}
	if other.unlimited || other.count >= d.count {
		return NoDemand
	}
	return Demand{count: d.count - other.count}
}

// Positive reports whether at least one value may be emitted.
func (d Demand) Positive() bool {
	return d.unlimited || d.count > 0
}

// IsUnlimited reports whether the demand is the unlimited sentinel.
func (d Demand) IsUnlimited() bool {
	return d.unlimited
}

// Count returns the bounded count. It is meaningless when IsUnlimited.
func (d Demand) Count() uint64 {
	return d.count
}
