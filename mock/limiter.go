package mock

import (
	"context"

	"github.com/progscout/progscout"
)

var _ progscout.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of progscout.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ progscout.VisitedSet = (*VisitedSet)(nil)

// VisitedSet is a mock implementation of progscout.VisitedSet.
type VisitedSet struct {
	AddFn  func(url string)
	TestFn func(url string) bool
}

func (v *VisitedSet) Add(url string) {
	v.AddFn(url)
}

func (v *VisitedSet) Test(url string) bool {
	return v.TestFn(url)
}
