package mock

import "github.com/fwojciec/titlespec"

var _ titlespec.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of titlespec.Navigator.
type Navigator struct {
	CurrentFn func() titlespec.Navigation
	PushFn    func(nav titlespec.Navigation)
}

func (n *Navigator) Current() titlespec.Navigation {
	return n.CurrentFn()
}

func (n *Navigator) Push(nav titlespec.Navigation) {
	n.PushFn(nav)
}
