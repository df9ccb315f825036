//go:build !tinygo

package hal

import "net"

type nullNetwork struct{}

func (nullNetwork) Link() LinkState { return LinkUnlinked }

// hostNetwork reports the link state of a host interface: a missing
// interface is unlinked, an interface that is administratively down or
// has no carrier is down.
type hostNetwork struct {
	iface string
}

func (n *hostNetwork) Link() LinkState {
	ifi, err := net.InterfaceByName(n.iface)
	if err != nil {
		return LinkUnlinked
	}
	return linkFromFlags(ifi.Flags)
}

func linkFromFlags(f net.Flags) LinkState {
	if f&net.FlagUp == 0 || f&net.FlagRunning == 0 {
		return LinkDown
	}
	return LinkUp
}
