// Package model defines domain models for the ledger faucet.
package model

import (
	"fmt"
	"net"
	"strconv"
)

// NodeEndpoint identifies a ledger node reachable over a control channel
// (submissions) and a data channel (status and reads).
type NodeEndpoint struct {
	Host        string
	ControlPort uint16
	DataPort    uint16
}

// ControlAddr returns host:port of the control channel.
func (n NodeEndpoint) ControlAddr() string {
	return net.JoinHostPort(n.Host, strconv.Itoa(int(n.ControlPort)))
}

// DataAddr returns host:port of the data channel.
func (n NodeEndpoint) DataAddr() string {
	return net.JoinHostPort(n.Host, strconv.Itoa(int(n.DataPort)))
}

func (n NodeEndpoint) String() string {
	return fmt.Sprintf("%s(control=%d,data=%d)", n.Host, n.ControlPort, n.DataPort)
}

// NodePool is the ordered set of configured nodes. It is built once at
// startup and only read afterwards.
type NodePool []NodeEndpoint

// NewNodePool zips hosts with their control and data ports.
func NewNodePool(hosts []string, controlPorts, dataPorts []uint16) (NodePool, error) {
	if len(hosts) == 0 || len(controlPorts) == 0 || len(dataPorts) == 0 {
		return nil, fmt.Errorf("node hosts, control ports and data ports must be non-empty")
	}
	if len(hosts) != len(controlPorts) || len(hosts) != len(dataPorts) {
		return nil, fmt.Errorf("node hosts (%d), control ports (%d) and data ports (%d) must have the same length",
			len(hosts), len(controlPorts), len(dataPorts))
	}

	pool := make(NodePool, 0, len(hosts))
	for i, host := range hosts {
		if host == "" {
			return nil, fmt.Errorf("node host %d is empty", i)
		}
		pool = append(pool, NodeEndpoint{
			Host:        host,
			ControlPort: controlPorts[i],
			DataPort:    dataPorts[i],
		})
	}
	return pool, nil
}
