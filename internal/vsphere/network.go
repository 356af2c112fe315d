package vsphere

import (
	"context"

	"github.com/vmware/govmomi/vim25/types"
)

// VirtualSwitch is one standard vSwitch on one host, with its
// effective security policy. Unset policy fields report ok=false.
type VirtualSwitch struct {
	HostName string
	Name     string
	security *types.HostNetworkSecurityPolicy
}

// PortGroup is one standard port group on one host.
type PortGroup struct {
	HostName string
	Name     string
	Vswitch  string
	VlanID   int32
	security *types.HostNetworkSecurityPolicy
}

// VirtualSwitches lists every standard vSwitch across all hosts, in
// host order then declaration order.
func (s *Session) VirtualSwitches(ctx context.Context) ([]VirtualSwitch, error) {
	hosts, err := s.Hosts(ctx)
	if err != nil {
		return nil, err
	}
	var out []VirtualSwitch
	for _, h := range hosts {
		cfg := h.mo.Config
		if cfg == nil || cfg.Network == nil {
			continue
		}
		for _, vs := range cfg.Network.Vswitch {
			sw := VirtualSwitch{HostName: h.Name(), Name: vs.Name}
			if vs.Spec.Policy != nil {
				sw.security = vs.Spec.Policy.Security
			}
			out = append(out, sw)
		}
	}
	return out, nil
}

// PortGroups lists every standard port group across all hosts.
func (s *Session) PortGroups(ctx context.Context) ([]PortGroup, error) {
	hosts, err := s.Hosts(ctx)
	if err != nil {
		return nil, err
	}
	var out []PortGroup
	for _, h := range hosts {
		cfg := h.mo.Config
		if cfg == nil || cfg.Network == nil {
			continue
		}
		for _, pg := range cfg.Network.Portgroup {
			out = append(out, PortGroup{
				HostName: h.Name(),
				Name:     pg.Spec.Name,
				Vswitch:  pg.Spec.VswitchName,
				VlanID:   pg.Spec.VlanId,
				security: pg.Spec.Policy.Security,
			})
		}
	}
	return out, nil
}

// AllowPromiscuous reports the switch policy value; known is false
// when the policy leaves it unset.
func (v VirtualSwitch) AllowPromiscuous() (value, known bool) {
	return boolPolicy(v.security, func(p *types.HostNetworkSecurityPolicy) *bool { return p.AllowPromiscuous })
}

// MacChanges reports whether MAC address changes are accepted.
func (v VirtualSwitch) MacChanges() (value, known bool) {
	return boolPolicy(v.security, func(p *types.HostNetworkSecurityPolicy) *bool { return p.MacChanges })
}

// ForgedTransmits reports whether forged transmits are accepted.
func (v VirtualSwitch) ForgedTransmits() (value, known bool) {
	return boolPolicy(v.security, func(p *types.HostNetworkSecurityPolicy) *bool { return p.ForgedTransmits })
}

// AllowPromiscuous reports the port group override, falling back to
// unset when the port group inherits from its switch.
func (p PortGroup) AllowPromiscuous() (value, known bool) {
	return boolPolicy(p.security, func(sp *types.HostNetworkSecurityPolicy) *bool { return sp.AllowPromiscuous })
}

func (p PortGroup) MacChanges() (value, known bool) {
	return boolPolicy(p.security, func(sp *types.HostNetworkSecurityPolicy) *bool { return sp.MacChanges })
}

func (p PortGroup) ForgedTransmits() (value, known bool) {
	return boolPolicy(p.security, func(sp *types.HostNetworkSecurityPolicy) *bool { return sp.ForgedTransmits })
}

func boolPolicy(sec *types.HostNetworkSecurityPolicy, pick func(*types.HostNetworkSecurityPolicy) *bool) (bool, bool) {
	if sec == nil {
		return false, false
	}
	v := pick(sec)
	if v == nil {
		return false, false
	}
	return *v, true
}
