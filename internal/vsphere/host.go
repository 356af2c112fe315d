package vsphere

import (
	"context"
	"sort"

	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/types"
)

// Host is a typed, read-only view of one ESXi host's configuration.
type Host struct {
	mo mo.HostSystem
}

// Service is one host daemon's policy and run state (e.g. TSM-SSH).
type Service struct {
	Key     string
	Policy  string
	Running bool
}

// FirewallRuleset is one host firewall rule set and its source
// restrictions.
type FirewallRuleset struct {
	Key         string
	Enabled     bool
	AllowsAllIP bool
}

// ISCSIAdapter is one software or hardware iSCSI HBA's CHAP settings.
type ISCSIAdapter struct {
	Device         string
	ChapEnabled    bool
	ChapType       string
	MutualChapType string
}

// Hosts lists every host in the inventory with its full config.
func (s *Session) Hosts(ctx context.Context) ([]Host, error) {
	var systems []mo.HostSystem
	if err := s.retrieve(ctx, "HostSystem", []string{"name", "config"}, &systems); err != nil {
		return nil, err
	}

	sort.Slice(systems, func(i, j int) bool { return systems[i].Name < systems[j].Name })

	hosts := make([]Host, 0, len(systems))
	for _, sys := range systems {
		hosts = append(hosts, Host{mo: sys})
	}
	return hosts, nil
}

// Name returns the host's inventory name.
func (h Host) Name() string {
	return h.mo.Name
}

// AdvancedOption returns the value of one advanced setting key, or
// ok=false when the key is absent or unset.
func (h Host) AdvancedOption(key string) (any, bool) {
	if h.mo.Config == nil {
		return nil, false
	}
	for _, opt := range h.mo.Config.Option {
		ov := opt.GetOptionValue()
		if ov == nil || ov.Key != key {
			continue
		}
		if ov.Value == nil {
			return nil, false
		}
		return ov.Value, true
	}
	return nil, false
}

// Service returns the named host service.
func (h Host) Service(key string) (Service, bool) {
	if h.mo.Config == nil || h.mo.Config.Service == nil {
		return Service{}, false
	}
	for _, svc := range h.mo.Config.Service.Service {
		if svc.Key == key {
			return Service{Key: svc.Key, Policy: svc.Policy, Running: svc.Running}, true
		}
	}
	return Service{}, false
}

// NTPServers returns the configured NTP servers, nil when none.
func (h Host) NTPServers() []string {
	cfg := h.mo.Config
	if cfg == nil || cfg.DateTimeInfo == nil || cfg.DateTimeInfo.NtpConfig == nil {
		return nil
	}
	return cfg.DateTimeInfo.NtpConfig.Server
}

// LockdownMode returns the host lockdown mode enum value
// (lockdownDisabled, lockdownNormal, lockdownStrict), or "" when the
// host does not report it.
func (h Host) LockdownMode() string {
	if h.mo.Config == nil {
		return ""
	}
	return string(h.mo.Config.LockdownMode)
}

// FirewallRulesets returns the host firewall rule sets.
func (h Host) FirewallRulesets() []FirewallRuleset {
	cfg := h.mo.Config
	if cfg == nil || cfg.Firewall == nil {
		return nil
	}
	out := make([]FirewallRuleset, 0, len(cfg.Firewall.Ruleset))
	for _, rs := range cfg.Firewall.Ruleset {
		fr := FirewallRuleset{Key: rs.Key, Enabled: rs.Enabled}
		if rs.AllowedHosts != nil {
			fr.AllowsAllIP = rs.AllowedHosts.AllIp
		}
		out = append(out, fr)
	}
	return out
}

// Product returns the ESXi version and build of the host.
func (h Host) Product() (version, build string) {
	if h.mo.Config == nil {
		return "", ""
	}
	return h.mo.Config.Product.Version, h.mo.Config.Product.Build
}

// ISCSIAdapters returns the host's iSCSI HBAs, if any.
func (h Host) ISCSIAdapters() []ISCSIAdapter {
	cfg := h.mo.Config
	if cfg == nil || cfg.StorageDevice == nil {
		return nil
	}
	var out []ISCSIAdapter
	for _, hba := range cfg.StorageDevice.HostBusAdapter {
		iscsi, ok := hba.(*types.HostInternetScsiHba)
		if !ok {
			continue
		}
		auth := iscsi.AuthenticationProperties
		out = append(out, ISCSIAdapter{
			Device:         iscsi.Device,
			ChapEnabled:    auth.ChapAuthEnabled,
			ChapType:       auth.ChapAuthenticationType,
			MutualChapType: auth.MutualChapAuthenticationType,
		})
	}
	return out
}
