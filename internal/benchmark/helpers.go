package benchmark

import (
	"context"

	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/vsphere"
)

// hostTargets builds a fetch that maps every host through resolve.
func hostTargets(resolve func(vsphere.Host) map[string]any) func(*vsphere.Session) check.Fetch {
	return func(s *vsphere.Session) check.Fetch {
		return func(ctx context.Context) ([]check.Target, error) {
			hosts, err := s.Hosts(ctx)
			if err != nil {
				return nil, err
			}
			targets := make([]check.Target, 0, len(hosts))
			for _, h := range hosts {
				targets = append(targets, check.NewTarget(h.Name(), resolve(h)))
			}
			return targets, nil
		}
	}
}

// hostOptionTargets resolves one advanced setting per host. Absent
// settings leave the attribute out so predicates see ok=false.
func hostOptionTargets(key string) func(*vsphere.Session) check.Fetch {
	return hostTargets(func(h vsphere.Host) map[string]any {
		if v, ok := h.AdvancedOption(key); ok {
			return map[string]any{key: v}
		}
		return nil
	})
}

// hostServiceTargets resolves one service's policy and run state.
func hostServiceTargets(key string) func(*vsphere.Session) check.Fetch {
	return hostTargets(func(h vsphere.Host) map[string]any {
		svc, ok := h.Service(key)
		if !ok {
			return nil
		}
		return map[string]any{
			"policy":  svc.Policy,
			"running": svc.Running,
		}
	})
}

// vmTargets builds a fetch that maps every VM through resolve.
func vmTargets(resolve func(vsphere.VirtualMachine) map[string]any) func(*vsphere.Session) check.Fetch {
	return func(s *vsphere.Session) check.Fetch {
		return func(ctx context.Context) ([]check.Target, error) {
			vms, err := s.VirtualMachines(ctx)
			if err != nil {
				return nil, err
			}
			targets := make([]check.Target, 0, len(vms))
			for _, vm := range vms {
				targets = append(targets, check.NewTarget(vm.Name(), resolve(vm)))
			}
			return targets, nil
		}
	}
}

// vmConfigTargets resolves one advanced VM setting per VM.
func vmConfigTargets(key string) func(*vsphere.Session) check.Fetch {
	return vmTargets(func(vm vsphere.VirtualMachine) map[string]any {
		if v, ok := vm.ExtraConfig(key); ok {
			return map[string]any{key: v}
		}
		return nil
	})
}

// vmDeviceTargets resolves the attached-device count of one hardware
// class per VM.
func vmDeviceTargets(kind vsphere.DeviceKind) func(*vsphere.Session) check.Fetch {
	return vmTargets(func(vm vsphere.VirtualMachine) map[string]any {
		return map[string]any{"count": int64(vm.DeviceCount(kind))}
	})
}

// switchTargets builds a fetch over every standard vSwitch; target
// names are "host/switch".
func switchTargets(resolve func(vsphere.VirtualSwitch) map[string]any) func(*vsphere.Session) check.Fetch {
	return func(s *vsphere.Session) check.Fetch {
		return func(ctx context.Context) ([]check.Target, error) {
			switches, err := s.VirtualSwitches(ctx)
			if err != nil {
				return nil, err
			}
			targets := make([]check.Target, 0, len(switches))
			for _, sw := range switches {
				targets = append(targets, check.NewTarget(sw.HostName+"/"+sw.Name, resolve(sw)))
			}
			return targets, nil
		}
	}
}

// portGroupTargets builds a fetch over every standard port group;
// target names are "host/portgroup".
func portGroupTargets(resolve func(vsphere.PortGroup) map[string]any) func(*vsphere.Session) check.Fetch {
	return func(s *vsphere.Session) check.Fetch {
		return func(ctx context.Context) ([]check.Target, error) {
			groups, err := s.PortGroups(ctx)
			if err != nil {
				return nil, err
			}
			targets := make([]check.Target, 0, len(groups))
			for _, pg := range groups {
				targets = append(targets, check.NewTarget(pg.HostName+"/"+pg.Name, resolve(pg)))
			}
			return targets, nil
		}
	}
}

// iscsiTargets builds a fetch over every iSCSI adapter across hosts;
// target names are "host/device". Hosts without iSCSI contribute no
// targets.
func iscsiTargets() func(*vsphere.Session) check.Fetch {
	return func(s *vsphere.Session) check.Fetch {
		return func(ctx context.Context) ([]check.Target, error) {
			hosts, err := s.Hosts(ctx)
			if err != nil {
				return nil, err
			}
			var targets []check.Target
			for _, h := range hosts {
				for _, hba := range h.ISCSIAdapters() {
					targets = append(targets, check.NewTarget(h.Name()+"/"+hba.Device, map[string]any{
						"chapEnabled":    hba.ChapEnabled,
						"chapType":       hba.ChapType,
						"mutualChapType": hba.MutualChapType,
					}))
				}
			}
			return targets, nil
		}
	}
}

func boolPolicyAttrs(value, known bool, key string) map[string]any {
	if !known {
		return nil
	}
	return map[string]any{key: value}
}
