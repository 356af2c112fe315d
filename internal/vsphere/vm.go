package vsphere

import (
	"context"
	"fmt"
	"sort"

	"github.com/vmware/govmomi/vim25/mo"
	"github.com/vmware/govmomi/vim25/types"
)

// VirtualMachine is a typed, read-only view of one VM's configuration.
type VirtualMachine struct {
	mo mo.VirtualMachine
}

// DeviceKind names the virtual hardware classes the benchmark cares
// about.
type DeviceKind int

const (
	DeviceFloppy DeviceKind = iota
	DeviceCdrom
	DeviceSerialPort
	DeviceParallelPort
	DeviceUSBController
	DevicePCIPassthrough
)

// VirtualMachines lists every non-template VM with its config.
func (s *Session) VirtualMachines(ctx context.Context) ([]VirtualMachine, error) {
	var machines []mo.VirtualMachine
	if err := s.retrieve(ctx, "VirtualMachine", []string{"name", "config"}, &machines); err != nil {
		return nil, err
	}

	sort.Slice(machines, func(i, j int) bool { return machines[i].Name < machines[j].Name })

	vms := make([]VirtualMachine, 0, len(machines))
	for _, m := range machines {
		if m.Config != nil && m.Config.Template {
			continue
		}
		vms = append(vms, VirtualMachine{mo: m})
	}
	return vms, nil
}

// Name returns the VM's inventory name.
func (v VirtualMachine) Name() string {
	return v.mo.Name
}

// ExtraConfig returns one advanced VM setting rendered as a string, or
// ok=false when the key is absent.
func (v VirtualMachine) ExtraConfig(key string) (string, bool) {
	if v.mo.Config == nil {
		return "", false
	}
	for _, opt := range v.mo.Config.ExtraConfig {
		ov := opt.GetOptionValue()
		if ov == nil || ov.Key != key {
			continue
		}
		if ov.Value == nil {
			return "", false
		}
		return fmt.Sprintf("%v", ov.Value), true
	}
	return "", false
}

// DeviceCount returns how many devices of the given kind are attached.
func (v VirtualMachine) DeviceCount(kind DeviceKind) int {
	if v.mo.Config == nil {
		return 0
	}
	n := 0
	for _, dev := range v.mo.Config.Hardware.Device {
		switch dev.(type) {
		case *types.VirtualFloppy:
			if kind == DeviceFloppy {
				n++
			}
		case *types.VirtualCdrom:
			if kind == DeviceCdrom {
				n++
			}
		case *types.VirtualSerialPort:
			if kind == DeviceSerialPort {
				n++
			}
		case *types.VirtualParallelPort:
			if kind == DeviceParallelPort {
				n++
			}
		case *types.VirtualUSBController, *types.VirtualUSBXHCIController:
			if kind == DeviceUSBController {
				n++
			}
		case *types.VirtualPCIPassthrough:
			if kind == DevicePCIPassthrough {
				n++
			}
		}
	}
	return n
}

// IndependentNonpersistentDisks returns the labels of virtual disks in
// independent_nonpersistent mode.
func (v VirtualMachine) IndependentNonpersistentDisks() []string {
	if v.mo.Config == nil {
		return nil
	}
	var out []string
	for _, dev := range v.mo.Config.Hardware.Device {
		disk, ok := dev.(*types.VirtualDisk)
		if !ok {
			continue
		}
		backing, ok := disk.Backing.(*types.VirtualDiskFlatVer2BackingInfo)
		if !ok {
			continue
		}
		if backing.DiskMode == string(types.VirtualDiskModeIndependent_nonpersistent) {
			label := fmt.Sprintf("disk key %d", disk.Key)
			if disk.DeviceInfo != nil {
				label = disk.DeviceInfo.GetDescription().Label
			}
			out = append(out, label)
		}
	}
	return out
}
