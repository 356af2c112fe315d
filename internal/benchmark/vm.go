package benchmark

import (
	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/vsphere"
)

func vmConfigControl(id, title string, sev check.Severity, key, want string) Definition {
	return Definition{
		Control: check.Control{
			ID:       id,
			Title:    title,
			Severity: sev,
			OnEmpty:  check.EmptyCompliant,
		},
		Fetch:    vmConfigTargets(key),
		Classify: VMConfigIs(key, want),
	}
}

func vmDeviceControl(id, title string, sev check.Severity, kind vsphere.DeviceKind, label string) Definition {
	return Definition{
		Control: check.Control{
			ID:       id,
			Title:    title,
			Severity: sev,
			OnEmpty:  check.EmptyCompliant,
		},
		Fetch:    vmDeviceTargets(kind),
		Classify: NoDevices(label),
	}
}

func vmSection() Section {
	return Section{
		ID:   8,
		Name: "Virtual Machines",
		Controls: []Definition{
			vmConfigControl("8.1.1", "Ensure informational messages from the VM to the VMX file are limited",
				check.SeverityL1, "tools.setInfo.sizeLimit", "1048576"),
			vmConfigControl("8.1.2", "Ensure only one remote console connection is permitted to a VM at any time",
				check.SeverityL1, "RemoteDisplay.maxConnections", "1"),
			vmDeviceControl("8.2.1", "Ensure unnecessary floppy devices are disconnected",
				check.SeverityL1, vsphere.DeviceFloppy, "floppy"),
			vmDeviceControl("8.2.2", "Ensure unnecessary CD/DVD devices are disconnected",
				check.SeverityL2, vsphere.DeviceCdrom, "CD/DVD"),
			vmDeviceControl("8.2.3", "Ensure unnecessary parallel ports are disconnected",
				check.SeverityL2, vsphere.DeviceParallelPort, "parallel port"),
			vmDeviceControl("8.2.4", "Ensure unnecessary serial ports are disconnected",
				check.SeverityL2, vsphere.DeviceSerialPort, "serial port"),
			vmDeviceControl("8.2.5", "Ensure unnecessary USB devices are disconnected",
				check.SeverityL1, vsphere.DeviceUSBController, "USB controller"),
			vmConfigControl("8.2.6", "Ensure unauthorized modification and disconnection of devices is disabled",
				check.SeverityL1, "isolation.device.edit.disable", "true"),
			vmConfigControl("8.2.7", "Ensure unauthorized connection of devices is disabled",
				check.SeverityL1, "isolation.device.connectable.disable", "true"),
			vmDeviceControl("8.2.8", "Ensure PCI and PCIe device passthrough is disabled",
				check.SeverityL1, vsphere.DevicePCIPassthrough, "PCI passthrough"),
			manual("8.3.1", "Ensure unnecessary or superfluous functions inside VMs are disabled", check.SeverityL1,
				"guest-internal services must be reviewed inside each guest OS"),
			vmConfigControl("8.4.1", "Ensure the copy operation between the guest and console is disabled",
				check.SeverityL1, "isolation.tools.copy.disable", "true"),
			vmConfigControl("8.4.2", "Ensure the drag and drop operation between the guest and console is disabled",
				check.SeverityL1, "isolation.tools.dnd.disable", "true"),
			vmConfigControl("8.4.3", "Ensure the GUI options setting is disabled",
				check.SeverityL1, "isolation.tools.setGUIOptions.enable", "false"),
			vmConfigControl("8.4.4", "Ensure the paste operation between the guest and console is disabled",
				check.SeverityL1, "isolation.tools.paste.disable", "true"),
			vmConfigControl("8.5.1", "Ensure virtual disk shrinking is disabled",
				check.SeverityL1, "isolation.tools.diskShrink.disable", "true"),
			vmConfigControl("8.5.2", "Ensure virtual disk wiping is disabled",
				check.SeverityL1, "isolation.tools.diskWiper.disable", "true"),
			{
				Control: check.Control{
					ID:       "8.6.1",
					Title:    "Ensure nonpersistent disks are limited",
					Severity: check.SeverityL1,
					OnEmpty:  check.EmptyCompliant,
				},
				Fetch: vmTargets(func(vm vsphere.VirtualMachine) map[string]any {
					return map[string]any{"nonpersistentDisks": vm.IndependentNonpersistentDisks()}
				}),
				Classify: EmptyList("nonpersistentDisks", "independent nonpersistent disks"),
			},
			vmConfigControl("8.7.1", "Ensure the number of VM log files is configured properly",
				check.SeverityL1, "log.keepOld", "10"),
			vmConfigControl("8.7.2", "Ensure host information is not sent to guests",
				check.SeverityL2, "tools.guestlib.enableHostInfo", "false"),
			vmConfigControl("8.7.3", "Ensure VM log file size is limited",
				check.SeverityL1, "log.rotateSize", "1024000"),
		},
	}
}
