package benchmark

import (
	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/vsphere"
)

func networkSection() Section {
	vlanAttrs := portGroupTargets(func(pg vsphere.PortGroup) map[string]any {
		return map[string]any{"vlan": int64(pg.VlanID)}
	})

	return Section{
		ID:   7,
		Name: "vNetwork",
		Controls: []Definition{
			{
				Control: check.Control{
					ID:       "7.1",
					Title:    "Ensure the vSwitch Forged Transmits policy is set to reject",
					Severity: check.SeverityL1,
					OnEmpty:  check.EmptyCompliant,
				},
				Fetch: switchTargets(func(sw vsphere.VirtualSwitch) map[string]any {
					v, known := sw.ForgedTransmits()
					return boolPolicyAttrs(v, known, "forgedTransmits")
				}),
				Classify: RejectPolicy("forgedTransmits"),
			},
			{
				Control: check.Control{
					ID:       "7.2",
					Title:    "Ensure the vSwitch MAC Address Change policy is set to reject",
					Severity: check.SeverityL1,
					OnEmpty:  check.EmptyCompliant,
				},
				Fetch: switchTargets(func(sw vsphere.VirtualSwitch) map[string]any {
					v, known := sw.MacChanges()
					return boolPolicyAttrs(v, known, "macChanges")
				}),
				Classify: RejectPolicy("macChanges"),
			},
			{
				Control: check.Control{
					ID:       "7.3",
					Title:    "Ensure the vSwitch Promiscuous Mode policy is set to reject",
					Severity: check.SeverityL1,
					OnEmpty:  check.EmptyCompliant,
				},
				Fetch: switchTargets(func(sw vsphere.VirtualSwitch) map[string]any {
					v, known := sw.AllowPromiscuous()
					return boolPolicyAttrs(v, known, "allowPromiscuous")
				}),
				Classify: RejectPolicy("allowPromiscuous"),
			},
			{
				Control: check.Control{
					ID:       "7.4",
					Title:    "Ensure port groups are not configured to the value of the native VLAN",
					Severity: check.SeverityL1,
					OnEmpty:  check.EmptyCompliant,
				},
				Fetch:    vlanAttrs,
				Classify: VLANIsNot(1, "the native VLAN"),
			},
			{
				Control: check.Control{
					ID:       "7.5",
					Title:    "Ensure port groups are not configured to VLAN values reserved by upstream physical switches",
					Severity: check.SeverityL1,
					OnEmpty:  check.EmptyCompliant,
				},
				Fetch:    vlanAttrs,
				Classify: VLANNotReserved(),
			},
			{
				Control: check.Control{
					ID:       "7.6",
					Title:    "Ensure port groups are not configured to VLAN 4095 except for Virtual Guest Tagging",
					Severity: check.SeverityL1,
					OnEmpty:  check.EmptyCompliant,
				},
				Fetch:    vlanAttrs,
				Classify: VGTOnlyWhenIntended(),
			},
			manual("7.7", "Ensure Virtual Distributed Switch Netflow traffic is only sent to authorized collector addresses", check.SeverityL2,
				"Netflow collectors must be compared against an approved list by an operator"),
			manual("7.8", "Ensure port-level configuration overrides are disabled", check.SeverityL1,
				"distributed port overrides must be reviewed per port group by an operator"),
		},
	}
}
