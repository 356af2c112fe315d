package benchmark

import (
	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/manifest"
	"github.com/karimhabush/cis-vsphere/internal/vsphere"
)

func installSection(m *manifest.Manifest) Section {
	return Section{
		ID:   1,
		Name: "Install",
		Controls: []Definition{
			{
				Control: check.Control{
					ID:       "1.1",
					Title:    "Ensure ESXi is properly patched",
					Severity: check.SeverityL1,
				},
				Fetch: hostTargets(func(h vsphere.Host) map[string]any {
					version, build := h.Product()
					return map[string]any{"version": version, "build": build}
				}),
				Classify: PatchLevel(m),
			},
			manual("1.2", "Ensure the Image Profile VIB acceptance level is configured properly", check.SeverityL1,
				"the acceptance level is only exposed through esxcli; verify with: esxcli software acceptance get"),
			manual("1.3", "Ensure no unauthorized kernel modules are loaded on the host", check.SeverityL1,
				"module signatures must be reviewed by an operator: esxcli system module list"),
			{
				Control: check.Control{
					ID:       "1.4",
					Title:    "Ensure the default value of individual salt per vm is configured",
					Severity: check.SeverityL2,
				},
				Fetch:    hostOptionTargets("Mem.ShareForceSalting"),
				Classify: SettingEquals("Mem.ShareForceSalting", 2),
			},
		},
	}
}
