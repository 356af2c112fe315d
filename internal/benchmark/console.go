package benchmark

import (
	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/vsphere"
)

func consoleSection() Section {
	lockdownAttrs := hostTargets(func(h vsphere.Host) map[string]any {
		if mode := h.LockdownMode(); mode != "" {
			return map[string]any{"lockdownMode": mode}
		}
		return nil
	})

	return Section{
		ID:   5,
		Name: "Console",
		Controls: []Definition{
			{
				Control: check.Control{
					ID:       "5.1",
					Title:    "Ensure the DCUI timeout is set to 600 seconds or less",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("UserVars.DcuiTimeOut"),
				Classify: SettingAtMost("UserVars.DcuiTimeOut", 600),
			},
			{
				Control: check.Control{
					ID:       "5.2",
					Title:    "Ensure the ESXi shell is disabled",
					Severity: check.SeverityL1,
				},
				Fetch:    hostServiceTargets("TSM"),
				Classify: ServiceOff("ESXi shell"),
			},
			{
				Control: check.Control{
					ID:       "5.3",
					Title:    "Ensure SSH is disabled",
					Severity: check.SeverityL1,
				},
				Fetch:    hostServiceTargets("TSM-SSH"),
				Classify: ServiceOff("SSH"),
			},
			manual("5.4", "Ensure CIM access is limited", check.SeverityL1,
				"CIM service accounts must be reviewed by an operator"),
			{
				Control: check.Control{
					ID:       "5.5",
					Title:    "Ensure Normal Lockdown mode is enabled",
					Severity: check.SeverityL1,
				},
				Fetch:    lockdownAttrs,
				Classify: LockdownAtLeastNormal(),
			},
			{
				Control: check.Control{
					ID:       "5.6",
					Title:    "Ensure Strict Lockdown mode is enabled",
					Severity: check.SeverityL2,
				},
				Fetch:    lockdownAttrs,
				Classify: LockdownStrict(),
			},
			manual("5.7", "Ensure the SSH authorized_keys file is empty", check.SeverityL1,
				"the authorized_keys file is only reachable over the host filesystem"),
			{
				Control: check.Control{
					ID:       "5.8",
					Title:    "Ensure idle ESXi shell and SSH sessions time out after 300 seconds or less",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("UserVars.ESXiShellInteractiveTimeOut"),
				Classify: SettingAtMost("UserVars.ESXiShellInteractiveTimeOut", 300),
			},
			{
				Control: check.Control{
					ID:       "5.9",
					Title:    "Ensure the shell services timeout is set to 1 hour or less",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("UserVars.ESXiShellTimeOut"),
				Classify: SettingAtMost("UserVars.ESXiShellTimeOut", 3600),
			},
			{
				Control: check.Control{
					ID:       "5.10",
					Title:    "Ensure DCUI access is limited to root",
					Severity: check.SeverityL2,
				},
				Fetch:    hostOptionTargets("DCUI.Access"),
				Classify: SettingStringEquals("DCUI.Access", "root"),
			},
		},
	}
}
