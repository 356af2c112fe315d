package benchmark

import (
	"github.com/karimhabush/cis-vsphere/internal/check"
)

func loggingSection() Section {
	return Section{
		ID:   3,
		Name: "Logging",
		Controls: []Definition{
			manual("3.1", "Ensure a centralized location is configured to collect ESXi host core dumps", check.SeverityL1,
				"the core dump target is only exposed through esxcli: esxcli system coredump network get"),
			{
				Control: check.Control{
					ID:       "3.2",
					Title:    "Ensure persistent logging is configured for all ESXi hosts",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("Syslog.global.logDir"),
				Classify: SettingNonEmpty("Syslog.global.logDir"),
			},
			{
				Control: check.Control{
					ID:       "3.3",
					Title:    "Ensure remote logging is configured for ESXi hosts",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("Syslog.global.logHost"),
				Classify: SettingNonEmpty("Syslog.global.logHost"),
			},
		},
	}
}
