package benchmark

import (
	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/vsphere"
)

func communicationSection() Section {
	return Section{
		ID:   2,
		Name: "Communication",
		Controls: []Definition{
			{
				Control: check.Control{
					ID:       "2.1",
					Title:    "Ensure NTP time synchronization is configured properly",
					Severity: check.SeverityL1,
				},
				Fetch: hostTargets(func(h vsphere.Host) map[string]any {
					return map[string]any{"ntpServers": h.NTPServers()}
				}),
				Classify: NonEmptyList("ntpServers", "no NTP servers configured"),
			},
			{
				Control: check.Control{
					ID:       "2.2",
					Title:    "Ensure the ESXi host firewall is configured to restrict access to services",
					Severity: check.SeverityL1,
				},
				Fetch: hostTargets(func(h vsphere.Host) map[string]any {
					var open []string
					for _, rs := range h.FirewallRulesets() {
						if rs.Enabled && rs.AllowsAllIP {
							open = append(open, rs.Key)
						}
					}
					return map[string]any{"openRulesets": open}
				}),
				Classify: EmptyList("openRulesets", "rulesets open to all source addresses"),
			},
			{
				Control: check.Control{
					ID:       "2.3",
					Title:    "Ensure the Managed Object Browser (MOB) is disabled",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("Config.HostAgent.plugins.solo.enableMob"),
				Classify: SettingDisabled("Config.HostAgent.plugins.solo.enableMob"),
			},
			manual("2.4", "Ensure the default self-signed certificate for ESXi communication is not used", check.SeverityL2,
				"certificate issuers must be compared against the organization's CA by an operator"),
			manual("2.5", "Ensure SNMP is configured properly", check.SeverityL1,
				"SNMP community and trap targets are only exposed through esxcli: esxcli system snmp get"),
			{
				Control: check.Control{
					ID:       "2.6",
					Title:    "Ensure dvfilter API is not configured if not used",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("Net.DVFilterBindIpAddress"),
				Classify: SettingEmpty("Net.DVFilterBindIpAddress"),
			},
			manual("2.7", "Ensure expired and revoked SSL certificates are removed from the ESXi server", check.SeverityL1,
				"certificate validity must be reviewed by an operator"),
			manual("2.8", "Ensure vSphere Authentication Proxy is used when adding hosts to Active Directory", check.SeverityL1,
				"domain join method is not exposed through the inventory API"),
			manual("2.9", "Ensure VDS health check is disabled", check.SeverityL2,
				"distributed switch configuration must be reviewed per switch by an operator"),
		},
	}
}
