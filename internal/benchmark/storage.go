package benchmark

import (
	"github.com/karimhabush/cis-vsphere/internal/check"
)

func storageSection() Section {
	return Section{
		ID:   6,
		Name: "Storage",
		Controls: []Definition{
			{
				Control: check.Control{
					ID:       "6.1",
					Title:    "Ensure bidirectional CHAP authentication for iSCSI traffic is enabled",
					Severity: check.SeverityL1,
					// No iSCSI adapters means no iSCSI traffic to protect.
					OnEmpty: check.EmptyCompliant,
				},
				Fetch:    iscsiTargets(),
				Classify: BidirectionalCHAP(),
			},
			manual("6.2", "Ensure the uniqueness of CHAP authentication secrets", check.SeverityL1,
				"secrets cannot be read back through the API; uniqueness must be attested by an operator"),
			manual("6.3", "Ensure storage area network (SAN) resources are segregated properly", check.SeverityL2,
				"zoning lives in the SAN fabric, outside the vSphere inventory"),
		},
	}
}
