package benchmark

import (
	"github.com/karimhabush/cis-vsphere/internal/check"
)

func accessSection() Section {
	return Section{
		ID:   4,
		Name: "Access",
		Controls: []Definition{
			manual("4.1", "Ensure a non-root user account exists for local admin access", check.SeverityL1,
				"local account inventory must be reviewed by an operator"),
			{
				Control: check.Control{
					ID:       "4.2",
					Title:    "Ensure passwords are required to be complex",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("Security.PasswordQualityControl"),
				Classify: SettingNonEmpty("Security.PasswordQualityControl"),
			},
			{
				Control: check.Control{
					ID:       "4.3",
					Title:    "Ensure the maximum failed login attempts is set to 5",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("Security.AccountLockFailures"),
				Classify: SettingEquals("Security.AccountLockFailures", 5),
			},
			{
				Control: check.Control{
					ID:       "4.4",
					Title:    "Ensure account lockout is set to 15 minutes",
					Severity: check.SeverityL1,
				},
				Fetch:    hostOptionTargets("Security.AccountUnlockTime"),
				Classify: SettingEquals("Security.AccountUnlockTime", 900),
			},
			{
				Control: check.Control{
					ID:       "4.5",
					Title:    "Ensure previous 5 passwords are prohibited",
					Severity: check.SeverityL2,
				},
				Fetch:    hostOptionTargets("Security.PasswordHistory"),
				Classify: SettingEquals("Security.PasswordHistory", 5),
			},
			manual("4.6", "Ensure Active Directory is used for local user authentication", check.SeverityL2,
				"directory membership must be reviewed against the organization's identity policy"),
			manual("4.7", "Ensure only authorized users and groups belong to the esxAdminsGroup group", check.SeverityL1,
				"group membership lives in Active Directory, outside the inventory API"),
			manual("4.8", "Ensure the Exception Users list is properly configured", check.SeverityL2,
				"exception users must be compared against an approved list by an operator"),
		},
	}
}
