package benchmark

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/manifest"
)

// Every expected-value comparison in the benchmark is a named,
// session-independent predicate built here, so each can be tested
// against plain targets.

// SettingEquals passes when the numeric setting equals want. A host
// that does not report the setting yields Unknown.
func SettingEquals(key string, want int64) check.Classify {
	return func(t check.Target) check.Outcome {
		v, ok := intAttr(t, key)
		if !ok {
			return check.Unknown(key + " is not reported by the host")
		}
		if v != want {
			return check.Fail(fmt.Sprintf("%s = %d, want %d", key, v, want))
		}
		return check.Pass()
	}
}

// SettingAtMost passes when the setting is positive and at most max.
// Zero disables the mechanism under audit and fails.
func SettingAtMost(key string, max int64) check.Classify {
	return func(t check.Target) check.Outcome {
		v, ok := intAttr(t, key)
		if !ok {
			return check.Unknown(key + " is not reported by the host")
		}
		if v <= 0 {
			return check.Fail(fmt.Sprintf("%s = %d; the timeout is disabled", key, v))
		}
		if v > max {
			return check.Fail(fmt.Sprintf("%s = %d, want at most %d", key, v, max))
		}
		return check.Pass()
	}
}

// SettingDisabled passes when a boolean-ish setting is off. Handles
// the bool and string encodings the platform uses interchangeably.
func SettingDisabled(key string) check.Classify {
	return func(t check.Target) check.Outcome {
		raw, ok := t.Attr(key)
		if !ok {
			return check.Unknown(key + " is not reported by the host")
		}
		switch v := raw.(type) {
		case bool:
			if v {
				return check.Fail(key + " is enabled")
			}
			return check.Pass()
		case string:
			if strings.EqualFold(strings.TrimSpace(v), "false") {
				return check.Pass()
			}
			return check.Fail(fmt.Sprintf("%s = %q, want false", key, v))
		default:
			return check.Unknown(fmt.Sprintf("%s has unexpected type %T", key, raw))
		}
	}
}

// SettingEmpty passes when the setting is absent or empty, for
// controls of the form "X is not configured if not used".
func SettingEmpty(key string) check.Classify {
	return func(t check.Target) check.Outcome {
		s, ok := t.StringAttr(key)
		if !ok || strings.TrimSpace(s) == "" {
			return check.Pass()
		}
		return check.Fail(fmt.Sprintf("%s = %q, want unset", key, s))
	}
}

// SettingNonEmpty passes when the setting is present and non-empty.
func SettingNonEmpty(key string) check.Classify {
	return func(t check.Target) check.Outcome {
		s, ok := t.StringAttr(key)
		if !ok || strings.TrimSpace(s) == "" {
			return check.Fail(key + " is not configured")
		}
		return check.Pass()
	}
}

// SettingStringEquals passes when the string setting equals want.
func SettingStringEquals(key, want string) check.Classify {
	return func(t check.Target) check.Outcome {
		s, ok := t.StringAttr(key)
		if !ok {
			return check.Unknown(key + " is not reported by the host")
		}
		if strings.TrimSpace(s) != want {
			return check.Fail(fmt.Sprintf("%s = %q, want %q", key, s, want))
		}
		return check.Pass()
	}
}

// NonEmptyList passes when the named list attribute has at least one
// element.
func NonEmptyList(key, failDetail string) check.Classify {
	return func(t check.Target) check.Outcome {
		items, ok := t.StringsAttr(key)
		if !ok || len(items) == 0 {
			return check.Fail(failDetail)
		}
		return check.Pass()
	}
}

// EmptyList passes when the named list attribute is absent or empty
// and fails naming the offending entries otherwise.
func EmptyList(key, failPrefix string) check.Classify {
	return func(t check.Target) check.Outcome {
		items, ok := t.StringsAttr(key)
		if !ok || len(items) == 0 {
			return check.Pass()
		}
		return check.Fail(failPrefix + ": " + strings.Join(items, ", "))
	}
}

// ServiceOff passes when the service policy is "off" and the service
// is not running.
func ServiceOff(serviceName string) check.Classify {
	return func(t check.Target) check.Outcome {
		policy, ok := t.StringAttr("policy")
		if !ok {
			return check.Unknown(serviceName + " service is not reported by the host")
		}
		running, _ := t.BoolAttr("running")
		if policy != "off" {
			return check.Fail(fmt.Sprintf("%s start policy is %q, want off", serviceName, policy))
		}
		if running {
			return check.Fail(serviceName + " is currently running")
		}
		return check.Pass()
	}
}

// LockdownAtLeastNormal passes for normal or strict lockdown.
func LockdownAtLeastNormal() check.Classify {
	return func(t check.Target) check.Outcome {
		mode, ok := t.StringAttr("lockdownMode")
		if !ok || mode == "" {
			return check.Unknown("lockdown mode is not reported by the host")
		}
		if mode == "lockdownNormal" || mode == "lockdownStrict" {
			return check.Pass()
		}
		return check.Fail("lockdown mode is " + mode)
	}
}

// LockdownStrict passes only for strict lockdown.
func LockdownStrict() check.Classify {
	return func(t check.Target) check.Outcome {
		mode, ok := t.StringAttr("lockdownMode")
		if !ok || mode == "" {
			return check.Unknown("lockdown mode is not reported by the host")
		}
		if mode == "lockdownStrict" {
			return check.Pass()
		}
		return check.Fail("lockdown mode is " + mode)
	}
}

// RejectPolicy passes when the named switch/port-group security flag
// is false (reject). Inherited or unreported policies yield Unknown.
func RejectPolicy(key string) check.Classify {
	return func(t check.Target) check.Outcome {
		accept, ok := t.BoolAttr(key)
		if !ok {
			return check.Unknown(key + " policy is not reported")
		}
		if accept {
			return check.Fail(key + " is set to accept, want reject")
		}
		return check.Pass()
	}
}

// VMConfigIs passes when the VM advanced setting equals want; the
// hardening values must be explicitly present, so absence fails.
func VMConfigIs(key, want string) check.Classify {
	return func(t check.Target) check.Outcome {
		s, ok := t.StringAttr(key)
		if !ok {
			return check.Fail(key + " is not set")
		}
		if !strings.EqualFold(strings.TrimSpace(s), want) {
			return check.Fail(fmt.Sprintf("%s = %q, want %q", key, s, want))
		}
		return check.Pass()
	}
}

// NoDevices passes when the counted hardware class has no instances.
func NoDevices(label string) check.Classify {
	return func(t check.Target) check.Outcome {
		n, ok := t.IntAttr("count")
		if !ok {
			return check.Unknown("device inventory is not reported")
		}
		if n > 0 {
			return check.Fail(fmt.Sprintf("%d %s device(s) attached", n, label))
		}
		return check.Pass()
	}
}

// VLANIsNot fails for port groups on the given VLAN.
func VLANIsNot(vlan int64, reason string) check.Classify {
	return func(t check.Target) check.Outcome {
		id, ok := t.IntAttr("vlan")
		if !ok {
			return check.Unknown("VLAN ID is not reported")
		}
		if id == vlan {
			return check.Fail(fmt.Sprintf("port group is on VLAN %d: %s", id, reason))
		}
		return check.Pass()
	}
}

// VLANNotReserved fails for port groups on ranges commonly reserved
// by upstream physical switches.
func VLANNotReserved() check.Classify {
	return func(t check.Target) check.Outcome {
		id, ok := t.IntAttr("vlan")
		if !ok {
			return check.Unknown("VLAN ID is not reported")
		}
		if (id >= 1001 && id <= 1024) || (id >= 3968 && id <= 4047) || id == 4094 {
			return check.Fail(fmt.Sprintf("VLAN %d falls in a range reserved by upstream switches", id))
		}
		return check.Pass()
	}
}

// VGTOnlyWhenIntended passes for any VLAN except 4095, which needs an
// operator to confirm virtual guest tagging is intended.
func VGTOnlyWhenIntended() check.Classify {
	return func(t check.Target) check.Outcome {
		id, ok := t.IntAttr("vlan")
		if !ok {
			return check.Unknown("VLAN ID is not reported")
		}
		if id == 4095 {
			return check.Unknown("VLAN 4095 enables virtual guest tagging; confirm it is required")
		}
		return check.Pass()
	}
}

// BidirectionalCHAP passes when an iSCSI adapter requires mutual CHAP.
func BidirectionalCHAP() check.Classify {
	return func(t check.Target) check.Outcome {
		enabled, _ := t.BoolAttr("chapEnabled")
		if !enabled {
			return check.Fail("CHAP authentication is disabled")
		}
		mutual, _ := t.StringAttr("mutualChapType")
		if mutual != "chapRequired" {
			return check.Fail(fmt.Sprintf("mutual CHAP is %q, want chapRequired", mutual))
		}
		return check.Pass()
	}
}

// PatchLevel compares a host's reported build against the manifest
// entry for its release version. A missing manifest or an uncovered
// version yields Unknown.
func PatchLevel(m *manifest.Manifest) check.Classify {
	return func(t check.Target) check.Outcome {
		if m == nil {
			return check.Unknown("no patch manifest supplied; pass one with --manifest")
		}
		version, _ := t.StringAttr("version")
		build, _ := t.StringAttr("build")
		if version == "" || build == "" {
			return check.Unknown("host does not report its product version")
		}
		want, ok := m.ExpectedBuild(version)
		if !ok {
			return check.Unknown(fmt.Sprintf("manifest does not cover release %s", version))
		}
		if build != want {
			return check.Fail(fmt.Sprintf("build %s for release %s, manifest expects %s", build, version, want))
		}
		return check.Pass()
	}
}

func intAttr(t check.Target, key string) (int64, bool) {
	if v, ok := t.IntAttr(key); ok {
		return v, true
	}
	if s, ok := t.StringAttr(key); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
