package benchmark

import (
	"testing"

	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/manifest"
)

func target(attrs map[string]any) check.Target {
	return check.NewTarget("esx1", attrs)
}

func TestSettingEquals(t *testing.T) {
	p := SettingEquals("Security.AccountLockFailures", 5)

	if got := p(target(map[string]any{"Security.AccountLockFailures": int64(5)})); got.Status != check.StatusPass {
		t.Fatalf("exact match = %s, want Pass", got.Status)
	}
	if got := p(target(map[string]any{"Security.AccountLockFailures": int32(3)})); got.Status != check.StatusFail {
		t.Fatalf("mismatch = %s, want Failed", got.Status)
	}
	if got := p(target(nil)); got.Status != check.StatusUnknown {
		t.Fatalf("absent = %s, want Unknown", got.Status)
	}
	// Values that arrive as digit strings still compare numerically.
	if got := p(target(map[string]any{"Security.AccountLockFailures": "5"})); got.Status != check.StatusPass {
		t.Fatalf("string-encoded = %s, want Pass", got.Status)
	}
}

func TestSettingAtMost(t *testing.T) {
	p := SettingAtMost("UserVars.DcuiTimeOut", 600)

	if got := p(target(map[string]any{"UserVars.DcuiTimeOut": int64(600)})); got.Status != check.StatusPass {
		t.Fatalf("at limit = %s, want Pass", got.Status)
	}
	if got := p(target(map[string]any{"UserVars.DcuiTimeOut": int64(601)})); got.Status != check.StatusFail {
		t.Fatalf("above limit = %s, want Failed", got.Status)
	}
	if got := p(target(map[string]any{"UserVars.DcuiTimeOut": int64(0)})); got.Status != check.StatusFail {
		t.Fatalf("disabled timeout = %s, want Failed", got.Status)
	}
}

func TestSettingDisabled(t *testing.T) {
	p := SettingDisabled("Config.HostAgent.plugins.solo.enableMob")

	if got := p(target(map[string]any{"Config.HostAgent.plugins.solo.enableMob": false})); got.Status != check.StatusPass {
		t.Fatalf("bool false = %s, want Pass", got.Status)
	}
	if got := p(target(map[string]any{"Config.HostAgent.plugins.solo.enableMob": "FALSE"})); got.Status != check.StatusPass {
		t.Fatalf("string false = %s, want Pass", got.Status)
	}
	if got := p(target(map[string]any{"Config.HostAgent.plugins.solo.enableMob": true})); got.Status != check.StatusFail {
		t.Fatalf("enabled = %s, want Failed", got.Status)
	}
	if got := p(target(nil)); got.Status != check.StatusUnknown {
		t.Fatalf("absent = %s, want Unknown", got.Status)
	}
}

func TestSettingEmpty(t *testing.T) {
	p := SettingEmpty("Net.DVFilterBindIpAddress")

	if got := p(target(nil)); got.Status != check.StatusPass {
		t.Fatalf("absent = %s, want Pass", got.Status)
	}
	if got := p(target(map[string]any{"Net.DVFilterBindIpAddress": ""})); got.Status != check.StatusPass {
		t.Fatalf("empty = %s, want Pass", got.Status)
	}
	if got := p(target(map[string]any{"Net.DVFilterBindIpAddress": "10.0.0.5"})); got.Status != check.StatusFail {
		t.Fatalf("configured = %s, want Failed", got.Status)
	}
}

func TestServiceOff(t *testing.T) {
	p := ServiceOff("SSH")

	if got := p(target(map[string]any{"policy": "off", "running": false})); got.Status != check.StatusPass {
		t.Fatalf("off and stopped = %s, want Pass", got.Status)
	}
	if got := p(target(map[string]any{"policy": "on", "running": false})); got.Status != check.StatusFail {
		t.Fatalf("policy on = %s, want Failed", got.Status)
	}
	if got := p(target(map[string]any{"policy": "off", "running": true})); got.Status != check.StatusFail {
		t.Fatalf("running = %s, want Failed", got.Status)
	}
	if got := p(target(nil)); got.Status != check.StatusUnknown {
		t.Fatalf("unreported = %s, want Unknown", got.Status)
	}
}

func TestLockdownPredicates(t *testing.T) {
	normal := target(map[string]any{"lockdownMode": "lockdownNormal"})
	strict := target(map[string]any{"lockdownMode": "lockdownStrict"})
	disabled := target(map[string]any{"lockdownMode": "lockdownDisabled"})

	if got := LockdownAtLeastNormal()(normal); got.Status != check.StatusPass {
		t.Fatalf("normal under AtLeastNormal = %s, want Pass", got.Status)
	}
	if got := LockdownAtLeastNormal()(strict); got.Status != check.StatusPass {
		t.Fatalf("strict under AtLeastNormal = %s, want Pass", got.Status)
	}
	if got := LockdownAtLeastNormal()(disabled); got.Status != check.StatusFail {
		t.Fatalf("disabled under AtLeastNormal = %s, want Failed", got.Status)
	}
	if got := LockdownStrict()(normal); got.Status != check.StatusFail {
		t.Fatalf("normal under Strict = %s, want Failed", got.Status)
	}
}

func TestRejectPolicy(t *testing.T) {
	p := RejectPolicy("forgedTransmits")

	if got := p(target(map[string]any{"forgedTransmits": false})); got.Status != check.StatusPass {
		t.Fatalf("reject = %s, want Pass", got.Status)
	}
	if got := p(target(map[string]any{"forgedTransmits": true})); got.Status != check.StatusFail {
		t.Fatalf("accept = %s, want Failed", got.Status)
	}
	if got := p(target(nil)); got.Status != check.StatusUnknown {
		t.Fatalf("inherited = %s, want Unknown", got.Status)
	}
}

func TestVMConfigIs_AbsentFails(t *testing.T) {
	p := VMConfigIs("isolation.tools.copy.disable", "true")

	if got := p(target(map[string]any{"isolation.tools.copy.disable": "TRUE"})); got.Status != check.StatusPass {
		t.Fatalf("case-insensitive match = %s, want Pass", got.Status)
	}
	if got := p(target(map[string]any{"isolation.tools.copy.disable": "false"})); got.Status != check.StatusFail {
		t.Fatalf("wrong value = %s, want Failed", got.Status)
	}
	if got := p(target(nil)); got.Status != check.StatusFail {
		t.Fatalf("absent hardening value = %s, want Failed", got.Status)
	}
}

func TestVLANPredicates(t *testing.T) {
	if got := VLANIsNot(1, "native")(target(map[string]any{"vlan": int64(1)})); got.Status != check.StatusFail {
		t.Fatalf("native VLAN = %s, want Failed", got.Status)
	}
	if got := VLANIsNot(1, "native")(target(map[string]any{"vlan": int64(20)})); got.Status != check.StatusPass {
		t.Fatalf("VLAN 20 = %s, want Pass", got.Status)
	}
	if got := VLANNotReserved()(target(map[string]any{"vlan": int64(1010)})); got.Status != check.StatusFail {
		t.Fatalf("reserved VLAN 1010 = %s, want Failed", got.Status)
	}
	if got := VLANNotReserved()(target(map[string]any{"vlan": int64(100)})); got.Status != check.StatusPass {
		t.Fatalf("VLAN 100 = %s, want Pass", got.Status)
	}
	if got := VGTOnlyWhenIntended()(target(map[string]any{"vlan": int64(4095)})); got.Status != check.StatusUnknown {
		t.Fatalf("VLAN 4095 = %s, want Unknown pending operator confirmation", got.Status)
	}
}

func TestBidirectionalCHAP(t *testing.T) {
	p := BidirectionalCHAP()

	good := map[string]any{"chapEnabled": true, "chapType": "chapRequired", "mutualChapType": "chapRequired"}
	if got := p(target(good)); got.Status != check.StatusPass {
		t.Fatalf("mutual CHAP required = %s, want Pass", got.Status)
	}
	oneWay := map[string]any{"chapEnabled": true, "chapType": "chapRequired", "mutualChapType": "chapProhibited"}
	if got := p(target(oneWay)); got.Status != check.StatusFail {
		t.Fatalf("one-way CHAP = %s, want Failed", got.Status)
	}
	if got := p(target(map[string]any{"chapEnabled": false})); got.Status != check.StatusFail {
		t.Fatalf("CHAP disabled = %s, want Failed", got.Status)
	}
}

func TestPatchLevel(t *testing.T) {
	m := &manifest.Manifest{Entries: []manifest.Entry{
		{Component: "esxi", Version: "8.0.2", Build: "22380479"},
	}}
	p := PatchLevel(m)

	current := map[string]any{"version": "8.0.2", "build": "22380479"}
	if got := p(target(current)); got.Status != check.StatusPass {
		t.Fatalf("current build = %s, want Pass", got.Status)
	}
	stale := map[string]any{"version": "8.0.2", "build": "21495797"}
	if got := p(target(stale)); got.Status != check.StatusFail {
		t.Fatalf("stale build = %s, want Failed", got.Status)
	}
	uncovered := map[string]any{"version": "7.0.3", "build": "21930508"}
	if got := p(target(uncovered)); got.Status != check.StatusUnknown {
		t.Fatalf("uncovered release = %s, want Unknown", got.Status)
	}
	if got := PatchLevel(nil)(target(current)); got.Status != check.StatusUnknown {
		t.Fatalf("nil manifest = %s, want Unknown", got.Status)
	}
}
