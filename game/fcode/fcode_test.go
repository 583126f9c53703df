package fcode

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tHost() Host { return NewHost(THost, 3, 22, 26) }
func pHostOld() Host { return NewHost(PHost, 3, 4, 9) }
func pHostNewMinor() Host { return NewHost(PHost, 3, 4, 11) }
func pHostOld4() Host { return NewHost(PHost, 4, 0, 7) }
func pHostNew4() Host { return NewHost(PHost, 4, 0, 8) }
func nuHost() Host { return NewHost(NuHost, 1, 0, 0) }

func TestIsNumeric_THost(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"three digits", "123", true},
		{"leading minus rejected", "-11", false},
		{"two digits rejected", "12", false},
		{"non digit rejected", "1a2", false},
		{"four digits rejected", "1234", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsNumeric(tc.code, tHost()))
		})
	}
}

func TestIsNumeric_PHost_VersionBranches(t *testing.T) {
	tests := []struct {
		name string
		host Host
		code string
		want bool
	}{
		{"3.4.9 exact three digits ok", pHostOld(), "007", true},
		{"3.4.9 short digits rejected", pHostOld(), "7", false},
		{"3.4.9 signed three ok", pHostOld(), "-12", true},
		{"3.4.9 signed two rejected (not exactly 3 chars)", pHostOld(), "-1", false},
		{"3.4.11 short digits tolerated", pHostNewMinor(), "7", true},
		{"3.4.11 spaced digits tolerated", pHostNewMinor(), " 7 ", true},
		{"4.0.7 short digits rejected", pHostOld4(), "7", false},
		{"4.0.8 short digits tolerated", pHostNew4(), "7", true},
		{"4.0.8 signed short tolerated", pHostNew4(), "-7", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsNumeric(tc.code, tc.host))
		})
	}
}

func TestGetNumericValue(t *testing.T) {
	assert.Equal(t, 123, GetNumericValue("123", tHost()))
	assert.Equal(t, numericSentinel, GetNumericValue("abc", tHost()))
	assert.Equal(t, -12, GetNumericValue("-12", pHostOld()))
	assert.Equal(t, numericSentinel, GetNumericValue("-11", tHost()))
}

func TestParseFlagsAndRaceMask(t *testing.T) {
	flags, mask := parseFlags("sp+3")
	assert.True(t, flags&ShipCode != 0)
	assert.True(t, flags&PlanetCode != 0)
	assert.True(t, mask.Allows(3))
	assert.False(t, mask.Allows(4))

	flags2, mask2 := parseFlags("s-2+9")
	assert.True(t, flags2&ShipCode != 0)
	assert.True(t, mask2.Exclude)
	assert.False(t, mask2.Allows(9))
	assert.True(t, mask2.Allows(3))
}

func TestRaceMask_InactiveAllowsEverything(t *testing.T) {
	var m RaceMask
	for r := 1; r <= 11; r++ {
		assert.True(t, m.Allows(r))
	}
	assert.True(t, m.Allows(0))
}

func TestCompareCodeSortOrder(t *testing.T) {
	codes := []string{"zzz", "100", "ABC", "abc", "!!!", "001"}
	l := NewList()
	for _, c := range codes {
		l.Add(&FriendlyCode{Code: c})
	}
	l.Sort()
	var got []string
	for _, c := range l.All() {
		got = append(got, c.Code)
	}
	assert.Equal(t, []string{"001", "100", "ABC", "abc", "zzz", "!!!"}, got)
}

func TestLoad(t *testing.T) {
	data := `; comment
cln,s,Clone ship
ecm,sp,Electronic countermeasure
`
	l := NewList()
	l.Load(strings.NewReader(data))
	assert.Equal(t, 2, l.Size())
	c := l.FindCodeByName("cln")
	if assert.NotNil(t, c) {
		assert.Equal(t, ShipCode, c.Flags)
	}
}

func TestLoad_MalformedLineSkipped(t *testing.T) {
	data := "good,s,A ship code\nbadline\n,s,empty code\n"
	l := NewList()
	l.Load(strings.NewReader(data))
	assert.Equal(t, 1, l.Size())
}

func TestLoad_TruncatesOverlongCode(t *testing.T) {
	data := "toolong,s,desc\n"
	l := NewList()
	l.Load(strings.NewReader(data))
	c := l.FindCodeByName("too")
	assert.NotNil(t, c)
}

func TestDescription_PlayerSubstitution(t *testing.T) {
	f := &FriendlyCode{DescriptionTemplate: "Gives %1 a bonus against %2"}
	got := f.Description(map[int]string{1: "the Lizards", 2: "the Crystals"})
	assert.Equal(t, "Gives the Lizards a bonus against the Crystals", got)

	got2 := f.Description(map[int]string{1: "the Lizards"})
	assert.Equal(t, "Gives the Lizards a bonus against 2", got2)
}

func TestLoadExtraCodes_DedupAndOrder(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("abc,s,Already present\n"))
	l.LoadExtraCodes(strings.NewReader("abc xyz"))

	assert.Equal(t, 2, l.Size())
	assert.True(t, l.IsExtra("abcdef"))
	assert.True(t, l.IsExtra("xyzzy"))
	assert.False(t, l.IsExtra("qqq"))

	xyz := l.FindCodeByName("xyz")
	if assert.NotNil(t, xyz) {
		assert.True(t, xyz.Flags&PrefixCode != 0)
	}
}

func TestIsSpecial(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("cln,s,Clone\n"))
	l.LoadExtraCodes(strings.NewReader("mzz"))

	assert.True(t, l.IsSpecial("cln", false))
	assert.False(t, l.IsSpecial("CLN", false))
	assert.True(t, l.IsSpecial("CLN", true))
	assert.True(t, l.IsSpecial("mzzabc", false))
	assert.False(t, l.IsSpecial("abc", false))
}

func TestIsUniversalMinefieldFCode(t *testing.T) {
	l := NewList()
	assert.True(t, l.IsUniversalMinefieldFCode("mf1", false, tHost()))
	assert.True(t, l.IsUniversalMinefieldFCode("MF1", false, tHost()))
	assert.False(t, l.IsUniversalMinefieldFCode("MF1", false, pHostOld()))
	assert.True(t, l.IsUniversalMinefieldFCode("MF1", true, pHostOld()))
	assert.False(t, l.IsUniversalMinefieldFCode("mf", false, tHost()))
}

func TestIsAllowedRandomCode(t *testing.T) {
	l := NewList()
	assert.True(t, l.IsAllowedRandomCode("abc", tHost()))
	assert.False(t, l.IsAllowedRandomCode("aab", tHost()))
	assert.False(t, l.IsAllowedRandomCode("123", tHost()))
	assert.False(t, l.IsAllowedRandomCode("xab", tHost()))
	assert.False(t, l.IsAllowedRandomCode("mf1", tHost()))
	assert.False(t, l.IsAllowedRandomCode("ab", tHost()))

	l.Load(strings.NewReader("cln,s,Clone\n"))
	assert.False(t, l.IsAllowedRandomCode("cln", tHost()))
}

func TestGenerateRandomCode_MostlyBlocked(t *testing.T) {
	l := NewList()
	var extras strings.Builder
	for c := byte(0x20); c <= 0x7e; c++ {
		if c == '3' || c == '?' || c == '#' {
			continue
		}
		extras.WriteByte(c)
		extras.WriteByte(' ')
	}
	l.LoadExtraCodes(strings.NewReader(extras.String()))

	rng := rand.New(rand.NewSource(1))
	code := l.GenerateRandomCode(rng, tHost())
	assert.Len(t, code, 3)
	assert.Equal(t, byte('3'), code[0])
}

func TestGenerateRandomCode_AllBlocked_Terminates(t *testing.T) {
	l := NewList()
	var extras strings.Builder
	for c := byte(0x20); c <= 0x7e; c++ {
		extras.WriteByte(c)
		extras.WriteByte(' ')
	}
	l.LoadExtraCodes(strings.NewReader(extras.String()))

	rng := rand.New(rand.NewSource(2))
	code := l.GenerateRandomCode(rng, tHost())
	assert.Len(t, code, 3)
}

func TestGenerateRandomCode_NeverNumericOrSpecial(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("cln,s,Clone\n"))
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		code := l.GenerateRandomCode(rng, Pessimistic)
		assert.True(t, l.IsAllowedRandomCode(code, Pessimistic), "code %q should be allowed", code)
	}
}

func TestIsAcceptedFriendlyCode_Unknown_DefaultPolicy(t *testing.T) {
	l := NewList()
	shipFilter := FilterFromShip(1, false, false)
	key := RegistrationKey{Registered: false}

	assert.True(t, l.IsAcceptedFriendlyCode("zzz", shipFilter, key, DefaultAvailable))
	assert.False(t, l.IsAcceptedFriendlyCode("zzz", shipFilter, key, DefaultUnavailable))
	assert.False(t, l.IsAcceptedFriendlyCode("zzz", shipFilter, key, DefaultRegistered))

	regKey := RegistrationKey{Registered: true}
	assert.True(t, l.IsAcceptedFriendlyCode("zzz", shipFilter, regKey, DefaultRegistered))
}

func TestIsAcceptedFriendlyCode_PrefixAlwaysRejected(t *testing.T) {
	l := NewList()
	l.LoadExtraCodes(strings.NewReader("mzz"))
	shipFilter := FilterFromShip(1, false, false)
	key := RegistrationKey{}
	assert.False(t, l.IsAcceptedFriendlyCode("mzz", shipFilter, key, DefaultAvailable))
}

func TestIsAcceptedFriendlyCode_TypedEntries(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("cln,s,Clone ship\n"))
	key := RegistrationKey{}

	assert.True(t, l.IsAcceptedFriendlyCode("cln", FilterFromShip(1, false, false), key, DefaultAvailable))
	assert.False(t, l.IsAcceptedFriendlyCode("cln", FilterFromPlanet(1, false), key, DefaultAvailable))
	assert.False(t, l.IsAcceptedFriendlyCode("cln", Filter{Kind: KindNone}, key, DefaultAvailable))
}

func TestIsAcceptedFriendlyCode_RegisteredGate(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("reg,sr,Needs registration\n"))
	shipFilter := FilterFromShip(1, false, false)

	assert.False(t, l.IsAcceptedFriendlyCode("reg", shipFilter, RegistrationKey{Registered: false}, DefaultAvailable))
	assert.True(t, l.IsAcceptedFriendlyCode("reg", shipFilter, RegistrationKey{Registered: true}, DefaultAvailable))
}

func TestIsAcceptedFriendlyCode_AlliedAndWeaponsGate(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("all,sa,Allied only\ncap,sc,Capital ships only\n"))
	key := RegistrationKey{}

	assert.False(t, l.IsAcceptedFriendlyCode("all", FilterFromShip(1, false, false), key, DefaultAvailable))
	assert.True(t, l.IsAcceptedFriendlyCode("all", FilterFromShip(1, false, true), key, DefaultAvailable))

	assert.False(t, l.IsAcceptedFriendlyCode("cap", FilterFromShip(1, false, false), key, DefaultAvailable))
	assert.True(t, l.IsAcceptedFriendlyCode("cap", FilterFromShip(1, true, false), key, DefaultAvailable))
}

func TestIsAcceptedFriendlyCode_RaceMaskGate(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("lzd,s+2,Lizard only\n"))
	key := RegistrationKey{}

	assert.True(t, l.IsAcceptedFriendlyCode("lzd", FilterFromShip(2, false, false), key, DefaultAvailable))
	assert.False(t, l.IsAcceptedFriendlyCode("lzd", FilterFromShip(3, false, false), key, DefaultAvailable))
}

func TestNewSubList(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("shp,s,Ship only\nplt,p,Planet only\n"))
	sub := NewSubList(l, FilterFromShip(1, false, false), RegistrationKey{})
	assert.Equal(t, 1, sub.Size())
	assert.NotNil(t, sub.FindCodeByName("shp"))
	assert.Nil(t, sub.FindCodeByName("plt"))
}

func TestPack_OmitsPrefixEntries(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("cln,s,Bonus against %1\n"))
	l.LoadExtraCodes(strings.NewReader("mzz"))

	infos := l.Pack(map[int]string{1: "the Lizards"})
	assert.Len(t, infos, 1)
	assert.Equal(t, "cln", infos[0].Code)
	assert.Equal(t, "Bonus against the Lizards", infos[0].Description)
}

// Scenario grounded in the spec's §8.2 S1 walkthrough: a ship fcode check
// against the master list, across hosts, confirms numeric detection doesn't
// leak into the special/registered gating path.
func TestScenario_NumericCodeIsNeverTreatedAsMasterListEntry(t *testing.T) {
	l := NewList()
	l.Load(strings.NewReader("cln,s,Clone\n"))
	key := RegistrationKey{}
	shipFilter := FilterFromShip(1, false, false)

	assert.True(t, IsNumeric("123", tHost()))
	assert.True(t, l.IsAcceptedFriendlyCode("123", shipFilter, key, DefaultAvailable))
	assert.False(t, l.IsAcceptedFriendlyCode("123", shipFilter, key, DefaultUnavailable))
}
