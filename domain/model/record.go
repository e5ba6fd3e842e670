package model

import "strings"

// RecordType represents a DNS resource record type accepted by the purge API.
type RecordType string

const (
	RecordTypeA      RecordType = "A"
	RecordTypeAAAA   RecordType = "AAAA"
	RecordTypeCAA    RecordType = "CAA"
	RecordTypeCNAME  RecordType = "CNAME"
	RecordTypeDNSKEY RecordType = "DNSKEY"
	RecordTypeDS     RecordType = "DS"
	RecordTypeHTTPS  RecordType = "HTTPS"
	RecordTypeLOC    RecordType = "LOC"
	RecordTypeMX     RecordType = "MX"
	RecordTypeNAPTR  RecordType = "NAPTR"
	RecordTypeNS     RecordType = "NS"
	RecordTypePTR    RecordType = "PTR"
	RecordTypeSPF    RecordType = "SPF"
	RecordTypeSRV    RecordType = "SRV"
	RecordTypeSVCB   RecordType = "SVCB"
	RecordTypeSSHFP  RecordType = "SSHFP"
	RecordTypeTLSA   RecordType = "TLSA"
	RecordTypeTXT    RecordType = "TXT"
)

// allRecordTypes is the fixed allow-list of purgeable record types, in
// canonical order. The remote API rejects anything else, so unknown tokens
// are filtered out before any dispatch.
var allRecordTypes = []RecordType{
	RecordTypeA, RecordTypeAAAA, RecordTypeCAA, RecordTypeCNAME,
	RecordTypeDNSKEY, RecordTypeDS, RecordTypeHTTPS, RecordTypeLOC,
	RecordTypeMX, RecordTypeNAPTR, RecordTypeNS, RecordTypePTR,
	RecordTypeSPF, RecordTypeSRV, RecordTypeSVCB, RecordTypeSSHFP,
	RecordTypeTLSA, RecordTypeTXT,
}

var recordTypeSet = make(map[RecordType]bool, len(allRecordTypes))

func init() {
	for _, t := range allRecordTypes {
		recordTypeSet[t] = true
	}
}

// Valid reports whether t is on the allow-list.
func (t RecordType) Valid() bool { return recordTypeSet[t] }

// AllRecordTypes returns the full allow-list in canonical order.
func AllRecordTypes() []RecordType {
	out := make([]RecordType, len(allRecordTypes))
	copy(out, allRecordTypes)
	return out
}

// ParseRecordTypes splits a comma- or space-separated list of record type
// tokens and partitions it into allow-listed types and rejected tokens.
// Matching is case-insensitive, duplicates are dropped, and first-seen input
// order is preserved. A blank input selects the full allow-list.
func ParseRecordTypes(raw string) (valid []RecordType, rejected []string) {
	tokens := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	if len(tokens) == 0 {
		return AllRecordTypes(), nil
	}
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		upper := strings.ToUpper(tok)
		if seen[upper] {
			continue
		}
		seen[upper] = true
		if t := RecordType(upper); t.Valid() {
			valid = append(valid, t)
		} else {
			rejected = append(rejected, tok)
		}
	}
	return valid, rejected
}
