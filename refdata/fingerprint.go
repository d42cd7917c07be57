package refdata

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
)

// ServiceFingerprint generates a stable hash of the service table.
// The fingerprint changes when table content changes, giving startup logs
// and stats a cheap way to identify the deployed dataset.
func ServiceFingerprint(records []ServiceRecord) string {
	h := sha256.New()

	for _, record := range records {
		writeField(h, record.Name)
		for _, feeType := range record.FeeTypes() {
			writeField(h, feeType)
			writeField(h, record.Fees[feeType])
		}
		writeField(h, strings.Join(record.Procedure, "\x01"))
		writeField(h, strings.Join(record.DocumentsRequired, "\x01"))
		writeField(h, record.OfficialLink)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// SchemeFingerprint generates a stable hash of the scheme table.
func SchemeFingerprint(records []SchemeRecord) string {
	h := sha256.New()

	for _, record := range records {
		writeField(h, record.Name)
		writeField(h, record.Category)
		writeField(h, record.Description)
		writeField(h, record.EligibilityCriteria)
		writeField(h, strings.Join(record.Benefits, "\x01"))
		writeField(h, record.OfficialLink)
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h hash.Hash, value string) {
	h.Write([]byte(value))
	h.Write([]byte{0}) // separator
}
