package credentials

import "strings"

const (
	blockSeparator = "\n\n"

	keyEmail  = "EMAIL"
	keyPass   = "PASS"
	keySerial = "SERIAL"
)

// Parse splits raw into blank-line separated blocks and returns one Record per
// complete block, in input order. Incomplete blocks are silently dropped.
func Parse(raw string) []Record {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var records []Record
	for _, block := range strings.Split(raw, blockSeparator) {
		if record, ok := parseBlock(block); ok {
			records = append(records, record)
		}
	}
	return records
}

// parseBlock assigns fields line by line, so a repeated key overwrites the
// earlier value.
func parseBlock(block string) (Record, bool) {
	var record Record
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case keyEmail:
			record.Email = value
		case keyPass:
			record.Password = value
		case keySerial:
			record.Serial = value
		}
	}
	return record, record.Complete()
}
