package rates

import (
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"service-fxrates/internal/logger"
)

// A rate literal needs at least one digit on both sides of the point. The
// service always quotes fractional rates, so integer-only values are not
// treated as rates.
const numberPattern = `\d+\.\d+`

// Parser extracts "BASEXXX":<number> quote pairs from raw response text.
// It works on the plain text, so it handles saved snapshots and truncated
// replies the same as fresh ones.
type Parser struct {
	base   string
	pairRe *regexp.Regexp
}

func NewParser(base string) (*Parser, error) {
	code, err := NormalizeCode(base)
	if err != nil {
		return nil, fmt.Errorf("parser base: %w", err)
	}

	re, err := regexp.Compile(fmt.Sprintf(`"%s([A-Z]{3})":\s*(%s)`, code, numberPattern))
	if err != nil {
		return nil, fmt.Errorf("compile rate pattern: %w", err)
	}

	return &Parser{base: code, pairRe: re}, nil
}

func (p *Parser) Base() string { return p.base }

// ParseAll scans data left to right and returns the table of every
// well-formed quote pair. Each search resumes where the previous match
// ended, so matches never overlap and the scan always moves forward. When
// the same quote currency appears more than once the last occurrence
// wins. A matched literal the converter rejects is logged and skipped; it
// never fails the whole parse.
func (p *Parser) ParseAll(data string) Table {
	table := make(Table)

	offset := 0
	for offset < len(data) {
		loc := p.pairRe.FindStringSubmatchIndex(data[offset:])
		if loc == nil {
			break
		}

		code := data[offset+loc[2] : offset+loc[3]]
		literal := data[offset+loc[4] : offset+loc[5]]

		rate, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			logger.Warn("invalid number in exchange rate",
				zap.String("pair", p.base+code),
				zap.String("value", literal))
			skippedLiterals.Inc()
		} else {
			table[code] = rate
		}

		offset += loc[1]
	}

	return table
}

// ParseOne returns the rate quoted for one currency code, or 0 when data
// holds no usable quote for it. Callers that need to distinguish a missing
// quote from a zero rate should use ParseAll.
func (p *Parser) ParseOne(code, data string) float64 {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return 0
	}

	re := regexp.MustCompile(fmt.Sprintf(`"%s%s":\s*(%s)`, p.base, normalized, numberPattern))
	match := re.FindStringSubmatch(data)
	if match == nil {
		return 0
	}

	rate, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		logger.Warn("invalid number in exchange rate",
			zap.String("pair", p.base+normalized),
			zap.String("value", match[1]))
		skippedLiterals.Inc()
		return 0
	}

	return rate
}

var defaultParser = mustParser(DefaultBase)

func mustParser(base string) *Parser {
	p, err := NewParser(base)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseAll extracts every USD-quoted rate pair from data.
func ParseAll(data string) Table { return defaultParser.ParseAll(data) }

// ParseOne extracts the USD-quoted rate for code from data, or 0.
func ParseOne(code, data string) float64 { return defaultParser.ParseOne(code, data) }
