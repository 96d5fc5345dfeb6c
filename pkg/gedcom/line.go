package gedcom

import (
	"strconv"
	"strings"

	"github.com/Kaper156/pygedcom/pkg/errors"
)

// xrefSigil marks a token as a cross-reference identifier (e.g. "@I1@").
const xrefSigil = '@'

// Verification statuses returned by [Verify].
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Line is one tokenized line of a GEDCOM file.
type Line struct {
	Level int    // nesting depth, 0 for top-level records
	XRef  string // cross-reference id, empty unless the line carries one
	Tag   string // record type code (INDI, FAM, NAME, ...)
	Value string // remainder of the line, may be empty
}

// ParseLine tokenizes a single non-blank line.
//
// The first token must parse as a non-negative integer level. If the next
// token starts with '@' it is consumed as the xref and the following token
// becomes the tag; otherwise the next token is the tag directly. Remaining
// tokens are rejoined with single spaces to form the value.
func ParseLine(raw string) (Line, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return Line{}, errors.New(errors.ErrCodeInvalidLine, "empty line")
	}

	level, err := strconv.Atoi(tokens[0])
	if err != nil || level < 0 {
		return Line{}, errors.New(errors.ErrCodeInvalidLine, "invalid level %q in line %q", tokens[0], raw)
	}
	tokens = tokens[1:]

	var xref string
	if len(tokens) > 0 && tokens[0][0] == xrefSigil {
		xref = tokens[0]
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return Line{}, errors.New(errors.ErrCodeInvalidLine, "missing tag in line %q", raw)
	}
	tag := tokens[0]

	return Line{
		Level: level,
		XRef:  xref,
		Tag:   tag,
		Value: strings.Join(tokens[1:], " "),
	}, nil
}

// VerifyResult reports the outcome of a structural pre-check.
type VerifyResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Verify walks the raw text once and checks level consistency: each line's
// level may exceed the previous line's level by at most one. Blank lines are
// skipped. The first violation is reported with its 1-based line number and
// the offending text.
//
// Verify builds no tree and leaves no state behind; it is independent of
// [Parser.Parse], which will assemble whatever tree the level sequence
// implies even when Verify would reject it.
func Verify(data string) VerifyResult {
	currentLevel := 0
	for i, raw := range strings.Split(data, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, err := ParseLine(raw)
		if err != nil {
			return VerifyResult{
				Status:  StatusError,
				Message: "Invalid line " + strconv.Itoa(i+1) + ": " + raw,
			}
		}
		if line.Level > currentLevel+1 {
			return VerifyResult{
				Status:  StatusError,
				Message: "Invalid level on line " + strconv.Itoa(i+1) + ": " + raw,
			}
		}
		currentLevel = line.Level
	}
	return VerifyResult{Status: StatusOK}
}
