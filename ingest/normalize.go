// Copyright 2026 Civic Archive Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingest

import (
	"regexp"
	"strings"
)

var (
	// Scan artifacts: OCR page-number markers and runs of stray symbols
	// that scanners tend to produce from smudges and rules.
	pageMarkerRe = regexp.MustCompile(`Page \d+:?`)
	symbolRunRe  = regexp.MustCompile("[‘“”\"'`~!@#$%^&*_+=|{}\\[\\]<>/\\\\]+")

	spaceRunRe     = regexp.MustCompile(`[ \t]+`)
	newlinePadRe   = regexp.MustCompile(` *\n *`)
	blankLineRunRe = regexp.MustCompile(`\n{2,}`)
)

// paragraphSeparator is the canonical separator Normalize emits between
// paragraphs; the chunker splits on exactly this.
const paragraphSeparator = "\n\n"

// Normalize cleans noisy OCR text: scan artifacts and stray symbol runs are
// removed, whitespace runs within a line collapse to a single space, runs of
// blank lines collapse to exactly one blank line, and characters outside the
// printable ASCII range are stripped.
//
// Normalize is pure and deterministic with no failure mode. The output never
// contains more characters than the input.
func Normalize(raw string) string {
	text := pageMarkerRe.ReplaceAllString(raw, "")
	text = symbolRunRe.ReplaceAllString(text, "")

	// Keep newlines so paragraph boundaries survive the printable filter.
	text = strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if r == '\t' {
			return ' '
		}
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, text)

	text = spaceRunRe.ReplaceAllString(text, " ")
	text = newlinePadRe.ReplaceAllString(text, "\n")
	text = blankLineRunRe.ReplaceAllString(text, paragraphSeparator)

	return strings.TrimSpace(text)
}
