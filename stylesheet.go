package iconfont

import (
	"io"
	"iter"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// iconSelector matches a single selector of an icon rule, like `.icon-home:before`.
var iconSelector = regexp.MustCompile(`^\.([^\s,:]+)::?before$`)

// Table is an ordered, read-only mapping between icon names and their codepoints.
type Table struct {
	names []string
	icons map[string]rune
}

// Len returns the number of icons in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns the icon names in ascending order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Lookup returns the codepoint registered for the icon name.
func (t *Table) Lookup(name string) (rune, bool) {
	r, ok := t.icons[name]
	return r, ok
}

// All iterates over the icons in ascending name order.
func (t *Table) All() iter.Seq2[string, rune] {
	return func(yield func(string, rune) bool) {
		for _, name := range t.names {
			if !yield(name, t.icons[name]) {
				return
			}
		}
	}
}

// LoadTable reads the stylesheet found at path and builds the icon table out of it.
// It also returns the common prefix shared by all the icon names.
// If keepPrefix is false the common prefix is removed from every icon name.
func LoadTable(path string, keepPrefix bool) (*Table, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "could not open the stylesheet")
	}
	defer file.Close()

	table, prefix, err := buildTable(file, keepPrefix)
	if err != nil {
		return nil, "", errors.Wrapf(err, "could not load %s", path)
	}
	return table, prefix, nil
}

// buildTable walks over the stylesheet rules and collects every icon rule,
// i.e. the rules whose selector has the `.<name>:before` form.
// The common prefix is computed in the stylesheet's rule order.
func buildTable(r io.Reader, keepPrefix bool) (*Table, string, error) {
	var (
		icons     = make(map[string]rune)
		selectors []string
		prefix    string
		found     bool
	)

	p := css.NewParser(parse.NewInput(r), false)

loop:
	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != io.EOF {
				return nil, "", errors.Wrapf(ErrStylesheetParse, "%v", err)
			}
			break loop
		case css.QualifiedRuleGrammar, css.BeginRulesetGrammar:
			for _, name := range iconNames(p.Values()) {
				if !found {
					prefix, found = name, true
				} else {
					prefix = commonPrefix(prefix, name)
				}
				selectors = append(selectors, name)
			}
		case css.DeclarationGrammar:
			if len(selectors) == 0 || !strings.EqualFold(string(data), "content") {
				continue
			}
			char, err := parseContent(p.Values())
			if err != nil {
				return nil, "", errors.Wrapf(err, "selector .%s:before", selectors[len(selectors)-1])
			}
			for _, name := range selectors {
				icons[name] = char
			}
		case css.EndRulesetGrammar, css.BeginAtRuleGrammar, css.EndAtRuleGrammar:
			selectors = selectors[:0]
		}
	}

	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)

	if !keepPrefix && len(prefix) > 0 {
		stripped := make(map[string]rune, len(icons))
		for _, name := range names {
			stripped[name[len(prefix):]] = icons[name]
		}
		icons = stripped

		names = names[:0]
		for name := range icons {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	return &Table{names: names, icons: icons}, prefix, nil
}

// iconNames returns the class names of the icon selectors found in a selector list.
// The list is split on the top level commas, so `.a:before,.b:before` yields both names.
func iconNames(tokens []css.Token) []string {
	var (
		names []string
		depth int
		start int
	)
	match := func(group []css.Token) {
		if m := iconSelector.FindStringSubmatch(tokensText(group)); m != nil {
			names = append(names, m[1])
		}
	}

	for i, tok := range tokens {
		switch tok.TokenType {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				match(tokens[start:i])
				start = i + 1
			}
		}
	}
	match(tokens[start:])

	return names
}

// parseContent converts a content value like "\f101" into the codepoint it encodes.
// Only the first string of the value is considered, so priority flags like !important are ignored.
func parseContent(tokens []css.Token) (rune, error) {
	val := tokensText(tokens)
	for _, tok := range tokens {
		if tok.TokenType == css.StringToken {
			val = string(tok.Data)
			break
		}
	}

	// Strip the quotation marks.
	if len(val) >= 2 && strings.ContainsRune(`"'`, rune(val[0])) && strings.ContainsRune(`"'`, rune(val[len(val)-1])) {
		val = val[1 : len(val)-1]
	}
	if len(val) < 2 {
		return 0, errors.Wrapf(ErrUnparseableContent, "%q", val)
	}

	code, err := strconv.ParseUint(val[1:], 16, 32)
	if err != nil || code > unicode.MaxRune {
		return 0, errors.Wrapf(ErrUnparseableContent, "%q", val)
	}
	return rune(code), nil
}

// tokensText concatenates the raw token values.
func tokensText(tokens []css.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.Write(tok.Data)
	}
	return strings.TrimSpace(sb.String())
}

// commonPrefix returns the longest common prefix of a and b, never splitting a multibyte rune.
func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	for i > 0 && i < len(a) && !utf8.RuneStart(a[i]) {
		i--
	}
	return a[:i]
}
