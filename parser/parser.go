package parser

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/optline/linprog/model"
	"github.com/optline/linprog/simplex"
)

// declarationsRe captures the body of the declarations block. (?s)
// lets the block span lines.
var declarationsRe = regexp.MustCompile(`(?s)declarations\s+(.*?)\s*end-declarations`)

// ParseFile reads path and parses it with Parse.
func ParseFile(path string) (*model.Model, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "parser: read model file")
	}

	m, err := Parse(string(src))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return m, nil
}

// Parse builds a model from an Xpress-flavoured source string (see the
// package documentation for the grammar).
func Parse(src string) (*model.Model, error) {
	loc := declarationsRe.FindStringSubmatchIndex(src)
	if loc == nil {
		return nil, ErrNoDeclarations
	}

	names := splitDeclarations(src[loc[2]:loc[3]])
	if len(names) == 0 {
		return nil, errors.Wrap(ErrNoDeclarations, "empty block")
	}

	m := model.New("lp")
	vars := make(map[string]model.Variable, len(names))
	for _, name := range names {
		if _, dup := vars[name]; dup {
			return nil, errors.Wrapf(ErrDuplicateVariable, "%q", name)
		}
		vars[name] = m.AddVariable(name)
	}

	body := src[:loc[0]] + src[loc[1]:]
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if dir, rest, ok := objectiveLine(line); ok {
			if rest == "" {
				return nil, errors.Wrapf(ErrBadObjective, "%q", line)
			}
			expr, err := parseExpression(rest, vars)
			if err != nil {
				return nil, errors.Wrapf(err, "objective %q", line)
			}
			m.SetObjective(expr, dir)

			continue
		}

		con, err := parseConstraint(line, vars)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %q", line)
		}
		m.AddConstraint(con)
	}

	return m, nil
}

// objectiveLine reports whether line starts with the minimize/maximize
// keyword and, if so, returns the direction and the expression part.
// The keyword must be a whole word: "maximized_output <= 3" is a
// constraint, not an objective.
func objectiveLine(line string) (dir model.Direction, rest string, ok bool) {
	idx := strings.IndexAny(line, " \t")
	keyword := line
	if idx >= 0 {
		keyword = line[:idx]
		rest = strings.TrimSpace(line[idx+1:])
	}

	switch strings.ToLower(keyword) {
	case "maximize":
		return model.Maximize, rest, true
	case "minimize":
		return model.Minimize, rest, true
	default:
		return 0, "", false
	}
}

// splitDeclarations extracts variable names from the declarations
// body: one or more lines, each either "a, b, c: mpvar" (type suffix
// ignored) or a bare comma-separated list.
func splitDeclarations(body string) []string {
	var names []string
	for _, line := range strings.Split(body, "\n") {
		if i := strings.Index(line, ":"); i >= 0 {
			line = line[:i]
		}
		for _, name := range strings.Split(line, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}

	return names
}

// parseConstraint splits line on its relation operator and builds the
// constraint. A non-numeric right-hand side is parsed as an expression
// and moved to the left, so the constraint compares against 0.
func parseConstraint(line string, vars map[string]model.Variable) (model.Constraint, error) {
	var lhsStr, rhsStr, op string
	switch {
	case strings.Contains(line, "<="):
		op = "<="
	case strings.Contains(line, ">="):
		op = ">="
	case strings.Contains(line, "="):
		op = "="
	default:
		return model.Constraint{}, ErrNoRelation
	}
	parts := strings.SplitN(line, op, 2)
	lhsStr, rhsStr = parts[0], parts[1]

	sense, err := simplex.ParseSense(op)
	if err != nil {
		return model.Constraint{}, err
	}

	lhs, err := parseExpression(lhsStr, vars)
	if err != nil {
		return model.Constraint{}, err
	}

	rhs, numErr := strconv.ParseFloat(strings.TrimSpace(rhsStr), 64)
	if numErr != nil {
		rhsExpr, err := parseExpression(rhsStr, vars)
		if err != nil {
			return model.Constraint{}, err
		}
		lhs.Sub(rhsExpr)
		rhs = 0
	}

	switch sense {
	case simplex.SenseGE:
		return lhs.GreaterEq(rhs), nil
	case simplex.SenseEQ:
		return lhs.Equal(rhs), nil
	default:
		return lhs.LessEq(rhs), nil
	}
}

// splitTerms splits s into signed terms at top-level + and - signs. A
// sign sandwiched between e/E and a digit belongs to an exponent
// literal (1e-3) and stays inside its term. A leading - is kept on the
// term; a + separator is dropped.
func splitTerms(s string) []string {
	var terms []string
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '+' && c != '-' {
			continue
		}
		if i > 0 && (s[i-1] == 'e' || s[i-1] == 'E') &&
			i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
			continue
		}
		if i > start {
			terms = append(terms, s[start:i])
		}
		start = i
		if c == '+' {
			start = i + 1
		}
	}

	return append(terms, s[start:])
}

// parseExpression tokenizes a linear term sum: each signed term is one
// of coef*name, name*coef, a bare name or a numeric literal.
func parseExpression(s string, vars map[string]model.Variable) (*model.Expression, error) {
	expr := model.NewExpression()

	for _, term := range splitTerms(s) {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		neg := strings.HasPrefix(term, "-")
		if neg {
			term = strings.TrimSpace(term[1:])
			if term == "" {
				return nil, errors.Wrap(ErrBadTerm, "dangling '-'")
			}
		}

		var (
			name string
			coef float64
		)
		if i := strings.Index(term, "*"); i >= 0 {
			left := strings.TrimSpace(term[:i])
			right := strings.TrimSpace(term[i+1:])
			if c, err := strconv.ParseFloat(left, 64); err == nil {
				coef, name = c, right
			} else if c, err := strconv.ParseFloat(right, 64); err == nil {
				coef, name = c, left
			} else {
				return nil, errors.Wrapf(ErrBadTerm, "%q", term)
			}
		} else if c, err := strconv.ParseFloat(term, 64); err == nil {
			if neg {
				c = -c
			}
			expr.AddConstant(c)

			continue
		} else {
			name, coef = term, 1
		}

		if neg {
			coef = -coef
		}
		v, ok := vars[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownVariable, "%q", name)
		}
		expr.AddTerm(v, coef)
	}

	return expr, nil
}
